//go:build js && wasm

// Package web runs experiments in a browser page. The window listens to DOM
// events on a canvas element and paces the loop with requestAnimationFrame;
// the renderer draws with the canvas 2D context.
package web

import (
	"fmt"
	"sync"
	"syscall/js"

	"github.com/hubastard/stimgrove/engine/clock"
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/viewport"
)

var (
	jsGlobal   = js.Global()
	jsWindow   = jsGlobal.Get("window")
	jsDocument = jsGlobal.Get("document")
)

// CanvasID is the id of the canvas element used, or created, by NewWindow.
const CanvasID = "stimgrove"

// Window implements core.Window on a canvas element.
type Window struct {
	canvas js.Value
	onEv   func(core.Event)

	mu      sync.Mutex
	queue   []core.Event
	closing bool

	raf     js.Func
	frameCh chan struct{}
	funcs   []js.Func
}

// NewWindow finds or creates the canvas and starts listening for input.
func NewWindow(cfg core.Config) (*Window, error) {
	if jsDocument.IsUndefined() {
		return nil, fmt.Errorf("no document")
	}
	canvas := jsDocument.Call("getElementById", CanvasID)
	if canvas.IsNull() {
		canvas = jsDocument.Call("createElement", "canvas")
		canvas.Set("id", CanvasID)
		style := canvas.Get("style")
		style.Set("position", "fixed")
		style.Set("left", "0")
		style.Set("top", "0")
		style.Set("width", "100%")
		style.Set("height", "100%")
		jsDocument.Get("body").Call("appendChild", canvas)
	}
	if cfg.Title != "" {
		jsDocument.Set("title", cfg.Title)
	}

	w := &Window{
		canvas:  canvas,
		frameCh: make(chan struct{}, 1),
	}
	w.fitCanvas()
	w.listen()

	w.raf = js.FuncOf(func(this js.Value, args []js.Value) any {
		select {
		case w.frameCh <- struct{}{}:
		default:
		}
		return nil
	})
	return w, nil
}

// fitCanvas sizes the backing store to the displayed size in device pixels.
func (w *Window) fitCanvas() {
	dpr := jsWindow.Get("devicePixelRatio").Float()
	if dpr < 1 {
		dpr = 1
	}
	rect := w.canvas.Call("getBoundingClientRect")
	cw := rect.Get("width").Float()
	ch := rect.Get("height").Float()
	if cw == 0 || ch == 0 {
		cw = jsWindow.Get("innerWidth").Float()
		ch = jsWindow.Get("innerHeight").Float()
	}
	w.canvas.Set("width", int(cw*dpr))
	w.canvas.Set("height", int(ch*dpr))
}

func (w *Window) on(target js.Value, name string, f func(e js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		f(args[0])
		return nil
	})
	w.funcs = append(w.funcs, fn)
	target.Call("addEventListener", name, fn)
}

func (w *Window) push(ev core.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue = append(w.queue, ev)
}

// toCanvas converts client coordinates to backing-store pixels.
func (w *Window) toCanvas(e js.Value) (float64, float64) {
	rect := w.canvas.Call("getBoundingClientRect")
	x := e.Get("clientX").Float() - rect.Get("left").Float()
	y := e.Get("clientY").Float() - rect.Get("top").Float()
	rw, rh := rect.Get("width").Float(), rect.Get("height").Float()
	if rw > 0 && rh > 0 {
		x *= w.canvas.Get("width").Float() / rw
		y *= w.canvas.Get("height").Float() / rh
	}
	return x, y
}

func (w *Window) listen() {
	w.on(jsDocument, "keydown", func(e js.Value) {
		t := clock.Monotonic()
		if e.Get("repeat").Truthy() {
			return
		}
		w.push(core.EventKey{
			Code:    e.Get("code").String(),
			Key:     e.Get("key").String(),
			KeyCode: e.Get("keyCode").Int(),
			Down:    true,
			Mods:    modifiers(e),
			Time:    t,
		})
	})
	w.on(jsDocument, "keyup", func(e js.Value) {
		t := clock.Monotonic()
		w.push(core.EventKey{
			Code:    e.Get("code").String(),
			Key:     e.Get("key").String(),
			KeyCode: e.Get("keyCode").Int(),
			Mods:    modifiers(e),
			Time:    t,
		})
	})
	w.on(w.canvas, "pointerdown", func(e js.Value) {
		x, y := w.toCanvas(e)
		w.push(core.EventMouseButton{Button: e.Get("button").Int(), Down: true, X: x, Y: y})
	})
	w.on(w.canvas, "pointerup", func(e js.Value) {
		x, y := w.toCanvas(e)
		w.push(core.EventMouseButton{Button: e.Get("button").Int(), X: x, Y: y})
	})
	w.on(w.canvas, "pointermove", func(e js.Value) {
		x, y := w.toCanvas(e)
		w.push(core.EventMouseMove{X: x, Y: y})
	})
	w.on(w.canvas, "wheel", func(e js.Value) {
		e.Call("preventDefault")
		// DOM deltas grow downward
		w.push(core.EventScroll{Xoff: e.Get("deltaX").Float(), Yoff: -e.Get("deltaY").Float()})
	})
	resize := func(js.Value) {
		w.fitCanvas()
		fw, fh := w.FramebufferSize()
		w.push(core.EventResize{W: fw, H: fh})
	}
	w.on(jsWindow, "resize", resize)
	w.on(jsWindow, "orientationchange", resize)
	w.on(jsWindow, "beforeunload", func(js.Value) {
		w.push(core.EventCloseRequested{})
	})
}

func modifiers(e js.Value) core.Mod {
	var m core.Mod
	if e.Get("shiftKey").Truthy() {
		m |= core.ModShift
	}
	if e.Get("ctrlKey").Truthy() {
		m |= core.ModCtrl
	}
	if e.Get("altKey").Truthy() {
		m |= core.ModAlt
	}
	if e.Get("metaKey").Truthy() {
		m |= core.ModSuper
	}
	return m
}

// PollEvents waits for the next animation frame, then delivers the events
// queued since the last poll.
func (w *Window) PollEvents() {
	jsWindow.Call("requestAnimationFrame", w.raf)
	<-w.frameCh

	w.mu.Lock()
	evs := w.queue
	w.queue = nil
	w.mu.Unlock()

	if w.onEv == nil {
		return
	}
	for _, ev := range evs {
		w.onEv(ev)
	}
}

// SwapBuffers does nothing: the browser presents the canvas after the
// animation frame callback.
func (w *Window) SwapBuffers() {}

func (w *Window) ShouldClose() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closing
}

func (w *Window) RequestClose() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closing = true
}

func (w *Window) FramebufferSize() (int, int) {
	return w.canvas.Get("width").Int(), w.canvas.Get("height").Int()
}

func (w *Window) SetTitle(t string)                    { jsDocument.Set("title", t) }
func (w *Window) SetEventCallback(cb func(core.Event)) { w.onEv = cb }

// Canvas returns the canvas element.
func (w *Window) Canvas() js.Value { return w.canvas }

// FullscreenEntries lists the standard fullscreen API followed by the
// vendor prefixed variants.
func (w *Window) FullscreenEntries() []viewport.Entry {
	root := jsDocument.Get("documentElement")
	pairs := [][3]string{
		{"standard", "requestFullscreen", "exitFullscreen"},
		{"webkit", "webkitRequestFullscreen", "webkitExitFullscreen"},
		{"moz", "mozRequestFullScreen", "mozCancelFullScreen"},
		{"ms", "msRequestFullscreen", "msExitFullscreen"},
	}
	entries := make([]viewport.Entry, 0, len(pairs))
	for _, p := range pairs {
		enter, exit := p[1], p[2]
		entries = append(entries, viewport.Entry{
			Name:  p[0],
			Enter: func() error { return invoke(root, enter) },
			Exit:  func() error { return invoke(jsDocument, exit) },
		})
	}
	return entries
}

// invoke calls a method that may not exist on this browser. Promise
// rejections are swallowed; the browser reports them on the console.
func invoke(target js.Value, method string) (err error) {
	if target.Get(method).Type() != js.TypeFunction {
		return viewport.ErrUnavailable
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", method, r)
		}
	}()
	res := target.Call(method)
	if res.Type() == js.TypeObject && res.Get("catch").Type() == js.TypeFunction {
		var catch js.Func
		catch = js.FuncOf(func(this js.Value, args []js.Value) any {
			catch.Release()
			return nil
		})
		res.Call("catch", catch)
	}
	return nil
}

// Release frees the listener callbacks. Call it once the loop has stopped.
func (w *Window) Release() {
	for _, fn := range w.funcs {
		fn.Release()
	}
	w.funcs = nil
	w.raf.Release()
}
