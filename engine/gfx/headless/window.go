// Package headless provides a window and renderer that need no display.
// The window delivers scripted and injected events; the renderer records
// what it was asked to draw and can pace frames to a nominal refresh rate.
package headless

import (
	"sync"

	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/viewport"
)

// Window implements core.Window.
type Window struct {
	mu      sync.Mutex
	w, h    int
	title   string
	onEv    func(core.Event)
	closing bool

	polls     int
	maxFrames int
	script    map[int][]core.Event
	injected  []core.Event
	swaps     int
}

// NewWindow creates a window of the configured size. A window created with
// maxFrames > 0 asks to close after that many polls.
func NewWindow(cfg core.Config, maxFrames int) *Window {
	return &Window{
		w:         cfg.Width,
		h:         cfg.Height,
		title:     cfg.Title,
		maxFrames: maxFrames,
		script:    make(map[int][]core.Event),
	}
}

// At schedules ev to be delivered by the poll of the given frame. Frames
// count from zero.
func (g *Window) At(frame int, ev core.Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.script[frame] = append(g.script[frame], ev)
}

// Inject queues ev for delivery at the next poll. It is safe to call from
// any goroutine.
func (g *Window) Inject(ev core.Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.injected = append(g.injected, ev)
}

// Resize changes the framebuffer size and queues the matching event.
func (g *Window) Resize(w, h int) {
	g.mu.Lock()
	g.w, g.h = w, h
	g.mu.Unlock()
	g.Inject(core.EventResize{W: w, H: h})
}

// core.Window impl
func (g *Window) PollEvents() {
	g.mu.Lock()
	frame := g.polls
	g.polls++
	evs := append(g.script[frame], g.injected...)
	delete(g.script, frame)
	g.injected = nil
	if g.maxFrames > 0 && g.polls >= g.maxFrames {
		g.closing = true
	}
	emit := g.onEv
	g.mu.Unlock()

	if emit == nil {
		return
	}
	for _, ev := range evs {
		emit(ev)
	}
}

func (g *Window) SwapBuffers() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.swaps++
}

func (g *Window) ShouldClose() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closing
}

func (g *Window) RequestClose() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closing = true
}

func (g *Window) FramebufferSize() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.w, g.h
}

func (g *Window) SetTitle(t string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.title = t
}

func (g *Window) Title() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.title
}

func (g *Window) SetEventCallback(cb func(core.Event)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onEv = cb
}

// FullscreenEntries reports a single entry point that is never available.
func (g *Window) FullscreenEntries() []viewport.Entry {
	unavailable := func() error { return viewport.ErrUnavailable }
	return []viewport.Entry{{Name: "headless", Enter: unavailable, Exit: unavailable}}
}

// Swaps returns the number of presented frames.
func (g *Window) Swaps() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.swaps
}
