package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/stimgrove/engine/clock"
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/viewport"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)

	// windowed geometry to restore after fullscreen
	savedX, savedY, savedW, savedH int
}

// NewGLFWWindow opens a window with a current GL context.
// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	if cfg.Logger != nil {
		cfg.Logger.Info("GL: " + gl.GoStr(gl.GetString(gl.VERSION)))
	}

	gw := &GLFWWindow{w: win}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		x, y = gw.toFramebuffer(x, y)
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := gw.toFramebuffer(w.GetCursorPos())
		gw.emit(core.EventMouseButton{Button: translateButton(b), Down: action == glfw.Press, X: x, Y: y})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		t := clock.Monotonic()
		code, label, keyCode, ok := translateKey(key, scancode)
		if !ok {
			return
		}
		gw.emit(core.EventKey{
			Code:    code,
			Key:     label,
			KeyCode: keyCode,
			Down:    action == glfw.Press,
			Mods:    translateMods(mods),
			Time:    t,
		})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// toFramebuffer converts screen coordinates to framebuffer pixels, which
// differ on high density displays.
func (g *GLFWWindow) toFramebuffer(x, y float64) (float64, float64) {
	ww, wh := g.w.GetSize()
	fw, fh := g.w.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return x, y
	}
	return x * float64(fw) / float64(ww), y * float64(fh) / float64(wh)
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// FullscreenEntries tries exclusive fullscreen on the primary monitor, then
// a maximised window.
func (g *GLFWWindow) FullscreenEntries() []viewport.Entry {
	return []viewport.Entry{
		{Name: "monitor", Enter: g.enterMonitor, Exit: g.exitMonitor},
		{Name: "maximize", Enter: g.maximize, Exit: g.restore},
	}
}

func (g *GLFWWindow) enterMonitor() error {
	m := glfw.GetPrimaryMonitor()
	if m == nil {
		return viewport.ErrUnavailable
	}
	mode := m.GetVideoMode()
	if mode == nil {
		return viewport.ErrUnavailable
	}
	g.savedX, g.savedY = g.w.GetPos()
	g.savedW, g.savedH = g.w.GetSize()
	g.w.SetMonitor(m, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	return nil
}

func (g *GLFWWindow) exitMonitor() error {
	if g.w.GetMonitor() == nil {
		return viewport.ErrUnavailable
	}
	g.w.SetMonitor(nil, g.savedX, g.savedY, g.savedW, g.savedH, 0)
	return nil
}

func (g *GLFWWindow) maximize() error {
	if g.w.GetAttrib(glfw.Resizable) == glfw.False {
		return viewport.ErrUnavailable
	}
	g.w.Maximize()
	return nil
}

func (g *GLFWWindow) restore() error {
	if g.w.GetAttrib(glfw.Maximized) == glfw.False {
		return viewport.ErrUnavailable
	}
	g.w.Restore()
	return nil
}

// Destroy closes the window and releases glfw.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

// translateButton maps glfw buttons to the left, middle, right order of
// pointer events.
func translateButton(b glfw.MouseButton) int {
	switch b {
	case glfw.MouseButtonLeft:
		return 0
	case glfw.MouseButtonMiddle:
		return 1
	case glfw.MouseButtonRight:
		return 2
	}
	return int(b)
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
