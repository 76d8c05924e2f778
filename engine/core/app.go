// Package core wires a platform window, a renderer, input handling, the
// viewport and the frame loop into a running experiment.
package core

import (
	"github.com/hubastard/stimgrove/engine/clock"
	"github.com/hubastard/stimgrove/engine/colors"
	"github.com/hubastard/stimgrove/engine/frame"
	"github.com/hubastard/stimgrove/engine/input"
	"github.com/hubastard/stimgrove/engine/logging"
	"github.com/hubastard/stimgrove/engine/viewport"
)

// App defines the experiment hooks.
type App interface {
	OnStart(e *Engine)           // called once after window/renderer init
	OnFrame(e *Engine)           // called once per frame, before the frame is drawn
	OnEvent(e *Engine, ev Event) // input/window events
	OnShutdown(e *Engine)        // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *input.Manager
	Frames   *frame.Loop
	Viewport *viewport.Controller
	Log      *logging.Logger
	Layers   LayerStack

	// Clock is the experiment's global clock, started with the engine.
	Clock *clock.Clock

	now clock.Source
}

// Uptime returns the seconds since the engine started.
func (e *Engine) Uptime() float64 { return e.Clock.Time() }

// Now returns the current time on the engine's time source.
func (e *Engine) Now() float64 { return e.now() }

// Quit asks the run loop to stop after the current frame.
func (e *Engine) Quit() { e.Window.RequestClose() }

// PointerPos returns the pointer position in centred, y-up coordinates.
func (e *Engine) PointerPos() (float64, float64) {
	p := e.Input.Pointer.Position()
	return e.Viewport.State().FromPixels(p[0], p[1])
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	// FullscreenEntries lists the ways this platform can enter fullscreen,
	// in the order they should be tried.
	FullscreenEntries() []viewport.Entry
}

// Renderer abstraction. Render draws the scene and presents it; Sync blocks
// until the presented frame has been composited.
type Renderer interface {
	frame.Backend
	Resize(w, h int)
	Shutdown()
}

// Config for the engine run.
type Config struct {
	Title      string       `yaml:"title" toml:"title"`
	Width      int          `yaml:"width" toml:"width"`
	Height     int          `yaml:"height" toml:"height"`
	VSync      bool         `yaml:"vsync" toml:"vsync"`
	Fullscreen bool         `yaml:"fullscreen" toml:"fullscreen"`
	Color      colors.Color `yaml:"color" toml:"color"`

	// Logger receives input and flip logs. A nil logger discards them.
	Logger *logging.Logger `yaml:"-" toml:"-"`
	// Clock is the time source for input and flips. Nil means
	// clock.Monotonic.
	Clock clock.Source `yaml:"-" toml:"-"`
}
