package core

import (
	"fmt"
	"runtime"

	"github.com/hubastard/stimgrove/engine/clock"
	"github.com/hubastard/stimgrove/engine/frame"
	"github.com/hubastard/stimgrove/engine/input"
	"github.com/hubastard/stimgrove/engine/logging"
	"github.com/hubastard/stimgrove/engine/viewport"
)

// NewEngine builds the engine services around an existing window and
// renderer. Run calls it; it is exported for backends that drive their own
// loop.
func NewEngine(win Window, rend Renderer, cfg Config) *Engine {
	log := cfg.Logger
	if log == nil {
		log = logging.New(0)
		log.SetLevel(logging.Critical + 1)
	}
	now := cfg.Clock
	if now == nil {
		now = clock.Monotonic
	}

	e := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    input.NewManager(log, now),
		Frames:   frame.NewLoop(rend, log, now),
		Viewport: viewport.NewController(win, rend, log),
		Log:      log,
		Clock:    clock.New(now),
		now:      now,
	}
	e.Frames.SetColor(cfg.Color)
	return e
}

// Run wires the platform window + renderer and executes the main loop.
// Each iteration polls input, lets the app and layers prepare the frame and
// then runs one frame cycle.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	eng := NewEngine(win, rend, cfg)
	eng.Viewport.OnViewportChange()
	if cfg.Fullscreen {
		eng.Viewport.RequestFullscreen(win.FullscreenEntries())
	}

	win.SetEventCallback(func(ev Event) {
		eng.dispatch(app, ev)
	})

	app.OnStart(eng)

	for !win.ShouldClose() {
		// platform emits input via callbacks
		win.PollEvents()

		app.OnFrame(eng)
		eng.Layers.ForEach(func(l Layer) {
			l.OnFrame(eng)
		})

		eng.Frames.Tick()
	}

	app.OnShutdown(eng)
	for eng.Layers.Len() > 0 {
		eng.Layers.Pop(eng)
	}
	if eng.Viewport.Fullscreen() {
		eng.Viewport.ExitFullscreen(win.FullscreenEntries())
	}

	eng.Log.Info(fmt.Sprintf("engine exit after %d frames", eng.Frames.FrameCount()))
	return nil
}
