package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/gfx/headless"
	"github.com/hubastard/stimgrove/engine/input"
	"github.com/hubastard/stimgrove/engine/logging"
)

// app recording the hooks it sees.
type app struct {
	calls  []string
	frames int
	events []core.Event
	keys   []input.KeyPress
	start  func(e *core.Engine)
	frame  func(e *core.Engine)
}

func (a *app) OnStart(e *core.Engine) {
	a.calls = append(a.calls, "start")
	if a.start != nil {
		a.start(e)
	}
}

func (a *app) OnFrame(e *core.Engine) {
	a.frames++
	if a.frame != nil {
		a.frame(e)
	}
}

func (a *app) OnEvent(e *core.Engine, ev core.Event) { a.events = append(a.events, ev) }
func (a *app) OnShutdown(e *core.Engine)             { a.calls = append(a.calls, "shutdown") }

type layer struct {
	name    string
	trace   *[]string
	consume bool
}

func (l *layer) OnAttach(e *core.Engine) { *l.trace = append(*l.trace, l.name+".attach") }
func (l *layer) OnDetach(e *core.Engine) { *l.trace = append(*l.trace, l.name+".detach") }
func (l *layer) OnFrame(e *core.Engine)  {}
func (l *layer) OnEvent(e *core.Engine, ev core.Event) bool {
	if _, ok := ev.(core.EventKey); ok {
		*l.trace = append(*l.trace, l.name+".event")
	}
	return l.consume
}

func run(t *testing.T, a core.App, win *headless.Window, cfg core.Config) *headless.Renderer {
	t.Helper()
	var rend *headless.Renderer
	err := core.Run(a, cfg,
		func(core.Config) (core.Window, error) { return win, nil },
		func(w core.Window, _ core.Config) (core.Renderer, error) {
			rend = headless.NewRenderer(w, 0)
			return rend, nil
		})
	if err != nil {
		t.Fatal(err)
	}
	return rend
}

func TestRunLifecycle(t *testing.T) {
	cfg := core.Config{Width: 800, Height: 600}
	win := headless.NewWindow(cfg, 5)
	a := &app{}
	rend := run(t, a, win, cfg)

	if diff := cmp.Diff([]string{"start", "shutdown"}, a.calls); diff != "" {
		t.Errorf("hooks (-want +got):\n%s", diff)
	}
	if a.frames != 5 || rend.Total() != 5 {
		t.Errorf("frames=%d rendered=%d", a.frames, rend.Total())
	}
	if w, h := rend.Size(); w != 800 || h != 600 {
		t.Errorf("initial resize %dx%d", w, h)
	}
}

func TestKeyEventsReachBuffer(t *testing.T) {
	cfg := core.Config{Width: 100, Height: 100}
	win := headless.NewWindow(cfg, 4)
	win.At(1, core.EventKey{Code: "KeyF", Key: "f", KeyCode: 70, Down: true, Time: 1.5})
	win.At(1, core.EventKey{Code: "KeyF", Key: "f", KeyCode: 70, Down: false, Time: 1.6})
	win.At(2, core.EventKey{Code: "KeyJ", Key: "j", KeyCode: 74, Down: true, Time: 2.5})

	a := &app{}
	a.frame = func(e *core.Engine) {
		a.keys = append(a.keys, e.Input.GetKeys(nil, true)...)
	}
	run(t, a, win, cfg)

	want := []input.KeyPress{{Name: "f", Timestamp: 1.5}, {Name: "j", Timestamp: 2.5}}
	if diff := cmp.Diff(want, a.keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if len(a.events) != 3 {
		t.Errorf("app saw %d events", len(a.events))
	}
}

func TestLayersReceiveEventsTopFirst(t *testing.T) {
	cfg := core.Config{Width: 100, Height: 100}
	win := headless.NewWindow(cfg, 2)
	win.At(0, core.EventKey{Code: "Space", Key: " ", KeyCode: 32, Down: true})

	var trace []string
	a := &app{}
	a.start = func(e *core.Engine) {
		e.Layers.Push(e, &layer{name: "bottom", trace: &trace})
		e.Layers.Push(e, &layer{name: "top", trace: &trace, consume: true})
	}
	run(t, a, win, cfg)

	want := []string{"bottom.attach", "top.attach", "top.event", "top.detach", "bottom.detach"}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("trace (-want +got):\n%s", diff)
	}
}

func TestResizeUpdatesViewport(t *testing.T) {
	cfg := core.Config{Width: 100, Height: 100}
	win := headless.NewWindow(cfg, 3)
	var rend *headless.Renderer
	a := &app{}
	a.frame = func(e *core.Engine) {
		if rend == nil {
			rend = e.Renderer.(*headless.Renderer)
			win.Resize(400, 300)
		}
	}
	run(t, a, win, cfg)

	if w, h := rend.Size(); w != 400 || h != 300 {
		t.Errorf("renderer size %dx%d", w, h)
	}
}

func TestCloseRequestStopsLoop(t *testing.T) {
	cfg := core.Config{Width: 100, Height: 100}
	win := headless.NewWindow(cfg, 0)
	win.At(2, core.EventCloseRequested{})
	a := &app{}
	run(t, a, win, cfg)
	if a.frames != 3 {
		t.Errorf("frames=%d, want 3", a.frames)
	}
}

func TestFullscreenFailureIsLogged(t *testing.T) {
	log := logging.New(0)
	cfg := core.Config{Width: 100, Height: 100, Fullscreen: true, Logger: log}
	win := headless.NewWindow(cfg, 1)
	run(t, &app{}, win, cfg)

	var warned bool
	for _, e := range log.Entries() {
		if e.Level == logging.Warning && strings.Contains(e.Message, "fullscreen") {
			warned = true
		}
	}
	if !warned {
		t.Error("missing fullscreen warning")
	}
}

func TestWindowErrorIsWrapped(t *testing.T) {
	boom := errors.New("no display")
	err := core.Run(&app{}, core.Config{},
		func(core.Config) (core.Window, error) { return nil, boom },
		headless.Factory(0))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
