package headless_test

import (
	"errors"
	"testing"

	"github.com/hubastard/stimgrove/engine/colors"
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/frame"
	"github.com/hubastard/stimgrove/engine/gfx/headless"
	"github.com/hubastard/stimgrove/engine/stim"
	"github.com/hubastard/stimgrove/engine/viewport"
)

var _ core.Window = (*headless.Window)(nil)
var _ core.Renderer = (*headless.Renderer)(nil)

func TestScriptedEventsArriveOnTheirFrame(t *testing.T) {
	win := headless.NewWindow(core.Config{Width: 640, Height: 480}, 3)
	var got []string
	win.SetEventCallback(func(ev core.Event) {
		if k, ok := ev.(core.EventKey); ok {
			got = append(got, k.Code)
		}
	})
	win.At(1, core.EventKey{Code: "KeyA", Down: true})
	win.At(2, core.EventKey{Code: "KeyB", Down: true})

	win.PollEvents()
	if len(got) != 0 {
		t.Fatalf("frame 0 delivered %v", got)
	}
	win.PollEvents()
	if len(got) != 1 || got[0] != "KeyA" {
		t.Fatalf("frame 1 delivered %v", got)
	}
	if win.ShouldClose() {
		t.Fatal("closed early")
	}
	win.Inject(core.EventKey{Code: "Space", Down: true})
	win.PollEvents()
	if len(got) != 3 || got[1] != "KeyB" || got[2] != "Space" {
		t.Fatalf("frame 2 delivered %v", got)
	}
	if !win.ShouldClose() {
		t.Fatal("window should close after max frames")
	}
}

func TestResizeQueuesEvent(t *testing.T) {
	win := headless.NewWindow(core.Config{Width: 100, Height: 100}, 0)
	var got core.EventResize
	win.SetEventCallback(func(ev core.Event) {
		if r, ok := ev.(core.EventResize); ok {
			got = r
		}
	})
	win.Resize(320, 200)
	if w, h := win.FramebufferSize(); w != 320 || h != 200 {
		t.Fatalf("size %dx%d", w, h)
	}
	win.PollEvents()
	if got.W != 320 || got.H != 200 {
		t.Fatalf("event %+v", got)
	}
}

func TestFullscreenUnavailable(t *testing.T) {
	win := headless.NewWindow(core.Config{}, 0)
	entries := win.FullscreenEntries()
	if len(entries) == 0 {
		t.Fatal("no entries")
	}
	if err := entries[0].Enter(); !errors.Is(err, viewport.ErrUnavailable) {
		t.Fatalf("enter: %v", err)
	}
}

func TestRendererRecordsFrames(t *testing.T) {
	win := headless.NewWindow(core.Config{Width: 200, Height: 100}, 0)
	rend := headless.NewRenderer(win, 0)
	defer rend.Shutdown()

	loop := frame.NewLoop(rend, nil, func() float64 { return 0 })
	loop.SetColor(colors.Gray)
	r := stim.NewRect("box", 10, 10)
	loop.Add(r)

	loop.Tick()
	r.SetPos(5, 0)
	loop.Tick()

	if win.Swaps() != 2 || rend.Total() != 2 {
		t.Fatalf("swaps=%d total=%d", win.Swaps(), rend.Total())
	}
	last, ok := rend.Last()
	if !ok {
		t.Fatal("no frame")
	}
	if last.Color != colors.Gray {
		t.Errorf("clear color %v", last.Color)
	}
	if len(last.Prims) != 1 || last.Prims[0].Pos[0] != 5 {
		t.Errorf("prims %+v", last.Prims)
	}
	if first := rend.Frames()[0]; first.Prims[0].Pos[0] != 0 {
		t.Errorf("first frame pos %v", first.Prims[0].Pos)
	}
}
