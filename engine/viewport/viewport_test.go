package viewport_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hubastard/stimgrove/engine/logging"
	"github.com/hubastard/stimgrove/engine/viewport"
)

type surface struct{ w, h int }

func (s *surface) FramebufferSize() (int, int) { return s.w, s.h }

type backing struct{ sizes [][2]int }

func (b *backing) Resize(w, h int) { b.sizes = append(b.sizes, [2]int{w, h}) }

func TestViewportChangeCentresOrigin(t *testing.T) {
	s := &surface{w: 800, h: 600}
	b := &backing{}
	c := viewport.NewController(s, b, nil)

	c.OnViewportChange()
	st := c.State()
	if st.Origin != [2]float64{400, 300} || st.ScaleY != -1 {
		t.Errorf("unexpected state %+v", st)
	}
	if diff := cmp.Diff([][2]int{{800, 600}}, b.sizes); diff != "" {
		t.Errorf("backing resize mismatch (-want +got):\n%s", diff)
	}

	x, y := st.ToPixels(100, 50)
	if x != 500 || y != 250 {
		t.Errorf("ToPixels(100, 50) = %v, %v", x, y)
	}
	x, y = st.FromPixels(500, 250)
	if x != 100 || y != 50 {
		t.Errorf("FromPixels(500, 250) = %v, %v", x, y)
	}
}

func TestViewportChangeIdempotent(t *testing.T) {
	s := &surface{w: 1280, h: 720}
	c := viewport.NewController(s, &backing{}, nil)

	c.OnViewportChange()
	first := c.State()
	c.OnViewportChange()
	if diff := cmp.Diff(first, c.State()); diff != "" {
		t.Errorf("state changed on repeated call (-want +got):\n%s", diff)
	}

	s.w, s.h = 720, 1280
	c.OnViewportChange()
	if c.State().Origin != [2]float64{360, 640} {
		t.Errorf("orientation change not applied: %+v", c.State().Origin)
	}
}

func TestProjectionMapsCornersToClipSpace(t *testing.T) {
	c := viewport.NewController(&surface{w: 200, h: 100}, &backing{}, nil)
	c.OnViewportChange()
	p := c.State().Projection

	// top right corner in centred, y-up pixels
	x, y := float32(100), float32(50)
	cx := p[0]*x + p[4]*y + p[12]
	cy := p[1]*x + p[5]*y + p[13]
	if math.Abs(float64(cx-1)) > 1e-6 || math.Abs(float64(cy-1)) > 1e-6 {
		t.Errorf("corner maps to (%v, %v), want (1, 1)", cx, cy)
	}
}

func TestZeroSizeIgnored(t *testing.T) {
	b := &backing{}
	c := viewport.NewController(&surface{}, b, nil)
	called := false
	c.OnChange(func(viewport.State) { called = true })
	c.OnViewportChange()
	if len(b.sizes) != 0 || called {
		t.Errorf("zero sized surface should be ignored")
	}
}

func TestFullscreenFallback(t *testing.T) {
	var tried []string
	entry := func(name string, err error) viewport.Entry {
		return viewport.Entry{Name: name, Enter: func() error {
			tried = append(tried, name)
			return err
		}}
	}

	c := viewport.NewController(&surface{1, 1}, &backing{}, nil)
	ok := c.RequestFullscreen([]viewport.Entry{
		{Name: "missing"},
		entry("broken", viewport.ErrUnavailable),
		entry("works", nil),
		entry("never", nil),
	})
	if !ok || !c.Fullscreen() {
		t.Errorf("expected fullscreen to succeed")
	}
	if diff := cmp.Diff([]string{"broken", "works"}, tried); diff != "" {
		t.Errorf("entry points tried mismatch (-want +got):\n%s", diff)
	}
}

func TestFullscreenDegradesWithWarning(t *testing.T) {
	log := logging.New(10)
	c := viewport.NewController(&surface{1, 1}, &backing{}, log)

	ok := c.RequestFullscreen([]viewport.Entry{
		{Name: "requestFullscreen"},
		{Name: "webkitRequestFullscreen", Enter: func() error { return errors.New("denied") }},
	})
	if ok || c.Fullscreen() {
		t.Errorf("expected fullscreen to fail")
	}

	var warned bool
	for _, e := range log.Entries() {
		if e.Level == logging.Warning && strings.Contains(e.Message, "webkitRequestFullscreen") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("expected a warning naming the entry points, got %v", log.Entries())
	}

	// leaving fullscreen when not in fullscreen is a no-op
	if !c.ExitFullscreen(nil) {
		t.Errorf("ExitFullscreen should succeed when windowed")
	}
}
