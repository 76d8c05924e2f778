// Package viewport keeps the drawing coordinate system in step with the
// window: the origin sits at the centre of the backing store and y points up.
package viewport

import (
	"sync"

	"github.com/hubastard/stimgrove/engine/logging"
)

// Surface reports the current size of the drawable area in pixels.
type Surface interface {
	FramebufferSize() (int, int)
}

// Resizer resizes the renderer's backing store.
type Resizer interface {
	Resize(w, h int)
}

// State is the coordinate system derived from the viewport extents.
type State struct {
	Width, Height int
	// Origin is the position of (0,0) in backing-store pixels (y down).
	Origin [2]float64
	// ScaleY is -1: stimulus y grows upward while pixel rows grow downward.
	ScaleY float64
	// Projection maps centred, y-up pixel coordinates to clip space.
	// Column-major.
	Projection [16]float32
}

// Controller reacts to window size and orientation changes.
type Controller struct {
	surface Surface
	backing Resizer
	log     *logging.Logger

	mu         sync.Mutex
	state      State
	fullscreen bool
	onChange   []func(State)
}

// NewController creates a controller. Call OnViewportChange once the
// surface exists to establish the initial state.
func NewController(surface Surface, backing Resizer, log *logging.Logger) *Controller {
	return &Controller{surface: surface, backing: backing, log: log}
}

// OnChange registers f to be called after every effective viewport change.
func (c *Controller) OnChange(f func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, f)
}

// OnViewportChange reads the surface size, resizes the backing store and
// recentres the origin. Calling it again with unchanged extents leaves the
// state unchanged. A zero sized surface (eg. a minimised window) is
// ignored.
func (c *Controller) OnViewportChange() {
	w, h := c.surface.FramebufferSize()
	if w < 1 || h < 1 {
		return
	}

	c.backing.Resize(w, h)

	c.mu.Lock()
	c.state = StateFor(w, h)
	s := c.state
	cbs := append([]func(State){}, c.onChange...)
	c.mu.Unlock()

	for _, f := range cbs {
		f(s)
	}
}

// StateFor returns the coordinate system of a w x h backing store.
func StateFor(w, h int) State {
	halfW := float32(w) * 0.5
	halfH := float32(h) * 0.5
	return State{
		Width:      w,
		Height:     h,
		Origin:     [2]float64{float64(w) / 2, float64(h) / 2},
		ScaleY:     -1,
		Projection: ortho(-halfW, halfW, -halfH, halfH, -1, 1),
	}
}

// State returns the current coordinate system.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ToPixels converts centred, y-up coordinates to backing-store pixels.
func (s State) ToPixels(x, y float64) (float64, float64) {
	return s.Origin[0] + x, s.Origin[1] + s.ScaleY*y
}

// FromPixels converts backing-store pixels (top-left origin, y down) to
// centred, y-up coordinates.
func (s State) FromPixels(px, py float64) (float64, float64) {
	return px - s.Origin[0], (py - s.Origin[1]) / s.ScaleY
}

// ortho builds an orthographic projection, column-major, GLSL style.
func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}
