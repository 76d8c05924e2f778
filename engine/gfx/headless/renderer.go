package headless

import (
	"sync"
	"time"

	"github.com/hubastard/stimgrove/engine/colors"
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/frame"
	"github.com/hubastard/stimgrove/engine/gfx"
)

// number of frames kept by a renderer.
const maxRecorded = 600

// Frame is one rendered frame.
type Frame struct {
	Color colors.Color
	Prims []gfx.Primitive
}

// Renderer implements core.Renderer by recording frames.
type Renderer struct {
	win core.Window

	mu     sync.Mutex
	clear  colors.Color
	frames []Frame
	total  int
	w, h   int

	// pacing
	rate   float64
	ticker *time.Ticker
}

// NewRenderer creates a renderer presenting to win. If rate is positive
// Sync blocks until the next tick of a clock running at rate Hz, the way a
// display would hold the frame until vertical blank.
func NewRenderer(win core.Window, rate float64) *Renderer {
	r := &Renderer{win: win, rate: rate}
	r.w, r.h = win.FramebufferSize()
	if rate > 0 {
		r.ticker = time.NewTicker(time.Duration(float64(time.Second) / rate))
	}
	return r
}

// Factory adapts NewRenderer for core.Run.
func Factory(rate float64) func(core.Window, core.Config) (core.Renderer, error) {
	return func(win core.Window, _ core.Config) (core.Renderer, error) {
		return NewRenderer(win, rate), nil
	}
}

func (r *Renderer) SetClearColor(c colors.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clear = c
}

func (r *Renderer) Render(s *frame.Scene) {
	var prims []gfx.Primitive
	for _, d := range s.Nodes() {
		if v, ok := d.(gfx.Visual); ok {
			prims = append(prims, v.Primitives()...)
		}
	}

	r.mu.Lock()
	r.frames = append(r.frames, Frame{Color: r.clear, Prims: prims})
	if len(r.frames) > maxRecorded {
		r.frames = r.frames[len(r.frames)-maxRecorded:]
	}
	r.total++
	r.mu.Unlock()

	r.win.SwapBuffers()
}

func (r *Renderer) Sync() {
	if r.ticker != nil {
		<-r.ticker.C
	}
}

func (r *Renderer) Resize(w, h int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.w, r.h = w, h
}

func (r *Renderer) Shutdown() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

// Size returns the size of the last resize.
func (r *Renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.w, r.h
}

// Frames returns the most recently rendered frames, oldest first.
func (r *Renderer) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

// Last returns the most recent frame.
func (r *Renderer) Last() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}

// Total returns the number of frames rendered, including those no longer
// recorded.
func (r *Renderer) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}
