// Package frame drives the once-per-refresh display cycle. Attribute changes
// made by experiment code are applied just before the render, log messages
// scheduled during a frame are stamped with the time of the flip that shows
// it, and a single callback can be attached to the next flip.
package frame

import (
	"sync"

	"github.com/hubastard/stimgrove/engine/clock"
	"github.com/hubastard/stimgrove/engine/colors"
	"github.com/hubastard/stimgrove/engine/logging"
	"github.com/hubastard/stimgrove/engine/profiler"
)

// Phase of the frame cycle.
type Phase int

const (
	Idle Phase = iota
	Updating
	Rendering
	Flushing
)

func (p Phase) String() string {
	switch p {
	case Updating:
		return "updating"
	case Rendering:
		return "rendering"
	case Flushing:
		return "flushing"
	}
	return "idle"
}

// Backend draws a scene and reports when the frame has been composited.
type Backend interface {
	SetClearColor(c colors.Color)
	// Render draws every drawable in the scene and presents the result.
	Render(s *Scene)
	// Sync blocks until the presented frame has been composited.
	Sync()
}

type logRequest struct {
	msg   string
	level logging.Level
	obj   any
}

// number of flips used to estimate the frame rate.
const rateWindow = 60

// Loop owns the scene and runs one Tick per display refresh.
type Loop struct {
	backend Backend
	sink    logging.Sink
	now     clock.Source

	scene      Scene
	phase      Phase
	frameCount uint64

	color      colors.Color
	colorDirty bool

	// guards the log queue and the flip registration, both of which may be
	// written from outside the frame cycle
	mu       sync.Mutex
	queue    []logRequest
	flip     func(args ...any)
	flipArgs []any

	flips []float64
}

// NewLoop creates a loop drawing with backend and writing flip-stamped log
// entries to sink. A nil source means clock.Monotonic.
func NewLoop(backend Backend, sink logging.Sink, now clock.Source) *Loop {
	if now == nil {
		now = clock.Monotonic
	}
	return &Loop{
		backend: backend,
		sink:    sink,
		now:     now,
		flips:   make([]float64, 0, rateWindow),
	}
}

// Scene returns the draw list.
func (l *Loop) Scene() *Scene { return &l.scene }

// Add puts d on top of the draw list and marks it for update so that it is
// committed before its first render.
func (l *Loop) Add(d Drawable) {
	l.scene.Add(d)
	d.MarkNeedsUpdate()
}

// Remove takes d off the draw list.
func (l *Loop) Remove(d Drawable) {
	l.scene.Remove(d)
}

// MarkNeedsUpdate flags d. The update is applied at the next Tick.
func (l *Loop) MarkNeedsUpdate(d Drawable) {
	d.MarkNeedsUpdate()
}

// FullRefresh flags every drawable and the background colour.
func (l *Loop) FullRefresh() {
	for _, d := range l.scene.nodes {
		d.MarkNeedsUpdate()
	}
	l.colorDirty = true
}

// SetColor changes the background colour from the next Tick.
func (l *Loop) SetColor(c colors.Color) {
	l.color = c
	l.colorDirty = true
}

// Color returns the background colour.
func (l *Loop) Color() colors.Color { return l.color }

// ScheduleLog queues a message to be logged with the time of the next flip.
// It never blocks and may be called at any time, including from a flip
// callback, in which case the message is logged at the following flip.
func (l *Loop) ScheduleLog(msg string, level logging.Level, obj any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queue = append(l.queue, logRequest{msg: msg, level: level, obj: obj})
}

// OnFlip registers fn to be called with args straight after the next flip.
// Only one registration is held: a later call replaces an earlier one that
// has not run yet. The registration is cleared once it has run, so a
// callback wanted on every frame must register again, either on every frame
// or from inside the callback itself.
func (l *Loop) OnFlip(fn func(args ...any), args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flip = fn
	l.flipArgs = args
}

// FrameCount returns the number of completed ticks.
func (l *Loop) FrameCount() uint64 { return l.frameCount }

// Phase returns the current phase. Outside of Tick it is always Idle.
func (l *Loop) Phase() Phase { return l.phase }

// Tick runs one complete frame cycle: apply pending updates, render, wait
// for the backend, then log and call back with the flip time.
func (l *Loop) Tick() {
	l.update()
	l.render()
	l.flush()
	l.frameCount++
	l.phase = Idle
}

func (l *Loop) update() {
	defer profiler.Start("frame.update")()
	l.phase = Updating

	if l.colorDirty {
		l.backend.SetClearColor(l.color)
		l.colorDirty = false
	}

	// a drawable is never part of the scene while it is being changed
	for i := 0; i < len(l.scene.nodes); i++ {
		if !l.scene.nodes[i].NeedsUpdate() {
			continue
		}
		d := l.scene.detach(i)
		d.ApplyPendingUpdate()
		l.scene.attach(i, d)
	}
}

func (l *Loop) render() {
	defer profiler.Start("frame.render")()
	l.phase = Rendering
	l.backend.Render(&l.scene)
	l.backend.Sync()
}

func (l *Loop) flush() {
	defer profiler.Start("frame.flush")()
	l.phase = Flushing

	t := l.now()
	l.recordFlip(t)

	l.mu.Lock()
	queue := l.queue
	l.queue = nil
	fn, args := l.flip, l.flipArgs
	l.flip, l.flipArgs = nil, nil
	l.mu.Unlock()

	if l.sink != nil {
		for _, r := range queue {
			l.sink.Log(r.msg, r.level, t, r.obj)
		}
	}

	if fn != nil {
		fn(args...)
	}
}

func (l *Loop) recordFlip(t float64) {
	if len(l.flips) == rateWindow {
		copy(l.flips, l.flips[1:])
		l.flips = l.flips[:rateWindow-1]
	}
	l.flips = append(l.flips, t)
}

// LastFlip returns the time of the most recent flip, or zero before the
// first Tick.
func (l *Loop) LastFlip() float64 {
	if len(l.flips) == 0 {
		return 0
	}
	return l.flips[len(l.flips)-1]
}

// ActualFrameRate estimates flips per second over the recent frames. It
// returns zero until two flips have been seen.
func (l *Loop) ActualFrameRate() float64 {
	n := len(l.flips)
	if n < 2 {
		return 0
	}
	span := l.flips[n-1] - l.flips[0]
	if span <= 0 {
		return 0
	}
	return float64(n-1) / span
}
