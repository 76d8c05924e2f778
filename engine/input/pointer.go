package input

import (
	"sync"

	"github.com/hubastard/stimgrove/engine/clock"
)

// NumButtons is the number of pointer buttons tracked: left, middle, right.
const NumButtons = 3

// Button is a copy of the press record of a single pointer button.
type Button struct {
	Pressed bool
	// LastReset is the time the button's clock was last reset.
	LastReset float64
	// Elapsed is the time of the most recent press transition measured from
	// LastReset.
	Elapsed float64
}

// button state. Each button owns its clock so that resetting one never
// affects another.
type button struct {
	pressed bool
	clock   *clock.Clock
	elapsed float64
}

// Pointer is a snapshot of the pointer, updated by the platform callbacks.
type Pointer struct {
	mu        sync.Mutex
	now       clock.Source
	pos       [2]float64
	wheelRel  [2]float64
	buttons   [NumButtons]button
	moveClock *clock.Clock
	moved     bool
}

// NewPointer creates a pointer whose button and move clocks run on now. A
// nil source means clock.Monotonic.
func NewPointer(now clock.Source) *Pointer {
	if now == nil {
		now = clock.Monotonic
	}
	p := &Pointer{now: now, moveClock: clock.New(now)}
	for i := range p.buttons {
		p.buttons[i].clock = clock.New(now)
	}
	return p
}

// OnButtonDown records a press. It does not reset the button clock.
func (p *Pointer) OnButtonDown(button int, t float64, pos [2]float64) {
	p.onButton(button, true, t, pos)
}

// OnButtonUp records a release. The elapsed time is measured from the same
// clock reset as the press.
func (p *Pointer) OnButtonUp(button int, t float64, pos [2]float64) {
	p.onButton(button, false, t, pos)
}

func (p *Pointer) onButton(button int, pressed bool, t float64, pos [2]float64) {
	if button < 0 || button >= NumButtons {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	b := &p.buttons[button]
	b.pressed = pressed
	b.elapsed = t - b.clock.LastResetTime()
	p.pos = pos
}

// OnMove records a new position and restarts the move clock.
func (p *Pointer) OnMove(pos [2]float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos = pos
	p.moved = true
	p.moveClock.Reset()
}

// OnWheel accumulates wheel movement until read with WheelRel.
func (p *Pointer) OnWheel(dx, dy float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.wheelRel[0] += dx
	p.wheelRel[1] += dy
}

// Position returns the last known pointer position.
func (p *Pointer) Position() [2]float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos
}

// Pressed returns the press state of every button.
func (p *Pointer) Pressed() [NumButtons]bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out [NumButtons]bool
	for i, b := range p.buttons {
		out[i] = b.pressed
	}
	return out
}

// Times returns the elapsed time recorded at each button's last transition.
func (p *Pointer) Times() [NumButtons]float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out [NumButtons]float64
	for i, b := range p.buttons {
		out[i] = b.elapsed
	}
	return out
}

// Button returns a copy of a button record.
func (p *Pointer) Button(i int) Button {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= NumButtons {
		return Button{}
	}
	b := p.buttons[i]
	return Button{Pressed: b.pressed, LastReset: b.clock.LastResetTime(), Elapsed: b.elapsed}
}

// WheelRel returns the wheel movement accumulated since the previous call.
func (p *Pointer) WheelRel() [2]float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	w := p.wheelRel
	p.wheelRel = [2]float64{}
	return w
}

// ClickReset restarts the clocks of the given buttons, or of every button
// if none is given, and zeroes their elapsed times.
func (p *Pointer) ClickReset(buttons ...int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(buttons) == 0 {
		buttons = []int{0, 1, 2}
	}
	for _, i := range buttons {
		if i < 0 || i >= NumButtons {
			continue
		}
		p.buttons[i].clock.Reset()
		p.buttons[i].elapsed = 0
	}
}

// MoveDuration returns the time since the last movement.
func (p *Pointer) MoveDuration() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.moveClock.Time()
}

// Moved reports whether the pointer has moved since the last call.
func (p *Pointer) Moved() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	m := p.moved
	p.moved = false
	return m
}

// Reset clears position, wheel and button state and restarts every clock.
func (p *Pointer) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos = [2]float64{}
	p.wheelRel = [2]float64{}
	p.moved = false
	for i := range p.buttons {
		p.buttons[i].pressed = false
		p.buttons[i].elapsed = 0
		p.buttons[i].clock.Reset()
	}
	p.moveClock.Reset()
}
