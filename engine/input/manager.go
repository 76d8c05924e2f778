package input

import (
	"fmt"

	"github.com/hubastard/stimgrove/engine/clock"
	"github.com/hubastard/stimgrove/engine/logging"
)

// Manager owns the key buffer and pointer state for one window and logs the
// input it captures.
type Manager struct {
	Keys    *Buffer
	Pointer *Pointer

	log *logging.Logger
	now clock.Source
}

// NewManager creates a manager stamping input with now. A nil logger
// disables input logging.
func NewManager(log *logging.Logger, now clock.Source) *Manager {
	if now == nil {
		now = clock.Monotonic
	}
	return &Manager{
		Keys:    &Buffer{},
		Pointer: NewPointer(now),
		log:     log,
		now:     now,
	}
}

// Now returns the manager's current time.
func (m *Manager) Now() float64 { return m.now() }

// KeyDown captures a key press delivered at time t.
func (m *Manager) KeyDown(code, key string, keyCode int, t float64) {
	m.Keys.Capture(code, key, keyCode, t)
	m.logf(t, "keydown: %s", key)
}

// GetKeys consumes buffered key presses. See Buffer.Consume.
func (m *Manager) GetKeys(keyList []string, timeStamped bool) []KeyPress {
	return m.Keys.Consume(keyList, timeStamped)
}

// ClearKeys empties the key buffer.
func (m *Manager) ClearKeys() {
	m.Keys.Clear()
}

// ClearEvents empties the key buffer and resets the pointer.
func (m *Manager) ClearEvents() {
	m.Keys.Clear()
	m.Pointer.Reset()
}

// ButtonDown forwards a pointer press to the pointer state.
func (m *Manager) ButtonDown(button int, pos [2]float64) {
	t := m.now()
	m.Pointer.OnButtonDown(button, t, pos)
	m.logf(t, "mouse: %d button down, pos=(%.0f,%.0f)", button, pos[0], pos[1])
}

// ButtonUp forwards a pointer release to the pointer state.
func (m *Manager) ButtonUp(button int, pos [2]float64) {
	t := m.now()
	m.Pointer.OnButtonUp(button, t, pos)
	m.logf(t, "mouse: %d button up, pos=(%.0f,%.0f)", button, pos[0], pos[1])
}

// Move forwards a pointer movement to the pointer state. Movement is not
// logged.
func (m *Manager) Move(pos [2]float64) {
	m.Pointer.OnMove(pos)
}

// Wheel forwards wheel movement to the pointer state.
func (m *Manager) Wheel(dx, dy float64) {
	m.Pointer.OnWheel(dx, dy)
	m.logf(m.now(), "mouse: wheel shift=(%g,%g)", dx, dy)
}

func (m *Manager) logf(t float64, format string, args ...any) {
	if m.log == nil {
		return
	}
	m.log.Log(fmt.Sprintf(format, args...), logging.Data, t, nil)
}
