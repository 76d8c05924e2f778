// Package input buffers keyboard events and tracks pointer state between
// frames. Experiment code polls it once per frame; platform callbacks fill
// it whenever the OS delivers input.
package input

import (
	"slices"
	"sync"

	"github.com/hubastard/stimgrove/engine/keys"
)

// KeyEvent is a captured key press. It is not modified once buffered.
type KeyEvent struct {
	Code      string  // standard key code, eg. "KeyA"
	Key       string  // label reported by the platform, eg. "a" or "A"
	KeyCode   int     // legacy numeric key code, 0 if unknown
	Timestamp float64 // seconds on the monotonic clock
}

// KeyPress is one result of a Consume query. Timestamp is zero unless a
// timestamped query was made.
type KeyPress struct {
	Name      string
	Timestamp float64
}

// Buffer is an ordered queue of key events. Capture and Consume are atomic
// with respect to each other.
type Buffer struct {
	mu     sync.Mutex
	events []KeyEvent
}

// Capture appends a key event. An empty code is resolved from the legacy
// numeric code where possible.
func (b *Buffer) Capture(code, key string, keyCode int, timestamp float64) {
	if code == "" {
		code, _ = keys.LegacyNumericToStandard(keyCode)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, KeyEvent{
		Code:      code,
		Key:       key,
		KeyCode:   keyCode,
		Timestamp: timestamp,
	})
}

// Consume removes and returns the buffered events accepted by filter, in
// the order they were captured. Filter entries may be legacy names or
// standard codes; returned names are always legacy names.
//
// With a nil filter every event is accepted, except that events whose code
// has no legacy name stay in the buffer and are never returned. With a
// filter, an event matches on its own code or, failing that, on the code
// derived from its legacy numeric code. A match on a filter entry that has
// no legacy name also leaves the event in the buffer.
//
// Events that are not returned stay buffered in their original order.
func (b *Buffer) Consume(filter []string, timeStamped bool) []KeyPress {
	var codes []string
	if filter != nil {
		codes = keys.ToStandardCodes(filter)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var presses []KeyPress
	retained := make([]KeyEvent, 0, len(b.events))

	for _, ev := range b.events {
		var name string
		var ok bool

		if filter == nil {
			name, ok = keys.ToLegacyName(ev.Code)
		} else {
			i := slices.Index(codes, ev.Code)
			if i < 0 {
				if c, found := keys.LegacyNumericToStandard(ev.KeyCode); found {
					i = slices.Index(codes, c)
				}
			}
			if i >= 0 {
				name, ok = keys.ToLegacyName(codes[i])
			}
		}

		if !ok {
			retained = append(retained, ev)
			continue
		}

		p := KeyPress{Name: name}
		if timeStamped {
			p.Timestamp = ev.Timestamp
		}
		presses = append(presses, p)
	}

	b.events = retained
	return presses
}

// Clear removes every buffered event.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = b.events[:0]
}

// Len returns the number of buffered events.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// Events returns a copy of the buffered events.
func (b *Buffer) Events() []KeyEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.events)
}
