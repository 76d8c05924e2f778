// Package clock provides the time references used for input timestamps and
// flip times. All times are float64 seconds.
package clock

import (
	"sync"
	"time"
)

// reference is taken once at process start. time.Time carries a monotonic
// reading so wall clock changes do not affect Since().
var reference = time.Now()

// Source returns the current time in seconds.
type Source func() float64

// Monotonic returns seconds elapsed since the process-wide reference.
func Monotonic() float64 {
	return time.Since(reference).Seconds()
}

// Clock measures time since its last reset, on top of a Source.
type Clock struct {
	mu        sync.Mutex
	now       Source
	lastReset float64
}

// New returns a clock that starts counting now. A nil source means
// Monotonic.
func New(now Source) *Clock {
	if now == nil {
		now = Monotonic
	}
	return &Clock{now: now, lastReset: now()}
}

// Time returns the seconds since the last reset.
func (c *Clock) Time() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now() - c.lastReset
}

// LastResetTime returns the source time at which the clock was last reset.
func (c *Clock) LastResetTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastReset
}

// Reset restarts the clock. An optional offset moves the reset point into
// the past (positive) or future (negative), so that Time() immediately
// returns the offset.
func (c *Clock) Reset(offset ...float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastReset = c.now()
	for _, o := range offset {
		c.lastReset -= o
	}
}

// Now returns the underlying source time.
func (c *Clock) Now() float64 {
	return c.now()
}
