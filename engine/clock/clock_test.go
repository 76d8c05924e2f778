package clock_test

import (
	"testing"

	"github.com/hubastard/stimgrove/engine/clock"
)

type manual struct{ t float64 }

func (m *manual) now() float64 { return m.t }

func TestClockReset(t *testing.T) {
	src := &manual{t: 10}
	c := clock.New(src.now)

	if c.Time() != 0 {
		t.Errorf("new clock should read zero, got %v", c.Time())
	}

	src.t = 12.5
	if got := c.Time(); got != 2.5 {
		t.Errorf("Time() = %v, want 2.5", got)
	}
	if got := c.LastResetTime(); got != 10 {
		t.Errorf("LastResetTime() = %v, want 10", got)
	}

	c.Reset()
	if got := c.LastResetTime(); got != 12.5 {
		t.Errorf("LastResetTime() after reset = %v, want 12.5", got)
	}

	c.Reset(1)
	if got := c.Time(); got != 1 {
		t.Errorf("Time() after offset reset = %v, want 1", got)
	}
}

func TestMonotonic(t *testing.T) {
	a := clock.Monotonic()
	b := clock.Monotonic()
	if b < a {
		t.Errorf("monotonic clock went backwards: %v then %v", a, b)
	}
}
