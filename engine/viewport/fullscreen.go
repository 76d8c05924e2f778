package viewport

import (
	"errors"
	"strings"
)

// ErrUnavailable is returned by fullscreen entry points that the platform
// does not provide.
var ErrUnavailable = errors.New("not available")

// Entry is one platform specific way of entering and leaving fullscreen.
// A nil function means the entry point is not provided.
type Entry struct {
	Name  string
	Enter func() error
	Exit  func() error
}

// Fullscreen reports whether the last fullscreen request succeeded.
func (c *Controller) Fullscreen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fullscreen
}

// RequestFullscreen tries each entry point in order and stops at the first
// one that succeeds. If none succeeds a warning is logged and the session
// continues windowed.
func (c *Controller) RequestFullscreen(entries []Entry) bool {
	ok := c.try(entries, func(e Entry) func() error { return e.Enter })
	if !ok {
		c.warn("unable to go fullscreen", entries)
	}

	c.mu.Lock()
	c.fullscreen = ok
	c.mu.Unlock()
	return ok
}

// ExitFullscreen is the counterpart to RequestFullscreen.
func (c *Controller) ExitFullscreen(entries []Entry) bool {
	c.mu.Lock()
	if !c.fullscreen {
		c.mu.Unlock()
		return true
	}
	c.mu.Unlock()

	ok := c.try(entries, func(e Entry) func() error { return e.Exit })
	if !ok {
		c.warn("unable to leave fullscreen", entries)
		return false
	}

	c.mu.Lock()
	c.fullscreen = false
	c.mu.Unlock()
	return true
}

func (c *Controller) try(entries []Entry, fn func(Entry) func() error) bool {
	for _, e := range entries {
		f := fn(e)
		if f == nil {
			continue
		}
		if err := f(); err != nil {
			if c.log != nil {
				c.log.Debug(e.Name + ": " + err.Error())
			}
			continue
		}
		return true
	}
	return false
}

func (c *Controller) warn(msg string, entries []Entry) {
	if c.log == nil {
		return
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	if len(names) == 0 {
		c.log.Warning(msg + ": no entry points")
		return
	}
	c.log.Warning(msg + ": tried " + strings.Join(names, ", "))
}
