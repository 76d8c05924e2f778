package core

// Event model shared by the platform backends.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventResize reports a new framebuffer size, or a change of orientation.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventKey is a key transition. Code is the standard key code, Key the
// platform's label for it and KeyCode the legacy numeric code. Time is the
// delivery instant on the monotonic clock.
type EventKey struct {
	Code    string
	Key     string
	KeyCode int
	Down    bool
	Mods    Mod
	Time    float64
}

func (EventKey) isEvent() {}

// EventMouseMove reports the pointer position in framebuffer pixels,
// top-left origin.
type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

// EventMouseButton is a button transition at a framebuffer position.
type EventMouseButton struct {
	Button int
	Down   bool
	X, Y   float64
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
