package main

import (
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/gfx/headless"
	"github.com/hubastard/stimgrove/engine/keys"
)

// Responder answers trials on a headless window by injecting key presses a
// fixed delay after each target appears. It cycles through the response
// keys.
type Responder struct {
	win   *headless.Window
	keys  []string
	delay float64
	trial *LayerTrial

	answered int // trials answered so far
	shownAt  float64
}

func (r *Responder) OnAttach(e *core.Engine)                    {}
func (r *Responder) OnDetach(e *core.Engine)                    {}
func (r *Responder) OnEvent(e *core.Engine, ev core.Event) bool { return false }

func (r *Responder) OnFrame(e *core.Engine) {
	state, n := r.trial.State()
	if state != stateTarget || n < r.answered || r.trial.onset == 0 {
		r.shownAt = 0
		return
	}
	if r.shownAt == 0 {
		r.shownAt = e.Now()
	}
	if e.Now()-r.shownAt < r.delay {
		return
	}

	name := r.keys[n%len(r.keys)]
	r.win.Inject(core.EventKey{Code: keys.ToStandardCode(name), Key: name, Down: true})
	r.answered = n + 1
	r.shownAt = 0
}
