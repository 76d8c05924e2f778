package main

import (
	"fmt"

	"github.com/hubastard/stimgrove/engine/assets"
	"github.com/hubastard/stimgrove/engine/clock"
	"github.com/hubastard/stimgrove/engine/colors"
	"github.com/hubastard/stimgrove/engine/config"
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/keys"
	"github.com/hubastard/stimgrove/engine/logging"
	"github.com/hubastard/stimgrove/engine/stim"
	"github.com/hubastard/stimgrove/engine/text"
)

type trialState int

const (
	stateStart trialState = iota
	stateFixation
	stateTarget
	stateDone
)

// Result of one trial. RT is zero when the trial timed out.
type Result struct {
	Trial   int     `json:"trial"`
	Target  string  `json:"target"`
	Key     string  `json:"key"`
	RT      float64 `json:"rt"`
	Correct bool    `json:"correct"`
}

// ------- Choice reaction trials -------
type LayerTrial struct {
	exp config.Experiment

	cross  *stim.Cross
	target *stim.Text
	font   *text.Font // loaded from a file, closed on detach
	rt     *clock.Clock

	state   trialState
	trial   int
	onset   float64 // flip time of the current phase, zero until shown
	results []Result
}

func NewLayerTrial(exp config.Experiment) *LayerTrial {
	return &LayerTrial{exp: exp}
}

func (l *LayerTrial) OnAttach(e *core.Engine) {
	l.rt = clock.New(e.Now)

	l.cross = stim.NewCross("fixation", 40, 4)
	l.cross.SetVisible(false)

	l.target = stim.NewText("target", "", l.loadFont(e), float32(l.exp.TextHeight))
	l.target.SetColor(colors.White)
	l.target.SetVisible(false)

	e.Frames.Add(l.cross)
	e.Frames.Add(l.target)
}

func (l *LayerTrial) OnDetach(e *core.Engine) {
	e.Frames.Remove(l.cross)
	e.Frames.Remove(l.target)
	if l.font != nil {
		l.font.Close()
	}
}

// loadFont returns the configured face, or the built-in one if there is
// none or it fails to load.
func (l *LayerTrial) loadFont(e *core.Engine) *text.Font {
	if l.exp.Font == "" {
		return text.Default()
	}
	f, err := text.LoadTTF(assets.FontPath(l.exp.Font), l.exp.TextHeight)
	if err != nil {
		e.Log.Warning(err.Error())
		return text.Default()
	}
	l.font = f
	return f
}

func (l *LayerTrial) OnEvent(e *core.Engine, ev core.Event) bool { return false }

// State reports the trial phase and the number of completed trials.
func (l *LayerTrial) State() (trialState, int) { return l.state, l.trial }

// Results returns the completed trials.
func (l *LayerTrial) Results() []Result { return l.results }

func (l *LayerTrial) OnFrame(e *core.Engine) {
	if len(e.Input.GetKeys([]string{"escape"}, false)) > 0 {
		e.Log.Exp("experiment aborted")
		l.finish(e)
		return
	}

	switch l.state {
	case stateStart:
		if l.trial >= l.exp.Trials {
			l.finish(e)
			return
		}
		l.showFixation(e)

	case stateFixation:
		if l.onset > 0 && e.Now()-l.onset >= l.exp.Fixation {
			l.showTarget(e)
		}

	case stateTarget:
		if l.onset == 0 {
			return
		}
		if keys := e.Input.GetKeys(l.exp.ResponseKeys, true); len(keys) > 0 {
			k := keys[0]
			l.record(e, k.Name, k.Timestamp-l.rt.LastResetTime())
			return
		}
		if l.exp.Timeout > 0 && e.Now()-l.onset >= l.exp.Timeout {
			l.record(e, "", 0)
		}
	}
}

func (l *LayerTrial) showFixation(e *core.Engine) {
	l.cross.SetVisible(true)
	l.target.SetVisible(false)
	l.onset = 0
	l.state = stateFixation
	e.Frames.OnFlip(func(...any) { l.onset = e.Frames.LastFlip() })
}

func (l *LayerTrial) showTarget(e *core.Engine) {
	name := l.targetName()
	l.cross.SetVisible(false)
	l.target.SetText(name)
	l.target.SetVisible(true)
	l.onset = 0
	l.state = stateTarget

	// response times count from the flip that shows the target
	e.Frames.OnFlip(func(...any) {
		l.rt.Reset()
		e.Input.ClearKeys()
		l.onset = e.Frames.LastFlip()
	})
	e.Frames.ScheduleLog(fmt.Sprintf("trial %d: target %q shown", l.trial+1, name), logging.Exp, nil)
}

func (l *LayerTrial) targetName() string {
	return l.exp.Targets[l.trial%len(l.exp.Targets)]
}

func (l *LayerTrial) record(e *core.Engine, key string, rt float64) {
	want := expectedKey(l.exp.ResponseKeys[(l.trial%len(l.exp.Targets))%len(l.exp.ResponseKeys)])
	r := Result{
		Trial:   l.trial + 1,
		Target:  l.targetName(),
		Key:     key,
		RT:      rt,
		Correct: key == want,
	}
	l.results = append(l.results, r)

	if key == "" {
		e.Log.Data(fmt.Sprintf("trial %d: no response", r.Trial))
	} else {
		e.Log.Log(fmt.Sprintf("trial %d: key=%s rt=%.4f correct=%t", r.Trial, r.Key, r.RT, r.Correct), logging.Data, e.Now(), r)
	}

	l.target.SetVisible(false)
	l.trial++
	l.state = stateStart
}

// expectedKey returns the name a key press is reported under for a
// configured response key, which may be a legacy name or a standard code.
func expectedKey(name string) string {
	if legacy, ok := keys.ToLegacyName(keys.ToStandardCode(name)); ok {
		return legacy
	}
	return name
}

func (l *LayerTrial) finish(e *core.Engine) {
	if l.state == stateDone {
		return
	}
	l.state = stateDone
	l.cross.SetVisible(false)
	l.target.SetVisible(false)

	correct := 0
	for _, r := range l.results {
		if r.Correct {
			correct++
		}
	}
	e.Log.Exp(fmt.Sprintf("%d trials, %d correct", len(l.results), correct))
	e.Quit()
}
