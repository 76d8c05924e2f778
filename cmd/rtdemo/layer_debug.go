package main

import (
	"fmt"

	"github.com/hubastard/stimgrove/engine/colors"
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/profiler"
	"github.com/hubastard/stimgrove/engine/stim"
	"github.com/hubastard/stimgrove/engine/text"
	"github.com/hubastard/stimgrove/engine/viewport"
)

// frames between label refreshes
const debugRefresh = 30

// ------- Frame timing overlay, toggled with F1 -------
type LayerDebug struct {
	label   *stim.Text
	margin  float32
	visible bool
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.margin = 12
	l.label = stim.NewText("debug", "", text.Default(), 13)
	l.label.SetColor(colors.Yellow)
	l.label.SetAlignment(text.AlignLeft)
	l.label.SetVisible(l.visible)
	e.Frames.Add(l.label)

	l.place(e.Viewport.State())
	e.Viewport.OnChange(l.place)
}

func (l *LayerDebug) OnDetach(e *core.Engine) {
	e.Frames.Remove(l.label)
}

// place anchors the label to the top-left corner.
func (l *LayerDebug) place(s viewport.State) {
	size := l.label.Attrs().Size
	x := -float32(s.Width)/2 + l.margin + size[0]/2
	y := float32(s.Height)/2 - l.margin - size[1]/2
	l.label.SetPos(x, y)
}

func (l *LayerDebug) OnFrame(e *core.Engine) {
	if e.Frames.FrameCount()%debugRefresh != 0 {
		return
	}
	defer profiler.Start("LayerDebug.OnFrame")()

	l.label.SetText(fmt.Sprintf("Frame: %d\n%.2f FPS", e.Frames.FrameCount(), e.Frames.ActualFrameRate()))
	l.place(e.Viewport.State())
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down || k.Code != "F1" {
		return false
	}
	l.visible = !l.visible
	l.label.SetVisible(l.visible)
	return true
}
