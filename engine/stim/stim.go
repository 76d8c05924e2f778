// Package stim provides the visual stimuli drawn by the frame loop.
//
// Setters never change what is drawn. They record the new value and flag
// the stimulus; the frame loop commits all pending values in one step just
// before the next render, so a frame never shows a half-changed stimulus.
package stim

import (
	"github.com/hubastard/stimgrove/engine/colors"
)

// Attrs are the attributes common to every stimulus.
type Attrs struct {
	Pos     [2]float32
	Size    [2]float32
	Ori     float32
	Color   colors.Color
	Opacity float32
	Visible bool
}

// Stim holds the committed and pending attributes of a stimulus.
type Stim struct {
	Name string

	cur, next   Attrs
	needsUpdate bool
}

func newStim(name string, size [2]float32) Stim {
	a := Attrs{Size: size, Color: colors.White, Opacity: 1, Visible: true}
	return Stim{Name: name, cur: a, next: a, needsUpdate: true}
}

func (s *Stim) NeedsUpdate() bool { return s.needsUpdate }
func (s *Stim) MarkNeedsUpdate()  { s.needsUpdate = true }

// Attrs returns the committed attributes, those currently drawn.
func (s *Stim) Attrs() Attrs { return s.cur }

// Pending returns the attributes that the next update will commit.
func (s *Stim) Pending() Attrs { return s.next }

func (s *Stim) SetPos(x, y float32) {
	s.next.Pos = [2]float32{x, y}
	s.needsUpdate = true
}

func (s *Stim) SetSize(w, h float32) {
	s.next.Size = [2]float32{w, h}
	s.needsUpdate = true
}

// SetOri sets the clockwise orientation in degrees.
func (s *Stim) SetOri(deg float32) {
	s.next.Ori = deg
	s.needsUpdate = true
}

func (s *Stim) SetColor(c colors.Color) {
	s.next.Color = c
	s.needsUpdate = true
}

func (s *Stim) SetOpacity(o float32) {
	s.next.Opacity = o
	s.needsUpdate = true
}

func (s *Stim) SetVisible(v bool) {
	s.next.Visible = v
	s.needsUpdate = true
}

// commit makes the pending attributes current.
func (s *Stim) commit() {
	s.cur = s.next
	s.needsUpdate = false
}

// tint is the committed colour with opacity folded into alpha.
func (s *Stim) tint() colors.Color {
	c := s.cur.Color
	c[3] *= s.cur.Opacity
	return c
}
