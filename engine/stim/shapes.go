package stim

import "github.com/hubastard/stimgrove/engine/gfx"

// Rect is a filled rectangle.
type Rect struct {
	Stim
}

// NewRect creates a white rectangle of the given size at the origin.
func NewRect(name string, w, h float32) *Rect {
	return &Rect{Stim: newStim(name, [2]float32{w, h})}
}

func (r *Rect) ApplyPendingUpdate() { r.commit() }

func (r *Rect) Primitives() []gfx.Primitive {
	a := r.cur
	if !a.Visible {
		return nil
	}
	return []gfx.Primitive{{Pos: a.Pos, Size: a.Size, Ori: a.Ori, Color: r.tint()}}
}

// Cross is a fixation cross: two bars of the given thickness whose extent
// is the stimulus size.
type Cross struct {
	Stim
	thickness, nextThickness float32
}

func NewCross(name string, size, thickness float32) *Cross {
	return &Cross{
		Stim:          newStim(name, [2]float32{size, size}),
		thickness:     thickness,
		nextThickness: thickness,
	}
}

func (c *Cross) SetThickness(t float32) {
	c.nextThickness = t
	c.needsUpdate = true
}

func (c *Cross) ApplyPendingUpdate() {
	c.thickness = c.nextThickness
	c.commit()
}

func (c *Cross) Primitives() []gfx.Primitive {
	a := c.cur
	if !a.Visible {
		return nil
	}
	col := c.tint()
	return []gfx.Primitive{
		{Pos: a.Pos, Size: [2]float32{a.Size[0], c.thickness}, Ori: a.Ori, Color: col},
		{Pos: a.Pos, Size: [2]float32{c.thickness, a.Size[1]}, Ori: a.Ori, Color: col},
	}
}
