package stim

import (
	"image"

	"github.com/hubastard/stimgrove/engine/gfx"
	"github.com/hubastard/stimgrove/engine/text"
)

// Text is a block of text. Its size follows from the string and the letter
// height; SetSize has no effect on it.
type Text struct {
	Stim

	font   *text.Font
	str    string
	height float32
	align  text.Alignment

	pending struct {
		font   *text.Font
		str    string
		height float32
		align  text.Alignment
	}

	img *image.RGBA
}

// NewText creates a text stimulus. A nil font means text.Default.
func NewText(name, s string, f *text.Font, height float32) *Text {
	if f == nil {
		f = text.Default()
	}
	t := &Text{Stim: newStim(name, [2]float32{})}
	t.pending.font = f
	t.pending.str = s
	t.pending.height = height
	t.pending.align = text.AlignCenter
	return t
}

func (t *Text) SetText(s string) {
	t.pending.str = s
	t.needsUpdate = true
}

func (t *Text) SetFont(f *text.Font) {
	t.pending.font = f
	t.needsUpdate = true
}

// SetHeight sets the line height in pixels.
func (t *Text) SetHeight(h float32) {
	t.pending.height = h
	t.needsUpdate = true
}

func (t *Text) SetAlignment(a text.Alignment) {
	t.pending.align = a
	t.needsUpdate = true
}

// Text returns the committed string.
func (t *Text) Text() string { return t.str }

// ApplyPendingUpdate commits the attributes and rasterises the string again
// if anything affecting its shape changed.
func (t *Text) ApplyPendingUpdate() {
	reraster := t.img == nil ||
		t.pending.str != t.str ||
		t.pending.font != t.font ||
		t.pending.align != t.align

	t.font = t.pending.font
	t.str = t.pending.str
	t.height = t.pending.height
	t.align = t.pending.align

	if reraster {
		t.img = text.Rasterize(t.font, t.str, t.align)
	}

	scale := float32(1)
	if lh := t.font.LineHeight(); lh > 0 && t.height > 0 {
		scale = t.height / float32(lh)
	}
	b := t.img.Bounds()
	t.Stim.next.Size = [2]float32{float32(b.Dx()) * scale, float32(b.Dy()) * scale}
	t.commit()
}

func (t *Text) Primitives() []gfx.Primitive {
	a := t.cur
	if !a.Visible || t.str == "" {
		return nil
	}
	return []gfx.Primitive{{Pos: a.Pos, Size: a.Size, Ori: a.Ori, Color: t.tint(), Image: t.img}}
}
