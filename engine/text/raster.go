package text

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Alignment of lines within a multi-line block.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

// Measure returns the pixel size of the block s would occupy. Lines are
// separated by '\n'.
func Measure(f *Font, s string) (width, height int) {
	lines := strings.Split(s, "\n")
	for _, l := range lines {
		if w := font.MeasureString(f.Face, l).Ceil(); w > width {
			width = w
		}
	}
	height = len(lines)*f.LineHeight() - f.LineGap
	return width, height
}

// Rasterize draws s in white onto a transparent image just large enough to
// hold it. Colour is applied when the image is drawn, by modulating the
// white glyph coverage. An empty string gives a 1x1 transparent image.
func Rasterize(f *Font, s string, align Alignment) *image.RGBA {
	w, h := Measure(f, s)
	if w < 1 || h < 1 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: f.Face,
	}

	baseline := f.Ascent
	for _, l := range strings.Split(s, "\n") {
		lw := d.MeasureString(l).Ceil()
		x := 0
		switch align {
		case AlignCenter:
			x = (w - lw) / 2
		case AlignRight:
			x = w - lw
		}
		d.Dot = fixed.P(x, baseline)
		d.DrawString(l)
		baseline += f.LineHeight()
	}
	return dst
}
