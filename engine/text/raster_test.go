package text_test

import (
	"testing"

	"github.com/hubastard/stimgrove/engine/text"
)

func TestMeasureDefault(t *testing.T) {
	f := text.Default()

	w, h := text.Measure(f, "abc")
	if w != 21 {
		t.Errorf("width of three 7px glyphs = %d, want 21", w)
	}
	if h != f.Ascent+f.Descent {
		t.Errorf("single line height = %d, want %d", h, f.Ascent+f.Descent)
	}

	_, h2 := text.Measure(f, "abc\nde")
	if h2 != h+f.LineHeight() {
		t.Errorf("two line height = %d, want %d", h2, h+f.LineHeight())
	}
}

func TestRasterizeCoverage(t *testing.T) {
	f := text.Default()
	img := text.Rasterize(f, "X", text.AlignCenter)

	b := img.Bounds()
	if b.Dx() != 7 {
		t.Errorf("image width = %d, want 7", b.Dx())
	}

	var covered int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Errorf("expected some glyph coverage")
	}

	empty := text.Rasterize(f, "", text.AlignLeft)
	if empty.Bounds().Dx() != 1 || empty.Bounds().Dy() != 1 {
		t.Errorf("empty string should give a 1x1 image, got %v", empty.Bounds())
	}
	if f.Close() != nil {
		t.Errorf("closing the default font should not fail")
	}
}
