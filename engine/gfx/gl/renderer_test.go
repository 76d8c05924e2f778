package glbackend

import (
	"math"
	"testing"

	"github.com/hubastard/stimgrove/engine/gfx"
)

func apply(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

func TestModelPlacesQuad(t *testing.T) {
	m := model(gfx.Primitive{Pos: [2]float32{10, -5}, Size: [2]float32{4, 2}})
	x, y := apply(m, 0.5, 0.5)
	if x != 12 || y != -4 {
		t.Errorf("corner = (%v, %v)", x, y)
	}
}

func TestModelRotatesClockwise(t *testing.T) {
	m := model(gfx.Primitive{Size: [2]float32{1, 1}, Ori: 90})
	// the top edge midpoint swings to the right
	x, y := apply(m, 0, 1)
	if math.Abs(float64(x-1)) > 1e-6 || math.Abs(float64(y)) > 1e-6 {
		t.Errorf("rotated = (%v, %v)", x, y)
	}
}
