// Package gfx describes what renderers draw: flat or textured quads in
// centred, y-up pixel coordinates.
package gfx

import (
	"image"

	"github.com/hubastard/stimgrove/engine/colors"
)

// Primitive is a single quad.
type Primitive struct {
	Pos  [2]float32 // centre
	Size [2]float32
	// Ori is the clockwise rotation in degrees.
	Ori   float32
	Color colors.Color
	// Image, if not nil, is drawn stretched over the quad and modulated by
	// Color. Renderers may cache uploads by pointer, so an image must not
	// be modified once handed over; replace it instead.
	Image *image.RGBA
}

// Visual is implemented by drawables that renderers know how to draw.
type Visual interface {
	Primitives() []Primitive
}
