package stim

import (
	"image"

	"github.com/hubastard/stimgrove/engine/assets"
	"github.com/hubastard/stimgrove/engine/gfx"
)

// Image draws a bitmap stretched to the stimulus size. A zero size means
// the bitmap's own size in pixels.
type Image struct {
	Stim
	img, nextImg *image.RGBA
}

func NewImage(name string, img image.Image) *Image {
	i := &Image{Stim: newStim(name, [2]float32{})}
	if img != nil {
		i.nextImg = assets.ToRGBA(img)
	}
	return i
}

// LoadImage creates an image stimulus from a PNG resource.
func LoadImage(name, path string) (*Image, error) {
	img, err := assets.LoadPNG(path)
	if err != nil {
		return nil, err
	}
	return NewImage(name, img), nil
}

func (i *Image) SetImage(img image.Image) {
	i.nextImg = assets.ToRGBA(img)
	i.needsUpdate = true
}

func (i *Image) ApplyPendingUpdate() {
	i.img = i.nextImg
	if i.img != nil && i.next.Size == ([2]float32{}) {
		b := i.img.Bounds()
		i.next.Size = [2]float32{float32(b.Dx()), float32(b.Dy())}
	}
	i.commit()
}

func (i *Image) Primitives() []gfx.Primitive {
	a := i.cur
	if !a.Visible || i.img == nil {
		return nil
	}
	return []gfx.Primitive{{Pos: a.Pos, Size: a.Size, Ori: a.Ori, Color: i.tint(), Image: i.img}}
}
