// Package assets loads stimulus resources from disk.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// Dir is the directory resource paths are resolved against.
var Dir = "assets"

// LoadPNG decodes a PNG from Dir/images into tightly packed RGBA8 (row
// major, top-left origin).
func LoadPNG(relPath string) (*image.RGBA, error) {
	path := relPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(Dir, "images", relPath)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", path, err)
	}
	return ToRGBA(img), nil
}

// ToRGBA returns img as an *image.RGBA whose stride equals 4*width and whose
// bounds start at (0,0), copying only when necessary.
func ToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

// FontPath resolves a font file name against Dir/fonts.
func FontPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(Dir, "fonts", name)
}
