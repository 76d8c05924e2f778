// Package text rasterises strings for text stimuli.
package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Font is a face with its line metrics in pixels.
type Font struct {
	Face    font.Face
	Ascent  int
	Descent int
	LineGap int
	close   func() error
}

// Default returns the built in 7x13 bitmap face. It needs no font file, so
// text stimuli always have something to draw with.
func Default() *Font {
	return newFont(basicfont.Face7x13, nil)
}

// LoadTTF parses a TrueType/OpenType file and builds a face of the given
// pixel size.
func LoadTTF(path string, sizePx float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %q: %w", path, err)
	}
	return newFont(face, face.Close), nil
}

func newFont(face font.Face, closer func() error) *Font {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	gap := m.Height.Ceil() - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return &Font{
		Face:    face,
		Ascent:  ascent,
		Descent: descent,
		LineGap: gap,
		close:   closer,
	}
}

// LineHeight is the distance between consecutive baselines.
func (f *Font) LineHeight() int {
	return f.Ascent + f.Descent + f.LineGap
}

// Close releases the face. The default font needs no closing.
func (f *Font) Close() error {
	if f == nil || f.close == nil {
		return nil
	}
	err := f.close()
	f.close = nil
	return err
}
