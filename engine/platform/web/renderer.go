//go:build js && wasm

package web

import (
	"fmt"
	"image"
	"math"
	"syscall/js"

	"github.com/hubastard/stimgrove/engine/colors"
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/frame"
	"github.com/hubastard/stimgrove/engine/gfx"
)

// tinted image cache key
type spriteKey struct {
	img *image.RGBA
	c   colors.Color
}

// Renderer implements core.Renderer with the canvas 2D context.
type Renderer struct {
	win   *Window
	ctx   js.Value
	clear colors.Color
	w, h  int

	sprites map[spriteKey]js.Value
	used    map[spriteKey]bool
}

// NewRenderer creates a renderer for a web window.
func NewRenderer(win *Window) (*Renderer, error) {
	ctx := win.canvas.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, fmt.Errorf("failed to get 2D context")
	}
	r := &Renderer{
		win:     win,
		ctx:     ctx,
		sprites: make(map[spriteKey]js.Value),
		used:    make(map[spriteKey]bool),
	}
	r.w, r.h = win.FramebufferSize()
	return r, nil
}

// RendererFactory adapts NewRenderer for core.Run.
func RendererFactory(win core.Window, _ core.Config) (core.Renderer, error) {
	w, ok := win.(*Window)
	if !ok {
		return nil, fmt.Errorf("web renderer needs a web window, got %T", win)
	}
	return NewRenderer(w)
}

func (r *Renderer) SetClearColor(c colors.Color) { r.clear = c }

func (r *Renderer) Resize(w, h int) { r.w, r.h = w, h }

func (r *Renderer) Render(s *frame.Scene) {
	ctx := r.ctx
	ctx.Call("setTransform", 1, 0, 0, 1, 0, 0)
	ctx.Set("globalAlpha", 1)
	ctx.Set("fillStyle", cssColor(r.clear))
	ctx.Call("fillRect", 0, 0, r.w, r.h)

	for _, d := range s.Nodes() {
		v, ok := d.(gfx.Visual)
		if !ok {
			continue
		}
		for _, p := range v.Primitives() {
			r.draw(p)
		}
	}
	r.evict()
	r.win.SwapBuffers()
}

func (r *Renderer) draw(p gfx.Primitive) {
	ctx := r.ctx
	// centred origin, y up
	ctx.Call("setTransform", 1, 0, 0, -1, float64(r.w)/2, float64(r.h)/2)
	ctx.Call("translate", p.Pos[0], p.Pos[1])
	// clockwise on screen
	ctx.Call("rotate", -float64(p.Ori)*math.Pi/180)

	w, h := float64(p.Size[0]), float64(p.Size[1])
	if p.Image == nil {
		ctx.Set("globalAlpha", 1)
		ctx.Set("fillStyle", cssColor(p.Color))
		ctx.Call("fillRect", -w/2, -h/2, w, h)
		return
	}
	ctx.Set("globalAlpha", p.Color[3])
	// image rows run downward
	ctx.Call("scale", 1, -1)
	ctx.Call("drawImage", r.sprite(p.Image, p.Color), -w/2, -h/2, w, h)
}

// Sync reads back a pixel, which waits for pending canvas work.
func (r *Renderer) Sync() {
	r.ctx.Call("getImageData", 0, 0, 1, 1)
}

func (r *Renderer) Shutdown() {
	clear(r.sprites)
	clear(r.used)
}

// sprite returns a canvas holding img tinted by the rgb of c.
func (r *Renderer) sprite(img *image.RGBA, c colors.Color) js.Value {
	key := spriteKey{img, colors.Color{c[0], c[1], c[2], 1}}
	r.used[key] = true
	if s, ok := r.sprites[key]; ok {
		return s
	}

	size := img.Bounds().Size()
	pix := make([]byte, size.X*size.Y*4)
	for y := 0; y < size.Y; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+size.X*4]
		for x := 0; x < size.X; x++ {
			i := x * 4
			o := (y*size.X + x) * 4
			a := row[i+3]
			if a == 0 {
				continue
			}
			// ImageData is not premultiplied
			un := 255 / float32(a)
			pix[o] = byte(min(float32(row[i])*un, 255) * key.c[0])
			pix[o+1] = byte(min(float32(row[i+1])*un, 255) * key.c[1])
			pix[o+2] = byte(min(float32(row[i+2])*un, 255) * key.c[2])
			pix[o+3] = a
		}
	}

	arr := jsGlobal.Get("Uint8ClampedArray").New(len(pix))
	js.CopyBytesToJS(arr, pix)
	data := jsGlobal.Get("ImageData").New(arr, size.X, size.Y)

	cv := jsDocument.Call("createElement", "canvas")
	cv.Set("width", size.X)
	cv.Set("height", size.Y)
	cv.Call("getContext", "2d").Call("putImageData", data, 0, 0)

	r.sprites[key] = cv
	return cv
}

func (r *Renderer) evict() {
	for k := range r.sprites {
		if !r.used[k] {
			delete(r.sprites, k)
		}
	}
	clear(r.used)
}

func cssColor(c colors.Color) string {
	u := c.RGBA()
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", u.R, u.G, u.B, c[3])
}
