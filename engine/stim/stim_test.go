package stim_test

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hubastard/stimgrove/engine/colors"
	"github.com/hubastard/stimgrove/engine/frame"
	"github.com/hubastard/stimgrove/engine/gfx"
	"github.com/hubastard/stimgrove/engine/stim"
	"github.com/hubastard/stimgrove/engine/text"
)

// backend collecting the primitives of every render.
type backend struct {
	frames [][]gfx.Primitive
}

func (b *backend) SetClearColor(colors.Color) {}
func (b *backend) Sync()                      {}
func (b *backend) Render(s *frame.Scene) {
	var prims []gfx.Primitive
	for _, d := range s.Nodes() {
		if v, ok := d.(gfx.Visual); ok {
			prims = append(prims, v.Primitives()...)
		}
	}
	b.frames = append(b.frames, prims)
}

var _ frame.Drawable = (*stim.Rect)(nil)
var _ frame.Drawable = (*stim.Cross)(nil)
var _ frame.Drawable = (*stim.Text)(nil)
var _ frame.Drawable = (*stim.Image)(nil)

func TestSettersAreDeferred(t *testing.T) {
	r := stim.NewRect("target", 10, 20)
	r.ApplyPendingUpdate()

	r.SetPos(5, -5)
	r.SetColor(colors.Red)
	if !r.NeedsUpdate() {
		t.Errorf("setter should flag the stimulus")
	}
	if r.Attrs().Pos != [2]float32{} || r.Attrs().Color != colors.White {
		t.Errorf("committed attributes changed before update: %+v", r.Attrs())
	}

	r.ApplyPendingUpdate()
	if r.NeedsUpdate() {
		t.Errorf("update should clear the flag")
	}
	if r.Attrs().Pos != [2]float32{5, -5} || r.Attrs().Color != colors.Red {
		t.Errorf("attributes not committed: %+v", r.Attrs())
	}
}

func TestLoopDrawsCommittedState(t *testing.T) {
	b := &backend{}
	l := frame.NewLoop(b, nil, nil)

	r := stim.NewRect("r", 10, 10)
	l.Add(r)
	l.Tick()

	r.SetPos(100, 0)
	r.SetOpacity(0.5)
	l.Tick()

	want := []gfx.Primitive{{Pos: [2]float32{100, 0}, Size: [2]float32{10, 10}, Color: colors.White.WithAlpha(0.5)}}
	if diff := cmp.Diff(want, b.frames[1]); diff != "" {
		t.Errorf("second frame mismatch (-want +got):\n%s", diff)
	}

	r.SetVisible(false)
	l.Tick()
	if len(b.frames[2]) != 0 {
		t.Errorf("hidden stimulus should not be drawn")
	}
}

func TestCross(t *testing.T) {
	c := stim.NewCross("fix", 20, 2)
	c.SetThickness(4)
	c.ApplyPendingUpdate()

	p := c.Primitives()
	if len(p) != 2 {
		t.Fatalf("cross should draw two bars, got %d", len(p))
	}
	if p[0].Size != [2]float32{20, 4} || p[1].Size != [2]float32{4, 20} {
		t.Errorf("unexpected bar sizes %v %v", p[0].Size, p[1].Size)
	}
}

func TestTextSizeFollowsHeight(t *testing.T) {
	f := text.Default()
	tx := stim.NewText("msg", "ab", f, float32(f.LineHeight()*2))
	tx.ApplyPendingUpdate()

	w, h := text.Measure(f, "ab")
	want := [2]float32{float32(w * 2), float32(h * 2)}
	if tx.Attrs().Size != want {
		t.Errorf("size = %v, want %v", tx.Attrs().Size, want)
	}

	p := tx.Primitives()
	if len(p) != 1 || p[0].Image == nil {
		t.Fatalf("text should draw one textured quad")
	}
	first := p[0].Image

	// changing only the colour keeps the raster
	tx.SetColor(colors.Green)
	tx.ApplyPendingUpdate()
	if tx.Primitives()[0].Image != first {
		t.Errorf("colour change should not rasterise again")
	}

	tx.SetText("abc")
	if tx.Text() != "ab" {
		t.Errorf("text changed before update")
	}
	tx.ApplyPendingUpdate()
	if tx.Primitives()[0].Image == first {
		t.Errorf("text change should rasterise again")
	}

	tx.SetText("")
	tx.ApplyPendingUpdate()
	if len(tx.Primitives()) != 0 {
		t.Errorf("empty text should draw nothing")
	}
}

func TestImageDefaultsToBitmapSize(t *testing.T) {
	im := stim.NewImage("pic", image.NewRGBA(image.Rect(0, 0, 8, 4)))
	im.ApplyPendingUpdate()
	if im.Attrs().Size != [2]float32{8, 4} {
		t.Errorf("size = %v, want [8 4]", im.Attrs().Size)
	}

	im.SetSize(16, 8)
	im.ApplyPendingUpdate()
	if im.Attrs().Size != [2]float32{16, 8} {
		t.Errorf("explicit size not kept: %v", im.Attrs().Size)
	}
}
