package raster

import (
	"image"
	"image/color"
	"testing"

	"drawscatter/internal/scatter"
)

func TestRedraw_NilSurfaceIsNoop(t *testing.T) {
	r := New(func() *image.RGBA { return nil })
	if r.Redraw([]scatter.Point{{X: 1, Y: 1}}) {
		t.Fatalf("Redraw should report false without a surface")
	}
	if New(nil).Redraw(nil) {
		t.Fatalf("Redraw with nil lookup should report false")
	}
}

func TestRedraw_DrawsAtCapturePosition(t *testing.T) {
	surf := NewSurface()
	r := New(func() *image.RGBA { return surf })

	b := scatter.NewBoard()
	b.PointerDown(10, 10)
	b.SetColor(scatter.Red)
	b.PointerMove(200, 200)
	b.SetColor(scatter.Green)
	b.PointerMove(390, 390)
	b.PointerUp()

	if !r.Redraw(b.Points()) {
		t.Fatalf("Redraw returned false with a surface present")
	}
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{10, 10, scatter.Blue.RGBA()},
		{200, 200, scatter.Red.RGBA()},
		{390, 390, scatter.Green.RGBA()},
	}
	for _, c := range checks {
		if got := surf.RGBAAt(c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
	// Unflipped location of the first point must stay empty.
	if got := surf.RGBAAt(10, 390); got.A != 0 {
		t.Fatalf("pixel (10,390) painted: %v", got)
	}
}

func TestRedraw_FullRepaintClearsOldPoints(t *testing.T) {
	surf := NewSurface()
	r := New(func() *image.RGBA { return surf })
	r.Redraw([]scatter.Point{{X: 50, Y: 350, Color: scatter.Blue}})
	if surf.RGBAAt(50, 50).A == 0 {
		t.Fatalf("expected point painted at (50,50)")
	}
	r.Redraw(nil)
	if surf.RGBAAt(50, 50).A != 0 {
		t.Fatalf("point survived a repaint with an empty list")
	}
}

func TestSnapshot_Size(t *testing.T) {
	img := Snapshot(nil)
	if b := img.Bounds(); b.Dx() != scatter.CanvasSize || b.Dy() != scatter.CanvasSize {
		t.Fatalf("unexpected bounds %v", b)
	}
}
