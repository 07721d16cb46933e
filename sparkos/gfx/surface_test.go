package gfx

import (
	"image"
	"image/color"
	"testing"

	"sparkcalc/hal"
	"sparkcalc/sparkos/fonts/keyglyphs"
)

type memFB struct {
	w, h int
	buf  []byte
}

func newMemFB(w, h int) *memFB { return &memFB{w: w, h: h, buf: make([]byte, w*h*2)} }

func (f *memFB) Width() int              { return f.w }
func (f *memFB) Height() int             { return f.h }
func (f *memFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFB) StrideBytes() int        { return f.w * 2 }
func (f *memFB) Buffer() []byte          { return f.buf }
func (f *memFB) ClearRGB(r, g, b uint8)  {}
func (f *memFB) Present() error          { return nil }

func (f *memFB) at(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func TestFillClipsToBounds(t *testing.T) {
	fb := newMemFB(4, 4)
	s := NewSurface(fb)
	_ = s.FillRectangle(-2, -2, 4, 4, white)

	if fb.at(1, 1) != 0xFFFF {
		t.Fatalf("pixel (1,1)=%#04x, want white", fb.at(1, 1))
	}
	if fb.at(2, 2) != 0 {
		t.Fatalf("pixel (2,2)=%#04x, want untouched", fb.at(2, 2))
	}
}

func TestFillRoundRectLeavesCorners(t *testing.T) {
	fb := newMemFB(20, 20)
	s := NewSurface(fb)
	s.FillRoundRect(image.Rect(0, 0, 20, 20), 10, white)

	if fb.at(0, 0) != 0 || fb.at(19, 19) != 0 {
		t.Fatalf("corners painted")
	}
	if fb.at(10, 10) != 0xFFFF || fb.at(10, 0) != 0xFFFF || fb.at(0, 10) != 0xFFFF {
		t.Fatalf("interior or edge midpoints not painted")
	}
}

func TestScaledTextMagnifies(t *testing.T) {
	fb := newMemFB(40, 40)
	s := NewSurface(fb)
	sc := &Scaled{Dst: s, X: 2, Y: 3, Factor: 3}
	sc.DrawText(keyglyphs.Font, "-", white)

	// '-' is row 3, columns 0-4 of the 6x8 cell.
	if fb.at(2, 3+3*3) != 0xFFFF || fb.at(2+3*5-1, 3+3*3+2) != 0xFFFF {
		t.Fatalf("scaled bar not painted")
	}
	if fb.at(2+3*5, 3+3*3) != 0 {
		t.Fatalf("spacing column painted")
	}
}

func TestBlend(t *testing.T) {
	got := Blend(color.RGBA{R: 200, A: 0xFF}, color.RGBA{R: 100, A: 0xFF}, 0.5)
	if got.R != 150 || got.A != 0xFF {
		t.Fatalf("Blend=%+v, want R=150", got)
	}
}
