// Package gfx draws shapes and text into an RGB565 hal.Framebuffer.
package gfx

import (
	"image"
	"image/color"
	"math"

	"sparkcalc/hal"

	"tinygo.org/x/tinyfont"
)

// Surface adapts a framebuffer to drivers.Displayer so tinyfont can draw into it.
// Framebuffers in other pixel formats are ignored.
type Surface struct {
	fb hal.Framebuffer
}

func NewSurface(fb hal.Framebuffer) *Surface {
	return &Surface{fb: fb}
}

func (s *Surface) ok() bool {
	return s != nil && s.fb != nil && s.fb.Format() == hal.PixelFormatRGB565 && s.fb.Buffer() != nil
}

func (s *Surface) Size() (x, y int16) {
	if s == nil || s.fb == nil {
		return 0, 0
	}
	return int16(s.fb.Width()), int16(s.fb.Height())
}

// Bounds returns the drawable rectangle.
func (s *Surface) Bounds() image.Rectangle {
	w, h := s.Size()
	return image.Rect(0, 0, int(w), int(h))
}

func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	if !s.ok() {
		return
	}
	buf := s.fb.Buffer()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= s.fb.Width() || iy < 0 || iy >= s.fb.Height() {
		return
	}

	pixel := RGB565(c)
	off := iy*s.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (s *Surface) Display() error {
	if s == nil || s.fb == nil {
		return hal.ErrNotImplemented
	}
	return s.fb.Present()
}

func (s *Surface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	s.fillSpan(image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)), c)
	return nil
}

// Clear paints the whole surface.
func (s *Surface) Clear(c color.RGBA) {
	s.fillSpan(s.Bounds(), c)
}

func (s *Surface) fillSpan(r image.Rectangle, c color.RGBA) {
	if !s.ok() {
		return
	}
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}

	buf := s.fb.Buffer()
	stride := s.fb.StrideBytes()
	pixel := RGB565(c)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := py * stride
		for px := r.Min.X; px < r.Max.X; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

// FillRoundRect paints r with circular corners of the given radius.
// The radius is clamped to half the shorter side, which yields a pill.
func (s *Surface) FillRoundRect(r image.Rectangle, radius int, c color.RGBA) {
	if r.Empty() {
		return
	}
	if limit := min(r.Dx(), r.Dy()) / 2; radius > limit {
		radius = limit
	}
	if radius <= 0 {
		s.fillSpan(r, c)
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		inset := 0
		var dy float64
		switch {
		case y < r.Min.Y+radius:
			dy = float64(r.Min.Y+radius-y) - 0.5
		case y >= r.Max.Y-radius:
			dy = float64(y-(r.Max.Y-radius)) + 0.5
		}
		if dy > 0 {
			rr := float64(radius)
			inset = radius - int(math.Sqrt(rr*rr-dy*dy)+0.5)
		}
		s.fillSpan(image.Rect(r.Min.X+inset, y, r.Max.X-inset, y+1), c)
	}
}

// DrawText draws s with its cell top at y. It returns the advance width.
func (s *Surface) DrawText(font tinyfont.Fonter, x, y int, text string, c color.RGBA) int {
	tinyfont.WriteLine(s, font, int16(x), int16(y+Ascent(font)), text, c)
	return TextWidth(font, text)
}

// TextWidth returns the advance width of text in pixels.
func TextWidth(font tinyfont.Fonter, text string) int {
	if text == "" {
		return 0
	}
	_, outbox := tinyfont.LineWidth(font, text)
	return int(outbox)
}

// Ascent returns the height of a digit above the baseline.
func Ascent(font tinyfont.Fonter) int {
	info := font.GetGlyph('0').Info()
	return -int(info.YOffset)
}

// RGB565 packs c into the framebuffer pixel format.
func RGB565(c color.RGBA) uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}

// Blend mixes fg over bg with alpha in [0,1].
func Blend(fg, bg color.RGBA, alpha float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*alpha + float64(b)*(1-alpha) + 0.5)
	}
	return color.RGBA{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: 0xFF}
}
