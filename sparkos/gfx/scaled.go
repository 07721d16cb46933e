package gfx

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// Scaled magnifies drawing onto a Surface: each pixel becomes a Factor×Factor block
// with the origin at (X, Y). It is used to blow up bitmap fonts.
type Scaled struct {
	Dst    *Surface
	X, Y   int
	Factor int
}

func (s *Scaled) factor() int {
	if s.Factor < 1 {
		return 1
	}
	return s.Factor
}

func (s *Scaled) Size() (x, y int16) {
	w, h := s.Dst.Size()
	f := int16(s.factor())
	return w / f, h / f
}

func (s *Scaled) SetPixel(x, y int16, c color.RGBA) {
	f := s.factor()
	px := s.X + int(x)*f
	py := s.Y + int(y)*f
	_ = s.Dst.FillRectangle(int16(px), int16(py), int16(f), int16(f), c)
}

func (s *Scaled) Display() error { return s.Dst.Display() }

// DrawText draws text with its cell top at the origin.
func (s *Scaled) DrawText(font tinyfont.Fonter, text string, c color.RGBA) {
	tinyfont.WriteLine(s, font, 0, int16(Ascent(font)), text, c)
}
