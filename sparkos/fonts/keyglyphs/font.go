// Package keyglyphs is a 6x8 bitmap font covering the calculator's keypad labels
// and readout: digits, operators (including × ÷ ±), and the letters of
// "AC", "Infinity" and "NaN".
package keyglyphs

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font implements tinyfont.Fonter.
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font6x8{}

// Width and Height are the cell size in pixels.
const (
	Width  = 6
	Height = 8
)

type font6x8 struct {
	g glyph
}

type glyph struct {
	r    rune
	rows *[8]byte
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	if g.rows == nil {
		return
	}
	for row := 0; row < 8; row++ {
		b := g.rows[row]
		// Bits are stored as 0b00xxxxxx (bit5 = leftmost pixel).
		for col := 0; col < 6; col++ {
			if b&(0x20>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(7-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		XAdvance: Width,
		XOffset:  0,
		YOffset:  -7,
	}
}

func (f *font6x8) GetYAdvance() uint8 { return Height }

func (f *font6x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	f.g.rows = lookup(r)
	return &f.g
}

// Has reports whether r has its own glyph (others render as '?').
func Has(r rune) bool {
	_, ok := glyphs[r]
	return ok
}

func lookup(r rune) *[8]byte {
	if rows, ok := glyphs[r]; ok {
		return rows
	}
	return glyphs['?']
}
