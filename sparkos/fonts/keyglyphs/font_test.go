package keyglyphs

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type recorder struct {
	set map[[2]int16]bool
}

func (r *recorder) Size() (x, y int16) { return 64, 16 }
func (r *recorder) SetPixel(x, y int16, c color.RGBA) {
	r.set[[2]int16{x, y}] = true
}
func (r *recorder) Display() error { return nil }

func TestKeypadLabelsHaveGlyphs(t *testing.T) {
	for _, s := range []string{"AC", "±", "%", "÷", "×", "-", "+", "=", ".", "0123456789", "Infinity", "NaN", "e"} {
		for _, r := range s {
			if !Has(r) {
				t.Fatalf("no glyph for %q", r)
			}
		}
	}
}

func TestLineWidthIsMonospace(t *testing.T) {
	_, w := tinyfont.LineWidth(Font, "12.5")
	if w != 4*Width {
		t.Fatalf("LineWidth=%d, want %d", w, 4*Width)
	}
}

func TestDrawStaysInCell(t *testing.T) {
	rec := &recorder{set: map[[2]int16]bool{}}
	tinyfont.WriteLine(rec, Font, 0, 7, "8", color.RGBA{A: 0xFF})
	if len(rec.set) == 0 {
		t.Fatalf("no pixels drawn")
	}
	for p := range rec.set {
		if p[0] < 0 || p[0] >= Width || p[1] < 0 || p[1] >= Height {
			t.Fatalf("pixel %v outside 6x8 cell", p)
		}
	}
}
