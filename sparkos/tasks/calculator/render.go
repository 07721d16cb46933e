package calculator

import (
	"image"

	"sparkcalc/sparkos/fonts/keyglyphs"
	"sparkcalc/sparkos/gfx"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

// readoutFonts are tried largest first until the display text fits.
var readoutFonts = []tinyfont.Fonter{
	&freesans.Regular24pt7b,
	&freesans.Regular18pt7b,
	&freesans.Regular12pt7b,
	&freesans.Regular9pt7b,
}

const ellipsis = "…"

// fitReadout picks the largest font that shows text within the box. When even
// the bitmap font is too wide, leading characters are replaced by an ellipsis
// so the least significant digits stay visible.
func fitReadout(text string, box image.Rectangle) (tinyfont.Fonter, string) {
	for _, f := range readoutFonts {
		if gfx.Ascent(f) > box.Dy() {
			continue
		}
		if gfx.TextWidth(f, text) <= box.Dx() {
			return f, text
		}
	}
	return keyglyphs.Font, clipLeading(keyglyphs.Font, text, box.Dx())
}

func clipLeading(f tinyfont.Fonter, s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if gfx.TextWidth(f, s) <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[1:]
		if gfx.TextWidth(f, ellipsis+string(r)) <= maxW {
			return ellipsis + string(r)
		}
	}
	return ""
}

// labelScale sizes the bitmap label to roughly two fifths of the key height.
func labelScale(r image.Rectangle) int {
	return max(1, r.Dy()*2/(5*keyglyphs.Height))
}

func (t *Task) render() {
	if t.surf == nil {
		return
	}
	pal := paletteFor(t.cfg.Theme)
	t.surf.Clear(pal.bg)

	f, text := fitReadout(t.state.Display, t.readout)
	w := gfx.TextWidth(f, text)
	y := t.readout.Max.Y - gfx.Ascent(f)
	t.surf.DrawText(f, t.readout.Max.X-w, y, text, pal.text)

	for i, b := range t.buttons {
		if t.focusVisible && i == t.focus {
			t.surf.FillRoundRect(b.rect.Inset(-3), b.rect.Dy()/2+3, pal.focus)
			t.surf.FillRoundRect(b.rect.Inset(-1), b.rect.Dy()/2+1, pal.bg)
		}

		fill, label := pal.key(b.key.Variant, i == t.pressed)
		t.surf.FillRoundRect(b.rect, b.rect.Dy()/2, fill)

		scale := labelScale(b.rect)
		lw := gfx.TextWidth(keyglyphs.Font, b.key.Label) * scale
		lh := keyglyphs.Height * scale
		s := &gfx.Scaled{
			Dst:    t.surf,
			X:      b.rect.Min.X + (b.rect.Dx()-lw)/2,
			Y:      b.rect.Min.Y + (b.rect.Dy()-lh)/2,
			Factor: scale,
		}
		s.DrawText(keyglyphs.Font, b.key.Label, label)
	}

	_ = t.surf.Display()
}
