package calculator

import (
	"errors"
	"fmt"
	"image/color"

	"sparkcalc/calc"
	"sparkcalc/sparkos/gfx"
)

// Theme selects the color scheme.
type Theme uint8

const (
	ThemeDark Theme = iota
	ThemeLight
)

var ErrUnknownTheme = errors.New("unknown theme")

func (t Theme) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	default:
		return "unknown"
	}
}

// ParseTheme accepts "dark" or "light".
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "dark", "":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return 0, fmt.Errorf("theme %q: %w", s, ErrUnknownTheme)
	}
}

// pressedAlpha is the opacity of a key while it shows press feedback.
const pressedAlpha = 0.7

type palette struct {
	bg     color.RGBA
	text   color.RGBA
	focus  color.RGBA
	orange color.RGBA

	special     color.RGBA
	specialText color.RGBA
	number      color.RGBA
	numberText  color.RGBA
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

func paletteFor(t Theme) palette {
	if t == ThemeLight {
		return palette{
			bg:          rgb(0xFFFFFF),
			text:        rgb(0x000000),
			focus:       rgb(0x007AFF),
			orange:      rgb(0xFF9F0A),
			special:     rgb(0xD4D4D2),
			specialText: rgb(0x000000),
			number:      rgb(0xE8E8E8),
			numberText:  rgb(0x000000),
		}
	}
	return palette{
		bg:          rgb(0x000000),
		text:        rgb(0xFFFFFF),
		focus:       rgb(0xFFFFFF),
		orange:      rgb(0xFF9500),
		special:     rgb(0x505050),
		specialText: rgb(0xFFFFFF),
		number:      rgb(0x333333),
		numberText:  rgb(0xFFFFFF),
	}
}

// key returns the fill and label colors for a button.
func (p palette) key(v calc.Variant, pressed bool) (fill, label color.RGBA) {
	switch v {
	case calc.VariantNumber:
		fill, label = p.number, p.numberText
	case calc.VariantSpecial:
		fill, label = p.special, p.specialText
	case calc.VariantOperation, calc.VariantEquals:
		fill, label = p.orange, rgb(0xFFFFFF)
	default:
		fill, label = p.number, p.numberText
	}
	if pressed {
		fill = gfx.Blend(fill, p.bg, pressedAlpha)
		label = gfx.Blend(label, p.bg, pressedAlpha)
	}
	return fill, label
}
