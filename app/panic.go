package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"sparkcalc/hal"
	"sparkcalc/sparkos/gfx"
	"sparkcalc/sparkos/kernel"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

func installPanicHandler(h hal.HAL) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		lines := panicLines(info)
		if l := h.Logger(); l != nil {
			for _, line := range lines {
				l.WriteLineString(line)
			}
		}

		disp := h.Display()
		if disp == nil {
			return
		}
		fb := disp.Framebuffer()
		if fb == nil {
			return
		}
		drawPanic(gfx.NewSurface(fb), lines)
	})
}

func panicLines(info kernel.PanicInfo) []string {
	lines := []string{
		"SparkCalc Panic:",
		fmt.Sprintf("task: %d", info.TaskID),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// drawPanic paints lines top-down, wrapping at the screen width, until the screen is full.
func drawPanic(s *gfx.Surface, lines []string) {
	font := &freesans.Regular9pt7b
	lineH := int(font.GetYAdvance())
	maxW := s.Bounds().Dx()
	maxH := s.Bounds().Dy()
	if lineH <= 0 || maxW <= 0 {
		return
	}

	s.Clear(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	fg := color.RGBA{A: 0xFF}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+lineH > maxH {
				_ = s.Display()
				return
			}
			chunk, rest := takeWidth(font, line, maxW)
			s.DrawText(font, 0, y, chunk, fg)
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = s.Display()
}

// takeWidth splits s after the longest prefix that fits in maxW pixels.
// At least one rune is taken so wrapping always progresses.
func takeWidth(font tinyfont.Fonter, s string, maxW int) (prefix, rest string) {
	if gfx.TextWidth(font, s) <= maxW {
		return s, ""
	}
	end := 0
	for i := range s {
		if i > 0 && gfx.TextWidth(font, s[:i]) > maxW {
			break
		}
		end = i
	}
	if end == 0 {
		_, end = utf8.DecodeRuneInString(s)
	}
	return s[:end], s[end:]
}
