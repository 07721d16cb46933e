package calculator

import (
	"image"

	"sparkcalc/calc"
)

const (
	pad     = 8
	gap     = 6
	keyCols = 4
)

type button struct {
	key  calc.Key
	rect image.Rectangle
	row  int
}

// layout places the readout above the keypad. Rows are as tall as fit the
// height but never taller than a column is wide; spare height goes to the readout.
func layout(w, h int) (readout image.Rectangle, buttons []button) {
	rows := len(calc.Keypad)
	colW := (w - 2*pad - (keyCols-1)*gap) / keyCols
	if colW <= 0 {
		return image.Rectangle{}, nil
	}

	top := h / 4
	rowH := (h - pad - top - (rows-1)*gap) / rows
	if rowH > colW {
		rowH = colW
	}
	if rowH <= 0 {
		return image.Rectangle{}, nil
	}
	top = h - pad - rows*rowH - (rows-1)*gap

	for r, keys := range calc.Keypad {
		y := top + r*(rowH+gap)
		col := 0
		for _, k := range keys {
			span := 1
			if k.Wide {
				span = 2
			}
			x := pad + col*(colW+gap)
			bw := span*colW + (span-1)*gap
			buttons = append(buttons, button{key: k, rect: image.Rect(x, y, x+bw, y+rowH), row: r})
			col += span
		}
	}

	readout = image.Rect(pad, pad, w-pad, top-gap)
	return readout, buttons
}

// hit returns the button under (x, y). Gaps between buttons miss.
func hit(buttons []button, x, y int) (int, bool) {
	p := image.Pt(x, y)
	for i, b := range buttons {
		if p.In(b.rect) {
			return i, true
		}
	}
	return 0, false
}

func indexOf(buttons []button, label string) (int, bool) {
	for i, b := range buttons {
		if b.key.Label == label {
			return i, true
		}
	}
	return 0, false
}

type direction uint8

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// move returns the focus index after one step in d. Horizontal moves stay in
// the row; vertical moves pick the button in the next row whose center is
// closest to the current one. Edges do not wrap.
func move(buttons []button, from int, d direction) int {
	if from < 0 || from >= len(buttons) {
		return 0
	}
	cur := buttons[from]
	switch d {
	case dirLeft:
		if from > 0 && buttons[from-1].row == cur.row {
			return from - 1
		}
		return from
	case dirRight:
		if from+1 < len(buttons) && buttons[from+1].row == cur.row {
			return from + 1
		}
		return from
	}

	row := cur.row - 1
	if d == dirDown {
		row = cur.row + 1
	}
	cx := centerX(cur.rect)
	best, bestDist := from, -1
	for i, b := range buttons {
		if b.row != row {
			continue
		}
		dist := centerX(b.rect) - cx
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

func centerX(r image.Rectangle) int { return (r.Min.X + r.Max.X) / 2 }
