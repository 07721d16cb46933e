//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostPointer struct {
	ch      chan PointerEvent
	touches []ebiten.TouchID
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(x, y int, press bool) {
	select {
	case p.ch <- PointerEvent{X: x, Y: y, Press: press}:
	default:
	}
}

func (p *hostPointer) poll() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.emit(x, y, true)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.emit(x, y, false)
	}

	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	for _, id := range p.touches {
		x, y := ebiten.TouchPosition(id)
		p.emit(x, y, true)
	}
	p.touches = inpututil.AppendJustReleasedTouchIDs(p.touches[:0])
	for _, id := range p.touches {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		p.emit(x, y, false)
	}
}
