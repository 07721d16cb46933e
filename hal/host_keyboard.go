//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var hostKeyCodes = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyNumpadEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyDelete, KeyDelete},
}

func (k *hostKeyboard) poll() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	// Printable input (digits, operators, numpad) arrives as text.
	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Press: true, Rune: r})
	}

	for _, m := range hostKeyCodes {
		if inpututil.IsKeyJustPressed(m.key) {
			emit(KeyEvent{Code: m.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(m.key) {
			emit(KeyEvent{Code: m.code, Press: false})
		}
	}
}
