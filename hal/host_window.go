//go:build cgo

package hal

import (
	"io"
	"os"

	"sparkcalc/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards
// keyboard, mouse and touch input. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, scale int) error {
	if scale <= 0 {
		scale = 1
	}
	g := NewGame(DefaultWidth, DefaultHeight, newApp)
	ebiten.SetWindowTitle("SparkCalc (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(DefaultWidth*scale, DefaultHeight*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

func hostLogWriter() io.Writer { return os.Stdout }
