//go:build cgo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts the host HAL to ebiten's game loop: it polls input, advances the
// tick, runs the app step and blits the presented framebuffer.
//
// It is shared by the desktop window and the mobile binding.
type Game struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

// NewGame builds a host HAL of the given size and starts the app on it.
func NewGame(width, height int, newApp func(HAL) func() error) *Game {
	h := newHost(width, height, hostLogWriter())
	h.audio = newHostAudio()
	return &Game{h: h, step: newApp(h)}
}

func (g *Game) Update() error {
	g.h.kbd.poll()
	g.h.ptr.poll()
	g.h.t.step(1)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)
	expandRGB565(g.img.Pix, g.scratch)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
