//go:build android || ios

// Package sparkcalc is the gomobile binding: build with
// "ebitenmobile bind -target android ./mobile/sparkcalc".
package sparkcalc

import (
	"sparkcalc/app"
	"sparkcalc/hal"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	mobile.SetGame(hal.NewGame(hal.DefaultWidth, hal.DefaultHeight*16/9, func(h hal.HAL) func() error {
		return app.New(h, app.Config{Click: true})
	}))
}

// Dummy is exported so gomobile emits a binding for the package.
func Dummy() {}
