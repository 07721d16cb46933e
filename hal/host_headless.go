package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Script is typed into the keyboard one rune per tick.
	Script string
}

// RunHeadless runs the app without opening a window.
//
// It returns nil after cfg.Ticks ticks (0 = run until ctx is done).
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(DefaultWidth, DefaultHeight, os.Stdout)
	step := newApp(h)
	keys := newScript(cfg.Script)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			keys.step(h.kbd)
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
