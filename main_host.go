//go:build !android && !ios

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"sparkcalc/app"
	"sparkcalc/calc"
	"sparkcalc/hal"
	"sparkcalc/sparkos/tasks/calculator"
)

func main() {
	var cfg hal.HeadlessConfig
	var theme string
	var appCfg app.Config
	var scale int
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Script, "keys", "", `Keys typed one per tick in headless mode, e.g. "9+1=".`)
	flag.StringVar(&theme, "theme", "dark", "Color scheme: dark or light.")
	flag.BoolVar(&appCfg.Trace, "trace", false, "Log every key and the resulting display.")
	flag.IntVar(&appCfg.MaxDigits, "max-digits", 0, "Cap digit entry per number (0 = unbounded).")
	flag.BoolVar(&appCfg.Click, "click", false, "Play a click on key presses (window mode).")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.Parse()

	var err error
	appCfg.Theme, err = calculator.ParseTheme(theme)
	if err != nil {
		fail(err)
	}
	if appCfg.MaxDigits < 0 {
		fail(fmt.Errorf("invalid -max-digits: %d", appCfg.MaxDigits))
	}
	if _, err := calc.ParseScript(cfg.Script); err != nil {
		fail(fmt.Errorf("-keys: %w", err))
	}

	newApp := func(h hal.HAL) func() error {
		return app.New(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fail(err)
		}
		return
	}

	if err := hal.RunWindow(newApp, scale); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
