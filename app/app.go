package app

import (
	"sparkcalc/hal"
	"sparkcalc/internal/buildinfo"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/services/input"
	"sparkcalc/sparkos/services/logger"
	"sparkcalc/sparkos/tasks/calculator"
)

type system struct {
	k *kernel.Kernel
}

// Config is the calculator's user-selectable options.
type Config = calculator.Config

// New starts the calculator on h and returns the per-frame step function.
func New(h hal.HAL, cfg Config) func() error {
	_ = newSystem(h, cfg)
	return func() error { return nil }
}

func newSystem(h hal.HAL, cfg Config) *system {
	installPanicHandler(h)

	if l := h.Logger(); l != nil {
		l.WriteLineString("sparkcalc " + buildinfo.Long() + " theme=" + cfg.Theme.String())
	}

	k := kernel.New()

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	calcEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))
	k.AddTask(calculator.New(h.Display(), h.Audio(), calcEP.Restrict(kernel.RightRecv), logEP.Restrict(kernel.RightSend), cfg))
	k.AddTask(input.New(h.Input(), calcEP.Restrict(kernel.RightSend)))

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	return &system{k: k}
}
