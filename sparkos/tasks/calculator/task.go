// Package calculator is the calculator app: it owns the reducer state, draws
// the readout and keypad, and turns key presses and taps into events.
package calculator

import (
	"image"

	"sparkcalc/calc"
	"sparkcalc/hal"
	logclient "sparkcalc/sparkos/client/logger"
	"sparkcalc/sparkos/gfx"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// pressTicks is how long a key stays dimmed after it is pressed.
const pressTicks = 120

// Config holds the user-selectable options.
type Config struct {
	Theme     Theme
	MaxDigits int  // 0 = unbounded digit entry
	Trace     bool // log every reduced event
	Click     bool // play a click on every key press
}

type Task struct {
	disp   hal.Display
	audio  hal.Audio
	ep     kernel.Capability
	logCap kernel.Capability
	cfg    Config

	fb   hal.Framebuffer
	surf *gfx.Surface

	readout image.Rectangle
	buttons []button

	reducer calc.Reducer
	state   calc.State

	focus        int
	focusVisible bool

	pressed      int
	pressedUntil uint64
}

func New(disp hal.Display, audio hal.Audio, ep, logCap kernel.Capability, cfg Config) *Task {
	return &Task{
		disp:    disp,
		audio:   audio,
		ep:      ep,
		logCap:  logCap,
		cfg:     cfg,
		reducer: calc.Reducer{MaxDigits: cfg.MaxDigits},
		pressed: -1,
	}
}

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok {
		return
	}
	if !t.init() {
		return
	}
	t.render()

	done := make(chan struct{})
	defer close(done)

	tickCh := ctx.Ticks(done)

	for {
		select {
		case msg := <-ch:
			switch proto.Kind(msg.Kind) {
			case proto.MsgAppShutdown:
				t.unload()
				return

			case proto.MsgKey:
				code, r, ok := proto.DecodeKeyPayload(msg.Payload())
				if !ok {
					continue
				}
				if t.handleKey(ctx, hal.KeyCode(code), r) {
					t.render()
				}

			case proto.MsgTap:
				x, y, ok := proto.DecodeTapPayload(msg.Payload())
				if !ok {
					continue
				}
				if t.handleTap(ctx, x, y) {
					t.render()
				}
			}

		case now := <-tickCh:
			if t.expire(now) {
				t.render()
			}
		}
	}
}

func (t *Task) init() bool {
	if t.disp == nil {
		return false
	}
	t.fb = t.disp.Framebuffer()
	if t.fb == nil || t.fb.Format() != hal.PixelFormatRGB565 {
		return false
	}
	t.surf = gfx.NewSurface(t.fb)
	t.readout, t.buttons = layout(t.fb.Width(), t.fb.Height())
	if len(t.buttons) == 0 {
		return false
	}
	t.state = calc.Initial()
	t.focus, _ = indexOf(t.buttons, "=")
	t.focusVisible = false
	t.pressed = -1
	return true
}

func (t *Task) unload() {
	t.state = calc.State{}
	t.buttons = nil
	t.surf = nil
}

// handleKey reports whether the screen changed.
func (t *Task) handleKey(ctx *kernel.Context, code hal.KeyCode, r rune) bool {
	switch code {
	case hal.KeyEscape, hal.KeyDelete, hal.KeyBackspace:
		return t.pressLabel(ctx, "AC")
	case hal.KeyEnter:
		if t.focusVisible {
			return t.press(ctx, t.focus)
		}
		return t.pressLabel(ctx, "=")
	case hal.KeyUp:
		return t.moveFocus(dirUp)
	case hal.KeyDown:
		return t.moveFocus(dirDown)
	case hal.KeyLeft:
		return t.moveFocus(dirLeft)
	case hal.KeyRight:
		return t.moveFocus(dirRight)
	}

	if r == ' ' {
		if !t.focusVisible {
			return false
		}
		return t.press(ctx, t.focus)
	}
	k, ok := calc.KeyForRune(r)
	if !ok {
		return false
	}
	return t.pressLabel(ctx, k.Label)
}

func (t *Task) handleTap(ctx *kernel.Context, x, y int) bool {
	i, ok := hit(t.buttons, x, y)
	if !ok {
		return false
	}
	t.focus = i
	t.focusVisible = false
	return t.press(ctx, i)
}

// moveFocus shows the focus ring on the first arrow press and moves it after that.
func (t *Task) moveFocus(d direction) bool {
	if !t.focusVisible {
		t.focusVisible = true
		return true
	}
	next := move(t.buttons, t.focus, d)
	if next == t.focus {
		return false
	}
	t.focus = next
	return true
}

func (t *Task) pressLabel(ctx *kernel.Context, label string) bool {
	i, ok := indexOf(t.buttons, label)
	if !ok {
		return false
	}
	return t.press(ctx, i)
}

func (t *Task) press(ctx *kernel.Context, i int) bool {
	if i < 0 || i >= len(t.buttons) {
		return false
	}
	k := t.buttons[i].key
	t.state = t.reducer.Apply(t.state, k.Event)
	t.pressed = i
	t.pressedUntil = ctx.NowTick() + pressTicks
	if t.cfg.Click && t.audio != nil {
		t.audio.Click()
	}

	if t.cfg.Trace {
		logclient.Logf(ctx, t.logCap, "calc: key=%s display=%s op=%s reset=%v",
			k.Label, t.state.Display, t.state.Op, t.state.PendingReset)
	}
	return true
}

// expire clears press feedback once its time is up.
func (t *Task) expire(now uint64) bool {
	if t.pressed < 0 || now < t.pressedUntil {
		return false
	}
	t.pressed = -1
	return true
}
