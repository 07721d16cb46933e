package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, stored little-endian.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier for keys that carry no rune.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
)

// KeyEvent is a keyboard event. Text input arrives as Rune with Code == KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerEvent is a mouse button or touch transition in framebuffer coordinates.
type PointerEvent struct {
	X     int
	Y     int
	Press bool
}

// Pointer provides mouse and touch events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Audio plays short feedback sounds (best-effort; may be silent).
type Audio interface {
	Click()
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined (1ms on host); higher-level timers live in tasks.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Audio() Audio
	Time() Time
}
