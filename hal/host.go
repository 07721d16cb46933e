package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Default host framebuffer size: a square panel, as on the handheld.
const (
	DefaultWidth  = 320
	DefaultHeight = 320
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
	audio  *hostAudio // nil when headless
	t      *hostTime
}

// New returns a host HAL implementation with the default framebuffer size.
func New() HAL {
	return newHost(DefaultWidth, DefaultHeight, os.Stdout)
}

func newHost(width, height int, logw io.Writer) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: logw},
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }

func (h *hostHAL) Audio() Audio {
	if h.audio == nil {
		return nil
	}
	return h.audio
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
