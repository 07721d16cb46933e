package calculator

import (
	"image"
	"strings"
	"testing"
	"time"

	"sparkcalc/calc"
	"sparkcalc/hal"
	"sparkcalc/sparkos/fonts/keyglyphs"
	"sparkcalc/sparkos/gfx"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

type memFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newMemFB(w, h int) *memFB { return &memFB{w: w, h: h, buf: make([]byte, w*h*2)} }

func (f *memFB) Width() int                   { return f.w }
func (f *memFB) Height() int                  { return f.h }
func (f *memFB) Format() hal.PixelFormat      { return hal.PixelFormatRGB565 }
func (f *memFB) StrideBytes() int             { return f.w * 2 }
func (f *memFB) Buffer() []byte               { return f.buf }
func (f *memFB) ClearRGB(r, g, b uint8)       {}
func (f *memFB) Present() error               { f.presents++; return nil }
func (f *memFB) Framebuffer() hal.Framebuffer { return f }

func (f *memFB) at(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func newTestTask(t *testing.T, cfg Config) (*Task, *memFB) {
	t.Helper()
	fb := newMemFB(320, 320)
	task := New(fb, nil, kernel.Capability{}, kernel.Capability{}, cfg)
	if !task.init() {
		t.Fatal("init failed")
	}
	return task, fb
}

func typeRunes(task *Task, s string) {
	for _, r := range s {
		task.handleKey(nil, hal.KeyUnknown, r)
	}
}

func TestLayoutFitsScreen(t *testing.T) {
	readout, buttons := layout(320, 320)
	if len(buttons) != 19 {
		t.Fatalf("buttons=%d, want 19", len(buttons))
	}
	bounds := image.Rect(0, 0, 320, 320)
	for i, b := range buttons {
		if !b.rect.In(bounds) {
			t.Fatalf("button %q rect=%v outside screen", b.key.Label, b.rect)
		}
		if b.rect.Overlaps(readout) {
			t.Fatalf("button %q overlaps readout", b.key.Label)
		}
		for j := i + 1; j < len(buttons); j++ {
			if b.rect.Overlaps(buttons[j].rect) {
				t.Fatalf("buttons %q and %q overlap", b.key.Label, buttons[j].key.Label)
			}
		}
	}

	zero, _ := indexOf(buttons, "0")
	one, _ := indexOf(buttons, "1")
	if got, want := buttons[zero].rect.Dx(), 2*buttons[one].rect.Dx()+gap; got != want {
		t.Fatalf("zero width=%d, want %d", got, want)
	}
}

func TestHitAndGaps(t *testing.T) {
	_, buttons := layout(320, 320)
	seven, _ := indexOf(buttons, "7")
	r := buttons[seven].rect

	i, ok := hit(buttons, r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
	if !ok || buttons[i].key.Label != "7" {
		t.Fatalf("hit center of 7 -> (%d,%v)", i, ok)
	}
	if _, ok := hit(buttons, r.Max.X+gap/2, r.Min.Y+1); ok {
		t.Fatal("hit in gap should miss")
	}
	if _, ok := hit(buttons, 160, 10); ok {
		t.Fatal("hit in readout should miss")
	}
}

func TestMoveFocus(t *testing.T) {
	_, buttons := layout(320, 320)
	idx := func(label string) int {
		i, ok := indexOf(buttons, label)
		if !ok {
			t.Fatalf("no button %q", label)
		}
		return i
	}

	cases := []struct {
		from string
		d    direction
		want string
	}{
		{"5", dirUp, "8"},
		{"5", dirDown, "2"},
		{"5", dirLeft, "4"},
		{"5", dirRight, "6"},
		{"AC", dirUp, "AC"},
		{"AC", dirLeft, "AC"},
		{"÷", dirRight, "÷"},
		{"1", dirDown, "0"},
		{"2", dirDown, "0"},
		{"3", dirDown, "."},
		{"+", dirDown, "="},
		{"0", dirRight, "."},
		{"=", dirDown, "="},
	}
	for _, tc := range cases {
		got := buttons[move(buttons, idx(tc.from), tc.d)].key.Label
		if got != tc.want {
			t.Fatalf("move(%q, %d)=%q, want %q", tc.from, tc.d, got, tc.want)
		}
	}
}

func TestTypedKeysReduce(t *testing.T) {
	task, _ := newTestTask(t, Config{})

	typeRunes(task, "9+1=")
	if task.state.Display != "10" {
		t.Fatalf("display=%q, want %q", task.state.Display, "10")
	}

	typeRunes(task, "5/0=")
	if task.state.Display != "Infinity" {
		t.Fatalf("display=%q, want %q", task.state.Display, "Infinity")
	}

	task.handleKey(nil, hal.KeyEscape, 0)
	if task.state != calc.Initial() {
		t.Fatalf("state=%+v after escape, want initial", task.state)
	}

	typeRunes(task, "2+3")
	task.handleKey(nil, hal.KeyEnter, 0)
	if task.state.Display != "5" {
		t.Fatalf("display=%q after enter, want %q", task.state.Display, "5")
	}
}

func TestUnknownRuneIgnored(t *testing.T) {
	task, _ := newTestTask(t, Config{})
	if task.handleKey(nil, hal.KeyUnknown, 'q') {
		t.Fatal("handleKey('q') reported a change")
	}
	if task.state != calc.Initial() {
		t.Fatalf("state=%+v, want initial", task.state)
	}
}

func TestFocusKeys(t *testing.T) {
	task, _ := newTestTask(t, Config{})

	if task.handleKey(nil, hal.KeyUnknown, ' ') {
		t.Fatal("space without visible focus should do nothing")
	}

	task.handleKey(nil, hal.KeyUp, 0) // shows the ring on "="
	if !task.focusVisible || task.buttons[task.focus].key.Label != "=" {
		t.Fatalf("focus=%q visible=%v, want \"=\" visible", task.buttons[task.focus].key.Label, task.focusVisible)
	}
	task.handleKey(nil, hal.KeyUp, 0)
	task.handleKey(nil, hal.KeyLeft, 0)
	task.handleKey(nil, hal.KeyLeft, 0)
	if got := task.buttons[task.focus].key.Label; got != "2" {
		t.Fatalf("focus=%q, want %q", got, "2")
	}

	task.handleKey(nil, hal.KeyUnknown, ' ')
	task.handleKey(nil, hal.KeyEnter, 0)
	if task.state.Display != "22" {
		t.Fatalf("display=%q, want %q", task.state.Display, "22")
	}
}

func TestTapPressesKey(t *testing.T) {
	task, _ := newTestTask(t, Config{})
	tap := func(label string) {
		t.Helper()
		i, ok := indexOf(task.buttons, label)
		if !ok {
			t.Fatalf("no button %q", label)
		}
		r := task.buttons[i].rect
		if !task.handleTap(nil, r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2) {
			t.Fatalf("tap %q reported no change", label)
		}
	}

	tap("2")
	tap("+")
	tap("3")
	tap("×")
	tap("4")
	tap("=")
	if task.state.Display != "20" {
		t.Fatalf("display=%q, want %q", task.state.Display, "20")
	}
	if task.handleTap(nil, 0, 0) {
		t.Fatal("tap outside keypad reported a change")
	}
}

func TestMaxDigits(t *testing.T) {
	task, _ := newTestTask(t, Config{MaxDigits: 3})
	typeRunes(task, "12345")
	if task.state.Display != "123" {
		t.Fatalf("display=%q, want %q", task.state.Display, "123")
	}
}

func TestPressHighlightExpires(t *testing.T) {
	task, _ := newTestTask(t, Config{})
	typeRunes(task, "7")

	seven, _ := indexOf(task.buttons, "7")
	if task.pressed != seven {
		t.Fatalf("pressed=%d, want %d", task.pressed, seven)
	}
	if task.expire(pressTicks - 1) {
		t.Fatal("highlight expired early")
	}
	if !task.expire(pressTicks) {
		t.Fatal("highlight did not expire")
	}
	if task.pressed != -1 {
		t.Fatalf("pressed=%d after expiry, want -1", task.pressed)
	}
}

func TestRenderColors(t *testing.T) {
	task, fb := newTestTask(t, Config{})
	pal := paletteFor(ThemeDark)
	task.render()
	if fb.presents != 1 {
		t.Fatalf("presents=%d, want 1", fb.presents)
	}

	if got, want := fb.at(0, 0), gfx.RGB565(pal.bg); got != want {
		t.Fatalf("background=%#04x, want %#04x", got, want)
	}

	eq, _ := indexOf(task.buttons, "=")
	r := task.buttons[eq].rect
	x, y := r.Min.X+r.Dx()/2, r.Min.Y+2
	if got, want := fb.at(x, y), gfx.RGB565(pal.orange); got != want {
		t.Fatalf("equals fill=%#04x, want %#04x", got, want)
	}

	task.handleKey(nil, hal.KeyUnknown, '=')
	task.render()
	dim := gfx.Blend(pal.orange, pal.bg, pressedAlpha)
	if got, want := fb.at(x, y), gfx.RGB565(dim); got != want {
		t.Fatalf("pressed equals fill=%#04x, want %#04x", got, want)
	}
}

func TestRenderLightTheme(t *testing.T) {
	task, fb := newTestTask(t, Config{Theme: ThemeLight})
	task.render()
	if got, want := fb.at(0, 0), gfx.RGB565(paletteFor(ThemeLight).bg); got != want {
		t.Fatalf("background=%#04x, want %#04x", got, want)
	}
}

func TestReadoutShowsDisplay(t *testing.T) {
	task, fb := newTestTask(t, Config{})
	bg := gfx.RGB565(paletteFor(ThemeDark).bg)

	lit := func() (minX int) {
		minX = -1
		for y := task.readout.Min.Y; y < task.readout.Max.Y; y++ {
			for x := task.readout.Min.X; x < task.readout.Max.X; x++ {
				if fb.at(x, y) != bg && (minX < 0 || x < minX) {
					minX = x
				}
			}
		}
		return minX
	}

	task.render()
	short := lit()
	if short < 0 {
		t.Fatal("readout is empty")
	}
	if short < task.readout.Max.X-task.readout.Dx()/2 {
		t.Fatalf("single digit starts at x=%d, want right-aligned", short)
	}

	typeRunes(task, "123456")
	task.render()
	if long := lit(); long >= short {
		t.Fatalf("longer display starts at x=%d, want left of %d", long, short)
	}
}

func TestFitReadout(t *testing.T) {
	box := image.Rect(0, 0, 304, 69)

	f, text := fitReadout("0", box)
	if f != readoutFonts[0] || text != "0" {
		t.Fatalf("short text got font %p %q, want largest font", f, text)
	}

	long := strings.Repeat("9", 200)
	f, text = fitReadout(long, box)
	if f != keyglyphs.Font {
		t.Fatal("very long text should fall back to the bitmap font")
	}
	if !strings.HasPrefix(text, ellipsis) || !strings.HasSuffix(long, strings.TrimPrefix(text, ellipsis)) {
		t.Fatalf("clipped=%q, want ellipsis plus trailing digits", text)
	}
	if w := gfx.TextWidth(f, text); w > box.Dx() {
		t.Fatalf("clipped width=%d, want <= %d", w, box.Dx())
	}
}

func TestParseTheme(t *testing.T) {
	for _, s := range []string{"dark", "light"} {
		th, err := ParseTheme(s)
		if err != nil || th.String() != s {
			t.Fatalf("ParseTheme(%q)=(%v,%v)", s, th, err)
		}
	}
	if _, err := ParseTheme("neon"); err == nil {
		t.Fatal("ParseTheme(neon) want error")
	}
}

type recvTask struct {
	cap kernel.Capability
	out chan<- kernel.Message
}

func (t *recvTask) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.cap)
	if !ok {
		return
	}
	for msg := range ch {
		t.out <- msg
	}
}

type sendTask struct {
	to   kernel.Capability
	msgs []kernel.Message
}

func (t *sendTask) Run(ctx *kernel.Context) {
	for _, m := range t.msgs {
		ctx.SendTo(t.to, m.Kind, m.Payload())
	}
}

func keyMsg(r rune) kernel.Message {
	var m kernel.Message
	m.Kind = uint16(proto.MsgKey)
	m.Len = uint16(copy(m.Data[:], proto.KeyPayload(0, r)))
	return m
}

func TestRunTracesOverIPC(t *testing.T) {
	k := kernel.New()
	appEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	out := make(chan kernel.Message, 8)

	k.AddTask(&recvTask{cap: logEP.Restrict(kernel.RightRecv), out: out})
	k.AddTask(New(newMemFB(320, 320), nil, appEP.Restrict(kernel.RightRecv), logEP.Restrict(kernel.RightSend), Config{Trace: true}))
	k.AddTask(&sendTask{to: appEP.Restrict(kernel.RightSend), msgs: []kernel.Message{keyMsg('9'), keyMsg('+'), keyMsg('1'), keyMsg('=')}})

	var last string
	for i := 0; i < 4; i++ {
		select {
		case msg := <-out:
			last = string(msg.Payload())
		case <-time.After(time.Second):
			t.Fatalf("timed out after %d trace lines", i)
		}
	}
	if !strings.Contains(last, "key== display=10 ") {
		t.Fatalf("last trace=%q, want display=10", last)
	}
}

type countClicks struct{ n int }

func (c *countClicks) Click() { c.n++ }

func TestClick(t *testing.T) {
	clicks := &countClicks{}
	task := New(newMemFB(320, 320), clicks, kernel.Capability{}, kernel.Capability{}, Config{Click: true})
	if !task.init() {
		t.Fatal("init failed")
	}
	typeRunes(task, "1+q")
	if clicks.n != 2 {
		t.Fatalf("clicks=%d, want 2", clicks.n)
	}

	task.cfg.Click = false
	typeRunes(task, "2")
	if clicks.n != 2 {
		t.Fatalf("clicks=%d with click off, want 2", clicks.n)
	}
}

func TestClearKeys(t *testing.T) {
	for _, code := range []hal.KeyCode{hal.KeyEscape, hal.KeyDelete, hal.KeyBackspace} {
		task, _ := newTestTask(t, Config{})
		typeRunes(task, "12+3")
		if !task.handleKey(nil, code, 0) {
			t.Fatalf("key %d reported no change", code)
		}
		if task.state != calc.Initial() {
			t.Fatalf("key %d: state=%+v, want initial", code, task.state)
		}
	}
}

type runDone struct {
	task *Task
	done chan<- struct{}
}

func (r *runDone) Run(ctx *kernel.Context) {
	r.task.Run(ctx)
	close(r.done)
}

func TestShutdownReturnsWithoutTicks(t *testing.T) {
	k := kernel.New()
	appEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	done := make(chan struct{})

	k.AddTask(&runDone{task: New(newMemFB(320, 320), nil, appEP.Restrict(kernel.RightRecv), kernel.Capability{}, Config{}), done: done})
	var shutdown kernel.Message
	shutdown.Kind = uint16(proto.MsgAppShutdown)
	k.AddTask(&sendTask{to: appEP.Restrict(kernel.RightSend), msgs: []kernel.Message{shutdown}})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after shutdown")
	}
}
