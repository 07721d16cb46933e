package hal

// inject queues a typed rune as if it came from the keyboard.
// It reports false when the queue is full.
func (k *hostKeyboard) inject(r rune) bool {
	select {
	case k.ch <- KeyEvent{Press: true, Rune: r}:
		return true
	default:
		return false
	}
}

// script feeds runes into a keyboard one at a time.
type script struct {
	runes []rune
	pos   int
}

func newScript(s string) *script {
	return &script{runes: []rune(s)}
}

func (s *script) done() bool { return s == nil || s.pos >= len(s.runes) }

// step injects the next rune, retrying on the next call if the keyboard is full.
func (s *script) step(k *hostKeyboard) {
	if s.done() {
		return
	}
	if k.inject(s.runes[s.pos]) {
		s.pos++
	}
}
