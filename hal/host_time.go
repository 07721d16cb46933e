package hal

import "time"

// TickDuration is the host tick period.
const TickDuration = time.Millisecond

type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step converts elapsed wall time into ticks. The first call emits n ticks.
func (t *hostTime) step(n uint64) {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / TickDuration)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % TickDuration
	t.stepN(ticks)
}

// stepN publishes only the newest sequence number when the channel is full;
// consumers treat ticks as a monotonic clock, not as discrete events.
func (t *hostTime) stepN(n uint64) {
	t.seq += n
	for {
		select {
		case t.ch <- t.seq:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}
