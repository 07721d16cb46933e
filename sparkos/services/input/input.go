package input

import (
	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// maxPending bounds the queue of undelivered events while the consumer is busy.
const maxPending = 64

type outMsg struct {
	kind    proto.Kind
	payload []byte
}

// Service forwards keyboard presses as MsgKey and pointer presses as MsgTap
// to a single consumer endpoint. Releases are dropped.
type Service struct {
	in     hal.Input
	outCap kernel.Capability

	pending []outMsg
}

func New(in hal.Input, outCap kernel.Capability) *Service {
	return &Service{in: in, outCap: outCap}
}

func (s *Service) Run(ctx *kernel.Context) {
	if ctx == nil || s.in == nil {
		return
	}

	var keys <-chan hal.KeyEvent
	if kbd := s.in.Keyboard(); kbd != nil {
		keys = kbd.Events()
	}
	var taps <-chan hal.PointerEvent
	if ptr := s.in.Pointer(); ptr != nil {
		taps = ptr.Events()
	}
	if keys == nil && taps == nil {
		return
	}

	done := make(chan struct{})
	defer close(done)

	tickCh := ctx.Ticks(done)

	for {
		select {
		case ev, ok := <-keys:
			if !ok {
				keys = nil
				if taps == nil {
					return
				}
				continue
			}
			s.handleKey(ctx, ev)
		case ev, ok := <-taps:
			if !ok {
				taps = nil
				if keys == nil {
					return
				}
				continue
			}
			s.handleTap(ctx, ev)
		case <-tickCh:
			s.flush(ctx)
		}
	}
}

func (s *Service) handleKey(ctx *kernel.Context, ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	if ev.Code == hal.KeyUnknown && ev.Rune == 0 {
		return
	}
	s.enqueue(proto.MsgKey, proto.KeyPayload(uint16(ev.Code), ev.Rune))
	s.flush(ctx)
}

func (s *Service) handleTap(ctx *kernel.Context, ev hal.PointerEvent) {
	if !ev.Press {
		return
	}
	s.enqueue(proto.MsgTap, proto.TapPayload(ev.X, ev.Y))
	s.flush(ctx)
}

func (s *Service) enqueue(kind proto.Kind, payload []byte) {
	if len(s.pending) >= maxPending {
		return
	}
	s.pending = append(s.pending, outMsg{kind: kind, payload: payload})
}

// flush delivers pending events in order, stopping at the first full queue.
func (s *Service) flush(ctx *kernel.Context) {
	if !s.outCap.Valid() {
		s.pending = nil
		return
	}
	for len(s.pending) > 0 {
		m := s.pending[0]
		res := ctx.SendToCapResult(s.outCap, uint16(m.kind), m.payload, kernel.Capability{})
		switch res {
		case kernel.SendOK:
			s.pending = s.pending[1:]
		case kernel.SendErrQueueFull:
			return
		default:
			s.pending = nil
			return
		}
	}
	s.pending = nil
}
