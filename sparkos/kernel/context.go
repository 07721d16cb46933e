package kernel

// Context provides task-local access to kernel operations.
type Context struct {
	k      *Kernel
	taskID TaskID
}

// TaskID returns the current task ID.
func (c *Context) TaskID() TaskID { return c.taskID }

// RecvChan returns the inbound message channel for an endpoint capability.
func (c *Context) RecvChan(epCap Capability) (<-chan Message, bool) {
	if c == nil || c.k == nil {
		return nil, false
	}
	if !epCap.valid() || !epCap.canRecv() {
		return nil, false
	}

	c.k.mu.Lock()
	if epCap.ep >= c.k.endpointCount {
		c.k.mu.Unlock()
		return nil, false
	}
	ch := c.k.endpoints[epCap.ep].ch
	c.k.mu.Unlock()
	if ch == nil {
		return nil, false
	}
	return ch, true
}

// Recv reads one message from the capability endpoint, blocking until a message arrives.
func (c *Context) Recv(epCap Capability) (Message, bool) {
	ch, ok := c.RecvChan(epCap)
	if !ok {
		return Message{}, false
	}
	return <-ch, true
}

// TryRecv reads one message from the capability endpoint without blocking.
func (c *Context) TryRecv(epCap Capability) (Message, bool) {
	ch, ok := c.RecvChan(epCap)
	if !ok {
		return Message{}, false
	}
	select {
	case msg := <-ch:
		return msg, true
	default:
		return Message{}, false
	}
}

// SendToCapResult sends a message and transfers an optional capability.
//
// The message From field is set to 0 (unknown).
func (c *Context) SendToCapResult(toCap Capability, kind uint16, payload []byte, xfer Capability) SendResult {
	if c == nil || c.k == nil {
		return SendErrInvalidFromCap
	}
	if !toCap.valid() {
		return SendErrInvalidToCap
	}
	if !toCap.canSend() {
		return SendErrToNoSendRight
	}
	return c.k.send(0, toCap.ep, kind, payload, xfer)
}

// SendTo sends a message to the capability endpoint.
func (c *Context) SendTo(toCap Capability, kind uint16, payload []byte) bool {
	return c.SendToCapResult(toCap, kind, payload, Capability{}) == SendOK
}

// NowTick returns the last observed tick value.
func (c *Context) NowTick() uint64 {
	if c == nil || c.k == nil {
		return 0
	}
	return c.k.nowTick()
}

// WaitTick blocks until tick advances past the provided value and returns the new tick.
func (c *Context) WaitTick(after uint64) uint64 {
	if c == nil || c.k == nil {
		return 0
	}
	return c.k.waitTick(after)
}

// Ticks delivers the current tick each time it advances, until done is closed.
// A receiver that falls behind sees only the newest tick. The returned channel
// is closed once done is closed, even if no further tick arrives.
func (c *Context) Ticks(done <-chan struct{}) <-chan uint64 {
	out := make(chan uint64, 1)
	if c == nil || c.k == nil {
		close(out)
		return out
	}
	k := c.k
	last := k.nowTick()

	go func() {
		<-done
		k.tickMu.Lock()
		k.tickCond.Broadcast()
		k.tickMu.Unlock()
	}()

	go func() {
		defer close(out)
		for {
			k.tickMu.Lock()
			for k.tick <= last && !isDone(done) {
				k.tickCond.Wait()
			}
			if isDone(done) {
				k.tickMu.Unlock()
				return
			}
			last = k.tick
			k.tickMu.Unlock()

			select {
			case out <- last:
				continue
			default:
			}
			select {
			case <-out:
			default:
			}
			select {
			case out <- last:
			default:
			}
		}
	}()
	return out
}

func isDone(done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	default:
		return false
	}
}
