package actor

import "sync"

// mailbox is an unbounded FIFO of closures with a single consumer.
//
// push never blocks, so fire-and-forget senders are never suspended by a slow
// actor. The signal channel has capacity 1: a pending signal means "the queue
// may be non-empty", never more.
type mailbox struct {
	mu     sync.Mutex
	queue  []func()
	closed bool
	signal chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{signal: make(chan struct{}, 1)}
}

// push appends fn and reports whether it was accepted.
func (m *mailbox) push(fn func()) bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	m.queue = append(m.queue, fn)
	m.mu.Unlock()
	m.wake()
	return true
}

// take removes everything queued so far. ok is false once the mailbox is closed.
func (m *mailbox) take() (batch []func(), ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, false
	}
	batch, m.queue = m.queue, nil
	return batch, true
}

// close drops everything still queued and wakes the consumer.
func (m *mailbox) close() {
	m.mu.Lock()
	m.closed = true
	m.queue = nil
	m.mu.Unlock()
	m.wake()
}

func (m *mailbox) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *mailbox) wake() {
	select {
	case m.signal <- struct{}{}:
	default:
	}
}
