package actor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrStopped is returned by Ask when the actor stopped before replying.
	ErrStopped = errors.New("actor: stopped")

	// ErrUnhandled is returned by Ask when the actor does not implement Handler.
	ErrUnhandled = errors.New("actor: message not handled")

	// ErrUnexpectedReply is returned by Request when the reply has another type.
	ErrUnexpectedReply = errors.New("actor: unexpected reply type")
)

// ── Contracts ─────────────────────────────────────────────────────────────────

// Handler is implemented by actors that accept messages via Tell and Ask.
//
// Receive always runs on the actor's own loop, one message at a time, so the
// actor may mutate its fields without locking.
type Handler interface {
	Receive(msg any) (any, error)
}

// Starter is implemented by actors that need their own address before the
// first message is processed.
type Starter[A any] interface {
	Started(self *Addr[A])
}

// ── Addr ──────────────────────────────────────────────────────────────────────

// Addr is the address of a running actor. It is the only way to reach the
// actor value: every interaction is queued on its mailbox and executed by the
// actor's loop in send order.
//
//	addr := actor.Start(&Counter{})
//	addr.Tell(Inc{})
//	n, err := actor.Request[int](ctx, addr, Get{})
type Addr[A any] struct {
	actor   A
	mb      *mailbox
	done    chan struct{}
	running atomic.Bool
}

// New wraps a without starting its loop. Messages sent before Run are queued.
func New[A any](a A) *Addr[A] {
	return &Addr[A]{
		actor: a,
		mb:    newMailbox(),
		done:  make(chan struct{}),
	}
}

// Start wraps a and drives its loop on a new goroutine.
func Start[A any](a A) *Addr[A] {
	addr := New(a)
	go addr.Run()
	return addr
}

// Run drives the actor loop on the calling goroutine until Stop is called.
// Only the first call runs the loop; later calls return immediately.
func (a *Addr[A]) Run() {
	if !a.running.CompareAndSwap(false, true) {
		return
	}
	defer close(a.done)

	if s, ok := any(a.actor).(Starter[A]); ok {
		s.Started(a)
	}

	for {
		batch, ok := a.mb.take()
		if !ok {
			return
		}
		if len(batch) == 0 {
			<-a.mb.signal
			continue
		}
		for _, fn := range batch {
			if a.mb.isClosed() {
				return
			}
			fn()
		}
	}
}

// Stop closes the mailbox. Queued messages are dropped and pending Asks
// resolve to ErrStopped once the loop exits.
func (a *Addr[A]) Stop() {
	a.mb.close()
}

// Done is closed when the loop has exited.
func (a *Addr[A]) Done() <-chan struct{} {
	return a.done
}

// Stopped reports whether Stop has been called.
func (a *Addr[A]) Stopped() bool {
	return a.mb.isClosed()
}

// Tell queues msg for the actor's Handler without waiting for a reply.
// Messages to a stopped actor, or to an actor without a Handler, are dropped.
func (a *Addr[A]) Tell(msg any) {
	a.mb.push(func() {
		if h, ok := any(a.actor).(Handler); ok {
			_, _ = h.Receive(msg)
		}
	})
}

// Do queues fn to run on the actor loop with the actor value. It reports
// whether fn was accepted.
func (a *Addr[A]) Do(fn func(A)) bool {
	return a.mb.push(func() { fn(a.actor) })
}

type reply struct {
	val any
	err error
}

// Ask queues msg and waits for the Handler's reply.
//
// It returns ErrStopped if the actor stops first and ctx.Err() if ctx ends
// first. The message itself is not withdrawn on cancellation.
func (a *Addr[A]) Ask(ctx context.Context, msg any) (any, error) {
	out := make(chan reply, 1)
	accepted := a.mb.push(func() {
		h, ok := any(a.actor).(Handler)
		if !ok {
			out <- reply{err: ErrUnhandled}
			return
		}
		v, err := h.Receive(msg)
		out <- reply{val: v, err: err}
	})
	if !accepted {
		return nil, ErrStopped
	}

	select {
	case r := <-out:
		return r.val, r.err
	case <-a.done:
		select {
		case r := <-out:
			return r.val, r.err
		default:
			return nil, ErrStopped
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Request is a typed Ask.
func Request[R any, A any](ctx context.Context, a *Addr[A], msg any) (R, error) {
	var zero R
	v, err := a.Ask(ctx, msg)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	r, ok := v.(R)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %T", ErrUnexpectedReply, v, zero)
	}
	return r, nil
}
