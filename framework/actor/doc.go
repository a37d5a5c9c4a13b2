// Package actor provides the addressable, single-threaded component units the
// bean factory is built on.
//
// An actor is any Go value wrapped in an Addr. The Addr owns an unbounded FIFO
// mailbox; a single loop drains it and runs each message against the actor
// value, so actor state needs no locks.
//
//	type Counter struct{ n int }
//
//	func (c *Counter) Receive(msg any) (any, error) {
//	    switch msg.(type) {
//	    case Inc:
//	        c.n++
//	    case Get:
//	        return c.n, nil
//	    }
//	    return nil, nil
//	}
//
//	addr := actor.Start(&Counter{})
//	addr.Tell(Inc{})                               // fire-and-forget
//	n, err := actor.Request[int](ctx, addr, Get{}) // request-reply
//
// Do runs an arbitrary closure on the loop; the container uses it to deliver
// lifecycle events through the component's own mailbox.
package actor
