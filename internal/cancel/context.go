package cancel

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrStopped is the cause recorded when the flag is cleared through Cancel
// or Stop rather than by the parent context.
var ErrStopped = errors.New("cancel: running flag cleared")

// ContextCanceler is a running flag tied to a parent context.
//
// Cancelling the parent (for instance a signal.NotifyContext on SIGINT)
// clears the flag as well, so loops polling Done stop without waiting for
// the coordinator. Cause tells the two apart.
type ContextCanceler struct {
	ctx     context.Context
	cancel  context.CancelCauseFunc
	stopped atomic.Bool
}

// NewContext creates a ContextCanceler that is running until parent is done
// or Stop is called.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, cancel := context.WithCancelCause(parent)
	return &ContextCanceler{ctx: ctx, cancel: cancel}
}

// Done reports whether the flag has been cleared.
func (c *ContextCanceler) Done() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel clears the flag.
func (c *ContextCanceler) Cancel() {
	c.Stop()
}

// Stop clears the flag and reports whether this call did it. It returns
// false if the flag was already cleared, by Stop or by the parent.
func (c *ContextCanceler) Stop() bool {
	first := c.stopped.CompareAndSwap(false, true) && c.ctx.Err() == nil
	c.cancel(ErrStopped)
	return first
}

// Cause returns nil while running, ErrStopped after Stop, or the parent's
// cause if the parent finished first.
func (c *ContextCanceler) Cause() error {
	return context.Cause(c.ctx)
}

// Context returns a context that is done once the flag is cleared.
func (c *ContextCanceler) Context() context.Context {
	return c.ctx
}
