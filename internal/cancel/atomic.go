package cancel

import "sync/atomic"

// AtomicCanceler is a running flag backed by atomic.Bool.
//
// The zero value is ready to use and not cancelled. The flag only moves
// from running to stopped; Reset exists for tests and benchmarks.
type AtomicCanceler struct {
	done atomic.Bool
}

// NewAtomic creates a new AtomicCanceler.
func NewAtomic() *AtomicCanceler {
	return &AtomicCanceler{}
}

// Done returns true if cancellation has been triggered.
func (a *AtomicCanceler) Done() bool {
	return a.done.Load()
}

// Cancel triggers cancellation.
func (a *AtomicCanceler) Cancel() {
	a.Stop()
}

// Stop triggers cancellation and reports whether this call performed the
// transition. Exactly one of any number of concurrent callers gets true.
func (a *AtomicCanceler) Stop() bool {
	return a.done.CompareAndSwap(false, true)
}

// Reset clears the cancellation flag.
// Not safe to call concurrently with Done() or Cancel().
func (a *AtomicCanceler) Reset() {
	a.done.Store(false)
}
