// Package tick provides cheap periodic triggers for polling loops.
//
// A loop that already spins on a cancel flag can call Tick() on every
// iteration to find out whether some periodic side job is due (the
// consumer uses this to publish queue depth) without a second goroutine
// or a timer channel.
//
// Implementations:
//   - AtomicTicker: atomic timestamp comparison using runtime.nanotime
//   - BatchTicker: checks the clock only every N calls
//   - Never: never fires, for disabled jobs
package tick

import "time"

// Ticker signals when a time interval has elapsed.
type Ticker interface {
	// Tick returns true if the interval has elapsed since the last tick.
	// This is a non-blocking check.
	Tick() bool

	// Reset starts a new interval from now.
	Reset()

	// Stop releases any resources held by the ticker.
	Stop()
}

// New returns the cheapest Ticker for a loop that calls Tick once per
// iteration. An interval <= 0 disables the ticker. every > 1 amortises
// the clock read over that many calls, which suits loops that do not
// sleep between iterations.
func New(interval time.Duration, every int) Ticker {
	switch {
	case interval <= 0:
		return Never{}
	case every > 1:
		return NewBatch(interval, every)
	default:
		return NewAtomicTicker(interval)
	}
}

// Never is a Ticker that never fires.
type Never struct{}

// Tick always returns false.
func (Never) Tick() bool { return false }

// Reset is a no-op.
func (Never) Reset() {}

// Stop is a no-op.
func (Never) Stop() {}
