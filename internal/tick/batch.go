package tick

import "time"

// BatchTicker checks the time only every N calls to Tick().
//
// A consumer spinning without a sleep calls Tick millions of times per
// second; reading the clock on every call would dominate the loop.
// Not safe for concurrent use.
type BatchTicker struct {
	interval time.Duration
	every    int
	count    int
	lastTick time.Time
}

// NewBatch creates a BatchTicker that reads the clock every N calls.
// every < 1 is treated as 1.
func NewBatch(interval time.Duration, every int) *BatchTicker {
	if every < 1 {
		every = 1
	}
	return &BatchTicker{
		interval: interval,
		every:    every,
		lastTick: time.Now(),
	}
}

// Tick returns true if the interval has elapsed. Calls that do not land
// on a batch boundary return false without reading the clock.
func (b *BatchTicker) Tick() bool {
	b.count++
	if b.count%b.every != 0 {
		return false
	}

	now := time.Now()
	if now.Sub(b.lastTick) < b.interval {
		return false
	}
	b.lastTick = now
	return true
}

// Reset clears the call count and restarts the interval.
func (b *BatchTicker) Reset() {
	b.count = 0
	b.lastTick = time.Now()
}

// Stop is a no-op.
func (b *BatchTicker) Stop() {}

// Every returns the batch size.
func (b *BatchTicker) Every() int {
	return b.every
}
