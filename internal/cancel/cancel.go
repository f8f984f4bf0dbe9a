// Package cancel provides the shared stop signal observed by the producer
// and consumer loops.
//
// Two implementations of the Canceler interface are offered:
//   - AtomicCanceler: the running flag, a single atomic.Bool. Cheapest to
//     poll and the default for the loops.
//   - ContextCanceler: a flag derived from a parent context, so process
//     signals clear it too. Cause reports which side stopped the run.
//
// Both loops poll Done once per iteration, so the worst-case shutdown
// latency is one loop interval.
package cancel

// Canceler provides cancellation signaling to workers.
//
// Implementations must be safe for concurrent use:
//   - Multiple goroutines may call Done() concurrently
//   - Cancel() may be called concurrently with Done()
type Canceler interface {
	// Done returns true once cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	Cancel()
}
