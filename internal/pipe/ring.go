package pipe

import (
	"fmt"
	"sync/atomic"

	"github.com/randomizedcoder/bytefifo/internal/queue"
)

// Ring carries whole uint32 values on a bounded lock-free RingQueue.
// Send returns ErrFull instead of growing.
type Ring struct {
	q      *queue.RingQueue[uint32]
	closed atomic.Bool
}

// NewRing creates a ring transport with the given slot count.
func NewRing(capacity int) (*Ring, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("pipe: ring capacity %d", capacity)
	}
	q, err := queue.NewRingQueue[uint32](uint64(capacity))
	if err != nil {
		return nil, fmt.Errorf("pipe: ring: %w", err)
	}
	return &Ring{q: q}, nil
}

// Send enqueues v or returns ErrFull.
func (r *Ring) Send(v uint32) error {
	if r.closed.Load() {
		return ErrClosed
	}
	if !r.q.Push(v) {
		return ErrFull
	}
	return nil
}

// TryReceive dequeues one frame without blocking.
func (r *Ring) TryReceive() (uint32, bool, error) {
	if r.closed.Load() {
		return 0, false, ErrClosed
	}
	v, ok := r.q.Pop()
	return v, ok, nil
}

// Len returns the approximate number of queued frames.
func (r *Ring) Len() int { return r.q.Len() }

// Unit returns UnitFrames.
func (r *Ring) Unit() string { return UnitFrames }

// Close marks the transport closed.
func (r *Ring) Close() error {
	r.closed.Store(true)
	return nil
}
