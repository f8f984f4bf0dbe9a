package pipe

import (
	"errors"
	"time"

	"github.com/randomizedcoder/bytefifo/internal/queue"
)

// Frames carries whole uint32 values on an unbounded FrameQueue.
// It implements Waiter, so the consumer blocks instead of polling.
type Frames struct {
	q *queue.FrameQueue[uint32]
}

// NewFrames creates an empty frame transport.
func NewFrames() *Frames {
	return &Frames{q: queue.NewFrameQueue[uint32](64)}
}

// Send enqueues v.
func (f *Frames) Send(v uint32) error {
	if !f.q.Push(v) {
		return ErrClosed
	}
	return nil
}

// TryReceive dequeues one frame without blocking.
func (f *Frames) TryReceive() (uint32, bool, error) {
	if f.q.Disposed() {
		return 0, false, ErrClosed
	}
	v, ok := f.q.Pop()
	return v, ok, nil
}

// Receive waits up to timeout for a frame.
func (f *Frames) Receive(timeout time.Duration) (uint32, bool, error) {
	v, ok, err := f.q.Poll(timeout)
	if errors.Is(err, queue.ErrDisposed) {
		return 0, false, ErrClosed
	}
	return v, ok, err
}

// Len returns the number of queued frames.
func (f *Frames) Len() int { return f.q.Len() }

// Unit returns UnitFrames.
func (f *Frames) Unit() string { return UnitFrames }

// Close disposes the queue, waking a blocked Receive.
func (f *Frames) Close() error {
	f.q.Dispose()
	return nil
}
