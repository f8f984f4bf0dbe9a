package queue

import (
	"errors"
	"time"

	wq "github.com/Workiva/go-datastructures/queue"
)

// FrameQueue is an unbounded queue of whole values.
//
// Producers hand over complete messages, so there is no byte packing and
// no way to observe half a frame. Unlike ByteQueue it supports a blocking
// Poll, which lets a consumer sleep until data arrives.
//
// Pop assumes a single consumer: it checks Len before taking an item.
type FrameQueue[T any] struct {
	q *wq.Queue
}

// NewFrameQueue creates a FrameQueue. hint pre-sizes the backing storage.
func NewFrameQueue[T any](hint int) *FrameQueue[T] {
	if hint < 0 {
		hint = 0
	}
	return &FrameQueue[T]{q: wq.New(int64(hint))}
}

// Push appends v. It returns false once the queue has been disposed.
func (f *FrameQueue[T]) Push(v T) bool {
	return f.q.Put(v) == nil
}

// Pop removes the head item without blocking.
func (f *FrameQueue[T]) Pop() (T, bool) {
	var zero T
	if f.q.Len() == 0 {
		return zero, false
	}
	items, err := f.q.Get(1)
	if err != nil || len(items) == 0 {
		return zero, false
	}
	v, ok := items[0].(T)
	return v, ok
}

// Poll waits up to timeout for an item.
//
// It returns (zero, false, nil) on timeout and ErrDisposed once the queue
// has been disposed.
func (f *FrameQueue[T]) Poll(timeout time.Duration) (T, bool, error) {
	var zero T
	items, err := f.q.Poll(1, timeout)
	switch {
	case errors.Is(err, wq.ErrTimeout):
		return zero, false, nil
	case errors.Is(err, wq.ErrDisposed):
		return zero, false, ErrDisposed
	case err != nil:
		return zero, false, err
	case len(items) == 0:
		return zero, false, nil
	}
	v, ok := items[0].(T)
	return v, ok, nil
}

// Len returns the number of queued items.
func (f *FrameQueue[T]) Len() int {
	return int(f.q.Len())
}

// Dispose releases any goroutine blocked in Poll and makes further
// operations fail. Items still queued are discarded.
func (f *FrameQueue[T]) Dispose() {
	f.q.Dispose()
}

// Disposed reports whether Dispose has been called.
func (f *FrameQueue[T]) Disposed() bool {
	return f.q.Disposed()
}
