package queue

import (
	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// RingQueue is a bounded lock-free queue of whole values.
//
// It wraps a single-shard go-lock-free-ring ShardedRing, which gives SPSC
// behaviour with the library's memory ordering guarantees. Push returns
// false when the ring is full; there is no unbounded growth.
type RingQueue[T any] struct {
	r *ring.ShardedRing
}

// NewRingQueue creates a RingQueue holding up to capacity items.
func NewRingQueue[T any](capacity uint64) (*RingQueue[T], error) {
	r, err := ring.NewShardedRing(capacity, 1)
	if err != nil {
		return nil, err
	}
	return &RingQueue[T]{r: r}, nil
}

// Push adds v. Returns false if the ring is full.
func (q *RingQueue[T]) Push(v T) bool {
	return q.r.Write(0, v)
}

// Pop removes and returns the oldest item.
func (q *RingQueue[T]) Pop() (T, bool) {
	var zero T
	item, ok := q.r.TryRead()
	if !ok {
		return zero, false
	}
	v, ok := item.(T)
	return v, ok
}

// Len returns the approximate number of buffered items.
func (q *RingQueue[T]) Len() int {
	return int(q.r.Len())
}

// Cap returns the ring's slot count.
func (q *RingQueue[T]) Cap() int {
	return int(q.r.Cap())
}
