// Package queue provides the FIFO containers shared between the producer
// and consumer loops.
//
// Three implementations are offered:
//   - ByteQueue: unbounded byte FIFO guarded by a single mutex. Multi-byte
//     sequences must go through Update, PushFrame or PopFrame so that a
//     frame is never torn by a concurrent push or pop.
//   - FrameQueue: unbounded message queue of whole values, backed by
//     github.com/Workiva/go-datastructures/queue. Supports blocking Poll.
//   - RingQueue: bounded lock-free ring of whole values, backed by
//     github.com/randomizedcoder/go-lock-free-ring.
//
// All implementations are safe for one producer goroutine and one consumer
// goroutine running concurrently.
package queue

import "errors"

var (
	// ErrOverflow is returned when a push would grow a ByteQueue past its
	// maximum length. The producer treats it as fatal resource exhaustion.
	ErrOverflow = errors.New("queue: length limit reached")

	// ErrDisposed is returned by FrameQueue operations after Dispose.
	ErrDisposed = errors.New("queue: disposed")
)

// Queue is a non-blocking FIFO.
//
// Push returns false if the item could not be accepted (overflow, full
// ring or disposed queue). Pop returns false if the queue is empty.
type Queue[T any] interface {
	// Push adds an item to the tail of the queue.
	Push(T) bool

	// Pop removes and returns the item at the head of the queue.
	Pop() (T, bool)
}
