package queue

import (
	"math"

	"github.com/sasha-s/go-deadlock"

	"github.com/randomizedcoder/bytefifo/internal/codec"
)

// compactThreshold is the consumed prefix size above which PopFront
// considers shifting the live bytes back to the start of the buffer.
const compactThreshold = 4096

// ByteQueue is an unbounded FIFO of bytes guarded by one mutex.
//
// Single-byte Push and Pop are atomic on their own. Anything that spans
// more than one byte must hold the lock for the whole sequence: use
// Update, PushFrame or PopFrame.
type ByteQueue struct {
	mu     deadlock.Mutex
	buf    []byte
	head   int
	maxLen int
}

// NewByteQueue creates an empty ByteQueue that refuses to grow past maxLen
// bytes. A maxLen <= 0 means the only limit is math.MaxInt.
func NewByteQueue(maxLen int) *ByteQueue {
	if maxLen <= 0 {
		maxLen = math.MaxInt
	}
	return &ByteQueue{maxLen: maxLen}
}

// Tx is a view of the queue valid only inside an Update callback.
// Every value it reports is consistent for the duration of the callback.
type Tx struct {
	q *ByteQueue
}

// Len returns the number of buffered bytes.
func (tx *Tx) Len() int { return tx.q.len() }

// Empty reports whether the queue holds no bytes.
func (tx *Tx) Empty() bool { return tx.q.len() == 0 }

// Push appends b, or returns ErrOverflow.
func (tx *Tx) Push(b byte) error { return tx.q.pushAll([]byte{b}) }

// PushAll appends every byte of p or, if that would overflow, none of them.
func (tx *Tx) PushAll(p []byte) error { return tx.q.pushAll(p) }

// PopFront removes and returns the oldest byte.
func (tx *Tx) PopFront() (byte, bool) { return tx.q.popFront() }

// Update runs fn with the lock held and returns its error.
// fn must not retain tx or call other ByteQueue methods.
func (q *ByteQueue) Update(fn func(tx *Tx) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return fn(&Tx{q: q})
}

// Push appends b. It returns false if the queue is at its length limit.
func (q *ByteQueue) Push(b byte) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pushAll([]byte{b}) == nil
}

// Pop removes and returns the oldest byte.
func (q *ByteQueue) Pop() (byte, bool) {
	return q.PopFront()
}

// PopFront removes and returns the oldest byte.
// It returns false when the queue is empty; it never blocks.
func (q *ByteQueue) PopFront() (byte, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.popFront()
}

// PushFrame appends the codec encoding of v as one unit.
func (q *ByteQueue) PushFrame(v uint32) error {
	var frame [codec.FrameSize]byte
	p := codec.Append(frame[:0], v)

	return q.Update(func(tx *Tx) error {
		return tx.PushAll(p)
	})
}

// PopFrame removes one frame and decodes it.
//
// If fewer than codec.FrameSize bytes are buffered nothing is removed and
// ok is false: the caller should retry later.
func (q *ByteQueue) PopFrame() (v uint32, ok bool) {
	var frame [codec.FrameSize]byte

	_ = q.Update(func(tx *Tx) error {
		if tx.Len() < codec.FrameSize {
			return nil
		}
		for i := range frame {
			frame[i], _ = tx.PopFront()
		}
		ok = true
		return nil
	})
	if !ok {
		return 0, false
	}
	return codec.Uint32(frame[:]), true
}

// Len returns the number of buffered bytes.
// The value may be stale as soon as it is returned.
func (q *ByteQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.len()
}

// Empty reports whether the queue held no bytes at the time of the call.
func (q *ByteQueue) Empty() bool {
	return q.Len() == 0
}

// MaxLen returns the length limit.
func (q *ByteQueue) MaxLen() int {
	return q.maxLen
}

func (q *ByteQueue) len() int {
	return len(q.buf) - q.head
}

func (q *ByteQueue) pushAll(p []byte) error {
	if len(p) > q.maxLen-q.len() {
		return ErrOverflow
	}
	q.buf = append(q.buf, p...)
	return nil
}

func (q *ByteQueue) popFront() (byte, bool) {
	if q.head >= len(q.buf) {
		return 0, false
	}
	b := q.buf[q.head]
	q.head++

	switch {
	case q.head == len(q.buf):
		q.buf = q.buf[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.buf):
		n := copy(q.buf, q.buf[q.head:])
		q.buf = q.buf[:n]
		q.head = 0
	}
	return b, true
}
