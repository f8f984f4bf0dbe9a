package pipe

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/randomizedcoder/bytefifo/internal/queue"
)

// Bytes carries frames as raw little-endian bytes on a ByteQueue.
//
// Each Send and each successful TryReceive holds the queue lock for the
// whole frame, so a frame is never torn.
type Bytes struct {
	q      *queue.ByteQueue
	closed atomic.Bool
}

// NewBytes creates a byte transport limited to maxLen queued bytes
// (<= 0 for no limit).
func NewBytes(maxLen int) *Bytes {
	return &Bytes{q: queue.NewByteQueue(maxLen)}
}

// Send appends the encoding of v.
func (b *Bytes) Send(v uint32) error {
	if b.closed.Load() {
		return ErrClosed
	}
	if err := b.q.PushFrame(v); err != nil {
		if errors.Is(err, queue.ErrOverflow) {
			return fmt.Errorf("pipe: send %d with %d bytes queued: %w", v, b.q.Len(), err)
		}
		return err
	}
	return nil
}

// TryReceive pops one frame if at least four bytes are queued.
func (b *Bytes) TryReceive() (uint32, bool, error) {
	if b.closed.Load() {
		return 0, false, ErrClosed
	}
	v, ok := b.q.PopFrame()
	return v, ok, nil
}

// Len returns the number of queued bytes.
func (b *Bytes) Len() int { return b.q.Len() }

// Unit returns UnitBytes.
func (b *Bytes) Unit() string { return UnitBytes }

// Close marks the transport closed. Queued bytes stay counted by Len.
func (b *Bytes) Close() error {
	b.closed.Store(true)
	return nil
}

// Queue exposes the underlying byte queue.
func (b *Bytes) Queue() *queue.ByteQueue { return b.q }
