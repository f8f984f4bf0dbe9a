// Package pipe adapts the queue implementations to the frame-level API the
// producer and consumer loops use.
//
// A Transport moves uint32 frames from exactly one sender to exactly one
// receiver. How a frame is represented while queued (four little-endian
// bytes or a whole value) is the transport's business.
package pipe

import (
	"errors"
	"fmt"
	"time"

	"github.com/randomizedcoder/bytefifo/internal/config"
)

var (
	// ErrClosed is returned by Send and TryReceive after Close.
	ErrClosed = errors.New("pipe: transport closed")

	// ErrFull is returned by Send on a bounded transport with no free slot.
	// The caller may retry.
	ErrFull = errors.New("pipe: transport full")
)

// Units reported by Transport.Unit.
const (
	UnitBytes  = "bytes"
	UnitFrames = "frames"
)

// Transport is a single-producer single-consumer frame channel.
type Transport interface {
	// Send enqueues v as one atomic unit.
	Send(v uint32) error

	// TryReceive dequeues one frame without blocking. ok is false when no
	// complete frame is available yet; that is not an error.
	TryReceive() (v uint32, ok bool, err error)

	// Len is an advisory snapshot of the queued amount, in Unit().
	Len() int

	// Unit names what Len counts.
	Unit() string

	// Close releases resources. Queued frames may be discarded.
	Close() error
}

// Waiter is implemented by transports that can block until a frame
// arrives, so the consumer does not need to poll.
type Waiter interface {
	// Receive waits up to timeout for a frame.
	Receive(timeout time.Duration) (v uint32, ok bool, err error)
}

// New builds the transport selected by c.Transport.
func New(c config.Config) (Transport, error) {
	switch c.Transport {
	case config.TransportBytes:
		return NewBytes(c.MaxQueueBytes), nil
	case config.TransportFrames:
		return NewFrames(), nil
	case config.TransportRing:
		return NewRing(c.RingCapacity)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownTransport, c.Transport)
	}
}
