package queue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/bytefifo/internal/queue"
)

func testQueue[T comparable](t *testing.T, q queue.Queue[T], val T) {
	t.Helper()

	_, ok := q.Pop()
	assert.False(t, ok, "Pop() on empty queue")

	require.True(t, q.Push(val), "Push()")

	got, ok := q.Pop()
	require.True(t, ok, "Pop() after Push()")
	assert.Equal(t, val, got)

	_, ok = q.Pop()
	assert.False(t, ok, "Pop() after draining")
}

func newRing(t *testing.T, capacity uint64) *queue.RingQueue[uint32] {
	t.Helper()
	q, err := queue.NewRingQueue[uint32](capacity)
	require.NoError(t, err)
	return q
}

func TestQueueInterface(t *testing.T) {
	t.Run("ByteQueue", func(t *testing.T) {
		testQueue[byte](t, queue.NewByteQueue(0), 0x2a)
	})
	t.Run("FrameQueue", func(t *testing.T) {
		testQueue[uint32](t, queue.NewFrameQueue[uint32](8), 42)
	})
	t.Run("RingQueue", func(t *testing.T) {
		testQueue[uint32](t, newRing(t, 8), 42)
	})
}

func TestFrameQueue_FIFO(t *testing.T) {
	q := queue.NewFrameQueue[uint32](0)
	for i := uint32(0); i < 100; i++ {
		require.True(t, q.Push(i))
	}
	assert.Equal(t, 100, q.Len())

	for i := uint32(0); i < 100; i++ {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, got, "FIFO violation")
	}
}

func TestFrameQueue_PollTimeout(t *testing.T) {
	q := queue.NewFrameQueue[uint32](0)

	_, ok, err := q.Poll(5 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)

	q.Push(7)
	v, ok, err := q.Poll(time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint32(7), v)
}

func TestFrameQueue_DisposeReleasesPoll(t *testing.T) {
	q := queue.NewFrameQueue[uint32](0)
	errs := make(chan error, 1)

	go func() {
		_, _, err := q.Poll(time.Minute)
		errs <- err
	}()

	time.Sleep(10 * time.Millisecond)
	q.Dispose()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, queue.ErrDisposed)
	case <-time.After(time.Second):
		t.Fatal("Poll() still blocked after Dispose()")
	}

	assert.True(t, q.Disposed())
	assert.False(t, q.Push(1), "Push() after Dispose()")
}

func TestRingQueue_Full(t *testing.T) {
	q := newRing(t, 4)

	pushed := 0
	for i := 0; i < 64; i++ {
		if !q.Push(uint32(i)) {
			break
		}
		pushed++
	}
	assert.Less(t, pushed, 64, "ring should refuse writes once full")
	assert.Equal(t, 4, q.Cap())
	assert.LessOrEqual(t, pushed, q.Cap())
	assert.Equal(t, pushed, q.Len())

	for i := 0; i < pushed; i++ {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, uint32(i), got, "FIFO violation")
	}
	assert.Equal(t, 0, q.Len())
}
