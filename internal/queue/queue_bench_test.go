package queue_test

import (
	"testing"

	"github.com/randomizedcoder/bytefifo/internal/queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkUint32 uint32
var sinkBool bool

func BenchmarkQueue_ByteQueue_Frame(b *testing.B) {
	q := queue.NewByteQueue(0)
	b.ReportAllocs()
	b.ResetTimer()

	var val uint32
	var ok bool
	for i := 0; i < b.N; i++ {
		_ = q.PushFrame(uint32(i))
		val, ok = q.PopFrame()
	}
	sinkUint32 = val
	sinkBool = ok
}

func BenchmarkQueue_FrameQueue_PushPop(b *testing.B) {
	q := queue.NewFrameQueue[uint32](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val uint32
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(uint32(i))
		val, ok = q.Pop()
	}
	sinkUint32 = val
	sinkBool = ok
}

func BenchmarkQueue_RingQueue_PushPop(b *testing.B) {
	q, err := queue.NewRingQueue[uint32](1024)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var val uint32
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(uint32(i))
		val, ok = q.Pop()
	}
	sinkUint32 = val
	sinkBool = ok
}

// BenchmarkQueue_ByteQueue_Pipeline runs a 2-goroutine pipeline over the
// mutex-guarded byte queue.
func BenchmarkQueue_ByteQueue_Pipeline(b *testing.B) {
	q := queue.NewByteQueue(0)
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				q.PopFrame()
			}
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.PushFrame(uint32(i))
	}
	b.StopTimer()
	close(done)
	<-consumerDone
}
