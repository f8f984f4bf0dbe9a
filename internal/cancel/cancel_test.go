package cancel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randomizedcoder/bytefifo/internal/cancel"
)

func TestAtomicCanceler(t *testing.T) {
	c := cancel.NewAtomic()
	assert.False(t, c.Done(), "Done() before Cancel()")

	c.Cancel()
	assert.True(t, c.Done(), "Done() after Cancel()")

	// Verify idempotent
	c.Cancel()
	assert.True(t, c.Done(), "Done() after second Cancel()")
}

func TestAtomicCanceler_StopReportsTransition(t *testing.T) {
	var c cancel.AtomicCanceler

	assert.True(t, c.Stop(), "first Stop() performs the transition")
	assert.False(t, c.Stop(), "second Stop() is a no-op")
	assert.True(t, c.Done())
}

func TestAtomicCanceler_Reset(t *testing.T) {
	c := cancel.NewAtomic()

	c.Cancel()
	assert.True(t, c.Done())

	c.Reset()
	assert.False(t, c.Done(), "Done() after Reset()")
}

func TestContextCanceler_ParentCancel(t *testing.T) {
	parent, stop := context.WithCancel(context.Background())
	c := cancel.NewContext(parent)
	assert.False(t, c.Done())

	stop()
	assert.True(t, c.Done(), "parent cancellation must propagate")
}

func TestContextCanceler_Context(t *testing.T) {
	c := cancel.NewContext(context.Background())
	ctx := c.Context()

	select {
	case <-ctx.Done():
		t.Error("expected context to not be done")
	default:
	}

	c.Cancel()

	select {
	case <-ctx.Done():
	default:
		t.Error("expected context to be done after Cancel()")
	}
}

func TestContextCanceler_StopRecordsCause(t *testing.T) {
	c := cancel.NewContext(context.Background())
	assert.NoError(t, c.Cause(), "Cause() while running")

	assert.True(t, c.Stop(), "first Stop() clears the flag")
	assert.False(t, c.Stop(), "second Stop() is a no-op")
	assert.True(t, c.Done())
	assert.ErrorIs(t, c.Cause(), cancel.ErrStopped)
}

func TestContextCanceler_ParentCauseWins(t *testing.T) {
	errSignal := errors.New("interrupt")
	parent, stop := context.WithCancelCause(context.Background())
	c := cancel.NewContext(parent)

	stop(errSignal)
	assert.False(t, c.Stop(), "Stop() after the parent finished")
	assert.ErrorIs(t, c.Cause(), errSignal)
}

// Test that both implementations satisfy the interface
func TestCancelerInterface(t *testing.T) {
	testCases := []struct {
		name string
		c    cancel.Canceler
	}{
		{"Context", cancel.NewContext(context.Background())},
		{"Atomic", cancel.NewAtomic()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.c.Done(), "Done() initially")
			tc.c.Cancel()
			assert.True(t, tc.c.Done(), "Done() after Cancel()")
		})
	}
}
