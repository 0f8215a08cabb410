package animation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFrameQueue_RunsEachCallbackOnce(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	q.RequestFrame(func(time.Time) { calls++ })
	q.RequestFrame(func(time.Time) { calls++ })

	assert.Equal(t, 2, q.Flush(time.Now()))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, q.Flush(time.Now()))
}

func TestFrameQueue_DefersCallbacksRequestedDuringFlush(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	var cb FrameCallback
	cb = func(time.Time) {
		calls++
		q.RequestFrame(cb)
	}
	q.RequestFrame(cb)

	q.Flush(time.Now())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, q.Pending())

	q.Flush(time.Now())
	assert.Equal(t, 2, calls)
}

func TestFrameQueue_CancelFrame(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	id := q.RequestFrame(func(time.Time) { ran = true })
	q.CancelFrame(id)
	q.CancelFrame(FrameID(999))

	assert.Equal(t, 0, q.Flush(time.Now()))
	assert.False(t, ran)
}

func TestFrameQueue_CancelFromEarlierCallbackInSameFrame(t *testing.T) {
	q := NewFrameQueue()
	secondRan := false
	var second FrameID
	q.RequestFrame(func(time.Time) { q.CancelFrame(second) })
	second = q.RequestFrame(func(time.Time) { secondRan = true })

	assert.Equal(t, 1, q.Flush(time.Now()))
	assert.False(t, secondRan)
}

func TestTask_RunsUntilStepReturnsFalse(t *testing.T) {
	q := NewFrameQueue()
	n := 0
	task := Start(q, func(time.Time) bool {
		n++
		return n < 3
	})

	for range 10 {
		q.Flush(time.Now())
	}

	assert.Equal(t, 3, n)
	assert.Equal(t, 3, task.Frames())
	select {
	case <-task.Done():
	default:
		t.Fatal("task should be done")
	}
	assert.False(t, task.Token().Cancelled())
}

func TestTask_CancelWithdrawsPendingFrame(t *testing.T) {
	q := NewFrameQueue()
	n := 0
	task := Start(q, func(time.Time) bool {
		n++
		return true
	})
	q.Flush(time.Now())
	require.Equal(t, 1, n)

	task.Cancel()
	task.Cancel()

	assert.Equal(t, 0, q.Pending())
	q.Flush(time.Now())
	assert.Equal(t, 1, n)
	assert.True(t, task.Token().Cancelled())
	<-task.Done()
}

func TestTask_CancelNil(t *testing.T) {
	var task *Task
	assert.NotPanics(t, task.Cancel)
}

func TestTicker_RunUntilIdle(t *testing.T) {
	q := NewFrameQueue()
	ticker := NewTicker(q, 500)
	n := 0
	task := Start(q, func(time.Time) bool {
		n++
		return n < 5
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	frames, err := ticker.RunUntilIdle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, frames)
	<-task.Done()
}

func TestTicker_RunStopsOnCancel(t *testing.T) {
	q := NewFrameQueue()
	ticker := NewTicker(q, 0)
	assert.Equal(t, time.Second/DefaultFPS, ticker.Interval())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- ticker.Run(ctx) }()

	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
}
