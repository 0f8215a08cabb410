package animation

import (
	"sync"
	"sync/atomic"
	"time"
)

// StepFunc advances a task by one frame. Returning false completes the task.
type StepFunc func(now time.Time) bool

// CancelToken reports whether the task it belongs to has been cancelled.
// Step functions that write shared state check it under their own lock so a
// superseded task can never write after its successor has started.
type CancelToken struct {
	cancelled atomic.Bool
}

// Cancelled reports whether cancellation was requested.
func (t *CancelToken) Cancelled() bool {
	return t != nil && t.cancelled.Load()
}

// Task is a cancellable repeating frame task.
type Task struct {
	sched Scheduler
	step  StepFunc
	token *CancelToken

	mu      sync.Mutex
	frame   FrameID
	done    chan struct{}
	closed  bool
	frames  int
	stopped bool
}

// Start requests the first frame of a new task and returns it.
func Start(sched Scheduler, step StepFunc) *Task {
	t := &Task{
		sched: sched,
		step:  step,
		token: &CancelToken{},
		done:  make(chan struct{}),
	}
	t.mu.Lock()
	t.frame = sched.RequestFrame(t.run)
	t.mu.Unlock()
	return t
}

// Token returns the task's cancellation token.
func (t *Task) Token() *CancelToken {
	return t.token
}

// Done is closed when the task completes or is cancelled.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Frames returns the number of frames the task has run.
func (t *Task) Frames() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frames
}

// Cancel stops the task: the pending frame is withdrawn from the scheduler
// and the token is marked cancelled. Cancel is idempotent and safe to call
// on a nil task.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.token.cancelled.Store(true)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.sched.CancelFrame(t.frame)
	t.finishLocked()
}

func (t *Task) run(now time.Time) {
	if t.token.Cancelled() {
		t.mu.Lock()
		t.finishLocked()
		t.mu.Unlock()
		return
	}

	more := t.step(now)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.frames++
	if t.stopped {
		return
	}
	if !more || t.token.Cancelled() {
		t.finishLocked()
		return
	}
	t.frame = t.sched.RequestFrame(t.run)
}

func (t *Task) finishLocked() {
	t.stopped = true
	if !t.closed {
		t.closed = true
		close(t.done)
	}
}
