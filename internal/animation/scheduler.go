// Package animation provides a frame-callback scheduling abstraction and a
// cancellable repeating task built on it.
//
// A Scheduler plays the role of a host's per-frame callback mechanism: a
// callback registered with RequestFrame runs once, on the next frame. Work
// that spans many frames re-requests itself from inside its callback. Task
// packages that pattern with a cancellation token so a newer task can
// supersede an older one deterministically.
package animation

import (
	"sync"
	"time"
)

// FrameID identifies a pending frame callback. Zero is never issued.
type FrameID uint64

// FrameCallback runs once per requested frame with the frame timestamp.
type FrameCallback func(now time.Time)

// Scheduler registers callbacks for the next frame.
type Scheduler interface {
	// RequestFrame schedules cb for the next frame.
	RequestFrame(cb FrameCallback) FrameID
	// CancelFrame removes a pending callback. Unknown ids are ignored.
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	cb FrameCallback
}

// FrameQueue is a Scheduler whose frames are produced by the host calling
// Flush. Callbacks requested while a flush is running are deferred to the
// following flush, so a self-rescheduling callback runs exactly once per
// frame. FrameQueue is safe for concurrent use; callbacks run on the
// goroutine that calls Flush, one at a time.
type FrameQueue struct {
	mu      sync.Mutex
	flushMu sync.Mutex
	nextID  FrameID
	pending []pendingFrame
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(cb FrameCallback) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextID++
	q.pending = append(q.pending, pendingFrame{id: q.nextID, cb: cb})
	return q.nextID
}

// CancelFrame implements Scheduler.
func (q *FrameQueue) CancelFrame(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, p := range q.pending {
		if p.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush runs one frame: every callback pending when Flush starts is invoked
// with now, unless it is cancelled before its turn. It returns the number of
// callbacks run.
func (q *FrameQueue) Flush(now time.Time) int {
	q.flushMu.Lock()
	defer q.flushMu.Unlock()

	q.mu.Lock()
	batch := make([]FrameID, len(q.pending))
	for i, p := range q.pending {
		batch[i] = p.id
	}
	q.mu.Unlock()

	ran := 0
	for _, id := range batch {
		cb, ok := q.take(id)
		if !ok {
			continue
		}
		cb(now)
		ran++
	}
	return ran
}

// take removes and returns the callback for id if it is still pending.
func (q *FrameQueue) take(id FrameID) (FrameCallback, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, p := range q.pending {
		if p.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return p.cb, true
		}
	}
	return nil, false
}
