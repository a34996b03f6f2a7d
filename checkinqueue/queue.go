// Package checkinqueue implements the unbounded multi-producer,
// single-consumer FIFO of check-ins the coordinator polls.
//
// A mutex-protected slice rather than a lock-free ring: pushes never
// block or fail, and TryPop never blocks either, which is all the
// coordinator's poll loop needs.
package checkinqueue

import (
	"sync"

	"github.com/nlog-dbg/dbglog/msg"
)

// Queue is an unbounded MPSC FIFO of *msg.Writer.
type Queue struct {
	mu    sync.Mutex
	items []*msg.Writer
	head  int
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Push appends w. It never blocks and never fails, and is totally
// ordered with respect to other Push calls.
func (q *Queue) Push(w *msg.Writer) {
	q.mu.Lock()
	q.items = append(q.items, w)
	q.mu.Unlock()
}

// TryPop removes and returns the oldest Writer, or (nil, false) if the
// queue was empty at the instant of the call. Non-blocking.
func (q *Queue) TryPop() (*msg.Writer, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head >= len(q.items) {
		return nil, false
	}
	w := q.items[q.head]
	q.items[q.head] = nil
	q.head++

	// Reclaim the backing array once half of it is consumed slack,
	// rather than letting it grow unbounded across a long-lived queue.
	if q.head > 64 && q.head*2 > len(q.items) {
		remaining := len(q.items) - q.head
		compacted := make([]*msg.Writer, remaining, remaining*2+16)
		copy(compacted, q.items[q.head:])
		q.items = compacted
		q.head = 0
	}

	return w, true
}
