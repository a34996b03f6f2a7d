// Package latch implements the single-shot release gate a Writer parks
// on: one Signal, one Wait unblock, no spurious wakeups.
package latch

import "sync"

// Latch is a single-shot gate. Signal is idempotent-safe by construction
// (the coordinator only ever calls it once per Writer); Wait returns
// exactly once, after Signal.
type Latch struct {
	once sync.Once
	ch   chan struct{}
}

// New returns an unsignaled Latch.
func New() *Latch {
	return &Latch{ch: make(chan struct{})}
}

// Signal releases every current and future waiter. Safe to call more
// than once; only the first call has effect.
func (l *Latch) Signal() {
	l.once.Do(func() { close(l.ch) })
}

// Wait blocks until Signal has been called.
func (l *Latch) Wait() {
	<-l.ch
}

var dummy = New()

// Dummy returns the process-wide placeholder latch used by DontWait
// Writers. It is a structural placeholder only: nothing ever waits on
// it, so it is never signaled by the coordinator either.
func Dummy() *Latch {
	return dummy
}
