// Package backoff implements the exponential-delay helper the
// coordinator uses when it has nothing to do.
package backoff

import (
	"runtime"
	"time"
)

// DefaultCap is the backoff ceiling used throughout the coordinator.
const DefaultCap = 10 * time.Millisecond

// Backoff tracks the current delay, its ceiling, and a running total of
// time actually slept, for diagnostics.
type Backoff struct {
	current   time.Duration
	cap       time.Duration
	totalWait time.Duration
}

// New returns a fresh Backoff seeded at zero delay with the given cap. A
// non-positive cap falls back to DefaultCap.
func New(cap time.Duration) *Backoff {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &Backoff{cap: cap}
}

// Step advances the backoff by one unit. From zero delay it only yields
// the scheduler and arms a one-unit delay; from then on it sleeps the
// current delay and doubles it, capped.
func (b *Backoff) Step() {
	if b.current == 0 {
		runtime.Gosched()
		b.current = time.Millisecond
		return
	}
	time.Sleep(b.current)
	b.totalWait += b.current
	next := b.current * 2
	if next > b.cap {
		next = b.cap
	}
	b.current = next
}

// TotalWait returns the accumulated sleep time since construction.
func (b *Backoff) TotalWait() time.Duration {
	return b.totalWait
}

// Reset returns a fresh Backoff with the same cap. The coordinator calls
// this after any productive round so busy traces do not carry stale
// delay into the next spin.
func (b *Backoff) Reset() *Backoff {
	return New(b.cap)
}
