// Package logger is the public facade: construction, level filtering,
// the three message-submission entry points, buffer flushing, shutdown,
// and the coordinator that backs all of it.
package logger

import (
	"sync"
	"sync/atomic"

	"github.com/nlog-dbg/dbglog"
	"github.com/nlog-dbg/dbglog/checkinqueue"
	"github.com/nlog-dbg/dbglog/sink"
)

// Logger is the running facade returned by New. It is immutable after
// construction except for its memory buffer (owned by the MemorySink
// destination, if any) and its shutdown flag.
type Logger struct {
	minLvl, maxLvl int
	dests          []sink.OutDest
	wait           WaitMode
	queue          *checkinqueue.Queue
	mem            *sink.MemorySink

	shutdown atomic.Bool
	coordWG  sync.WaitGroup
	closeMu  sync.Mutex
	closeErr error
	closed   bool
}

// New allocates the check-in queue and the shutdown flag, and spawns the
// coordinator goroutine. WaitDynamicMode is rejected immediately with
// ErrWaitDynamicUnimplemented; nothing is spawned in that case.
func New(minLvl, maxLvl int, dests []sink.OutDest, wait WaitMode) (*Logger, error) {
	if _, ok := wait.(WaitDynamicMode); ok {
		return nil, ErrWaitDynamicUnimplemented
	}

	l := &Logger{
		minLvl: minLvl,
		maxLvl: maxLvl,
		dests:  dests,
		wait:   wait,
		queue:  checkinqueue.New(),
	}
	for _, d := range dests {
		if m, ok := d.(*sink.MemorySink); ok {
			l.mem = m
		}
	}

	l.coordWG.Add(1)
	go l.runCoordinator()

	return l, nil
}

// accepts reports whether lvl falls within the Logger's configured range,
// per dbglog.InRange. Under the nodebug build it always reports false.
func (l *Logger) accepts(lvl int) bool {
	return dbglog.Compiled && dbglog.InRange(l.minLvl, l.maxLvl, lvl)
}

// FlushLogs atomically swaps out the MemorySink's buffer (if one of the
// Logger's destinations is a MemorySink) and returns the drained lines in
// chronological order. Returns nil if no MemorySink destination exists.
func (l *Logger) FlushLogs() []string {
	if l.mem == nil {
		return nil
	}
	return l.mem.Drain()
}

// Close raises the shutdown flag and joins the coordinator goroutine,
// which drains any remaining check-ins synchronously before terminating.
// Idempotent: a second call observes the first call's result without
// touching the destinations again.
func (l *Logger) Close() error {
	l.closeMu.Lock()
	defer l.closeMu.Unlock()

	if l.closed {
		return l.closeErr
	}
	l.closed = true

	l.shutdown.Store(true)
	l.coordWG.Wait()
	l.closeErr = sink.CloseAll(l.dests)
	return l.closeErr
}
