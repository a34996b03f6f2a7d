package logger

import (
	"errors"
	"fmt"

	"github.com/nlog-dbg/dbglog"
	"github.com/nlog-dbg/dbglog/backoff"
	"github.com/nlog-dbg/dbglog/format"
	"github.com/nlog-dbg/dbglog/internal/diag"
	"github.com/nlog-dbg/dbglog/latch"
	"github.com/nlog-dbg/dbglog/msg"
	"github.com/nlog-dbg/dbglog/sink"
)

// runCoordinator is the long-running task New spawns. It installs an
// exception guard: anything other than the cooperative flow below is
// logged to stderr (via internal/diag) and re-raised into the spawning
// goroutine. Go panics cannot literally cross goroutines, so "re-raised"
// is realized as an unrecovered panic in this goroutine, which — absent a
// recover higher up — terminates the process.
func (l *Logger) runCoordinator() {
	defer l.coordWG.Done()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := toError(r)
		if errors.Is(err, ErrAmbiguousBody) {
			diag.Fatal(err.Error())
		} else {
			diag.CoordinatorCrash(err)
		}
		panic(r)
	}()

	switch w := l.wait.(type) {
	case DontWaitMode:
		l.runDontWait()
	case WaitFixedMode:
		l.runWaitFixed(w)
	default:
		// New already rejects WaitDynamicMode and any unknown WaitMode
		// implementation would be a caller bug, not a runtime condition
		// this loop should silently ignore.
		panic(fmt.Errorf("dbglog: unsupported WaitMode %T", w))
	}
}

func toError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

// runDontWait is the print loop: no Writer is ever released here because
// in DontWait mode producers never parked.
func (l *Logger) runDontWait() {
	b := backoff.New(backoff.DefaultCap)
	for {
		if l.shutdown.Load() {
			l.flushDrain()
			return
		}

		w, ok := l.queue.TryPop()
		if !ok {
			b.Step()
			continue
		}

		line := format.Line(w.Msg, "")
		if err := sink.Dispatch(l.dests, line); err != nil {
			diag.DispatchError(err)
		}
		b = b.Reset()
	}
}

// runWaitFixed is the scheduling loop that rounds up waiting writers and
// hands the whole group to pickAndProceed once it judges the group
// quiescent.
func (l *Logger) runWaitFixed(mode WaitFixedMode) {
	b := backoff.New(backoff.DefaultCap)
	iters := 0
	var waiting []*msg.Writer // new check-ins first; pickAndProceed's remainder follows in body order

	silenceOTR := dbglog.SilenceOTR()

	for {
		sink.FlushAll(l.dests)

		if l.shutdown.Load() {
			l.flushDrainWaiting(waiting)
			return
		}

		waiting = l.drainWithSideline(waiting, silenceOTR)

		parked := len(waiting)
		idle := mode.ExtraIdle()

		if parked+idle >= mode.Target && parked > 0 {
			waiting = l.pickAndProceed(waiting)
			b = b.Reset()
			iters = 0
			continue
		}

		// Either not yet quiescent, or quiescent with nothing parked
		// (every worker is idle: the design preserves this as an
		// intentional spin until shutdown rather than guessing at
		// different semantics).
		b.Step()
		iters++

		if iters%500 == 0 {
			diag.Spin(iters, parked, idle)
		}
	}
}

// drainWithSideline repeatedly pops the queue, sidelining Standard
// messages into waiting and immediately printing+releasing
// OffTheRecord ones, until the queue is empty.
func (l *Logger) drainWithSideline(waiting []*msg.Writer, silenceOTR bool) []*msg.Writer {
	for {
		w, ok := l.queue.TryPop()
		if !ok {
			return waiting
		}

		switch w.Msg.Kind {
		case msg.Standard:
			waiting = append([]*msg.Writer{w}, waiting...)
		case msg.OffTheRecord:
			if !silenceOTR {
				line := format.Line(w.Msg, "")
				if err := sink.Dispatch(l.dests, line); err != nil {
					diag.DispatchError(err)
				}
			}
			w.Release.Signal()
		}
	}
}

// flushDrain is the no-waiting-list flush-drain used by DontWait mode's
// shutdown path.
func (l *Logger) flushDrain() {
	l.flushDrainWaiting(nil)
}

// flushDrainWaiting finalizes every already-sidelined waiting Writer,
// then drains and finalizes whatever remains in the queue. Every
// producer that has published in a waiting mode must eventually be
// released, either by pick-and-proceed or by this shutdown drain, and a
// Writer already moved into waiting would otherwise never be revisited
// once the queue that held it goes empty. A Writer that carries the
// shared dummy latch (DontWait mode) is dispatched but not signaled.
func (l *Logger) flushDrainWaiting(waiting []*msg.Writer) {
	for _, w := range waiting {
		l.finalize(w)
	}
	for {
		w, ok := l.queue.TryPop()
		if !ok {
			return
		}
		l.finalize(w)
	}
}

func (l *Logger) finalize(w *msg.Writer) {
	line := format.Line(w.Msg, "")
	if err := sink.Dispatch(l.dests, line); err != nil {
		diag.DispatchError(err)
	}
	if w.Release != latch.Dummy() {
		w.Release.Signal()
	}
}
