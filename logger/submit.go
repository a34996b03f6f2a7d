package logger

import (
	"github.com/nlog-dbg/dbglog/latch"
	"github.com/nlog-dbg/dbglog/msg"
)

// LogStrLn submits a Standard message whose body is s directly.
func (l *Logger) LogStrLn(lvl int, s string) {
	l.submit(msg.Std(lvl, s))
}

// LogByteStringLn submits a Standard message, decoding b as UTF-8 text.
func (l *Logger) LogByteStringLn(lvl int, b []byte) {
	l.submit(msg.Std(lvl, string(b)))
}

// LogTextLn submits a Standard message, decoding t (a rune slice, this
// package's analogue of a Text type) to its string form.
func (l *Logger) LogTextLn(lvl int, t []rune) {
	l.submit(msg.Std(lvl, string(t)))
}

// LogOn submits a full LogMsg, including OffTheRecord messages, which
// LogStrLn/LogByteStringLn/LogTextLn cannot express.
func (l *Logger) LogOn(m msg.LogMsg) {
	l.submit(m)
}

// submit is the core all three string-flavored entry points and LogOn
// funnel into.
func (l *Logger) submit(m msg.LogMsg) {
	if !l.accepts(m.Lvl) {
		return
	}
	// A submission racing a concurrent Close is dropped silently rather
	// than blocking forever on a coordinator that has already stopped
	// draining the queue.
	if l.shutdown.Load() {
		return
	}

	if _, ok := l.wait.(DontWaitMode); ok {
		l.queue.Push(&msg.Writer{Release: latch.Dummy(), Msg: m})
		return
	}

	rel := latch.New()
	l.queue.Push(&msg.Writer{Release: rel, Msg: m})
	rel.Wait()
}
