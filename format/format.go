// Package format implements the one stable wire format the coordinator
// emits: "{lead}{lvl}| {extra}{body}". The trailing newline is the
// destination's concern (HandleSink appends one; MemorySink and
// EventsSink store/emit the line as a single unit).
package format

import (
	"strconv"
	"strings"

	"github.com/nlog-dbg/dbglog/msg"
)

// Line renders m with the given contextual prefix. extra is empty for
// shutdown/off-the-record prints and "#{k} of {n}: " for scheduled picks
// (see Pick).
func Line(m msg.LogMsg, extra string) string {
	var b strings.Builder
	b.Grow(len(extra) + len(m.Body) + 8)
	if m.Kind == msg.OffTheRecord {
		b.WriteByte('\\')
	} else {
		b.WriteByte('|')
	}
	b.WriteString(strconv.Itoa(m.Lvl))
	b.WriteString("| ")
	b.WriteString(extra)
	b.WriteString(m.Body)
	return b.String()
}

// Pick formats the contextual prefix pick-and-proceed attaches to the
// winning message: "#{pos} of {n}: ", where pos is 1-based.
func Pick(pos, n int) string {
	var b strings.Builder
	b.WriteByte('#')
	b.WriteString(strconv.Itoa(pos))
	b.WriteString(" of ")
	b.WriteString(strconv.Itoa(n))
	b.WriteString(": ")
	return b.String()
}
