// Package msg defines the tagged message value producers submit and the
// Writer record that carries it through the check-in queue.
package msg

import "github.com/nlog-dbg/dbglog/latch"

// Kind distinguishes the two LogMsg variants.
type Kind uint8

const (
	// Standard messages participate in scheduling: in a waiting mode
	// their producer parks until the coordinator picks them.
	Standard Kind = iota
	// OffTheRecord messages never gate the schedule. They are printed
	// immediately (unless silenced) and their producer is released at
	// once.
	OffTheRecord
)

// LogMsg is the opaque payload a producer submits: a priority number and
// a textual body. Interpretation beyond ordering is the caller's
// concern.
type LogMsg struct {
	Kind Kind
	Lvl  int
	Body string
}

// Std builds a Standard message.
func Std(lvl int, body string) LogMsg {
	return LogMsg{Kind: Standard, Lvl: lvl, Body: body}
}

// OTR builds an OffTheRecord message.
func OTR(lvl int, body string) LogMsg {
	return LogMsg{Kind: OffTheRecord, Lvl: lvl, Body: body}
}

// Writer is the per-call check-in record: published to the queue by a
// producer and consumed exactly once by the coordinator, which signals
// Release exactly once unless it is the DontWait dummy latch, which is
// never signaled. Who identifies the originator; it is currently
// left to the zero value by every public submission entry point, which
// accepts no caller identity argument.
type Writer struct {
	Who     string
	Release *latch.Latch
	Msg     LogMsg
}
