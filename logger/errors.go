package logger

import "errors"

// The errors a Logger returns to its caller or raises internally. A
// filtered message (priority out of configured range) is not one of
// these: it's a silent, non-error drop.
var (
	// ErrParseDebug names the invalid-DEBUG error class. It is not
	// returned or wrapped by dbglog.DebugLevel, whose parse error wraps
	// the strconv error instead, so errors.Is(err, ErrParseDebug) is
	// false for that error.
	ErrParseDebug = errors.New("dbglog: invalid DEBUG value")

	// ErrAmbiguousBody is the fatal error pick-and-proceed raises when
	// two concurrently-waiting messages have equal bodies: the schedule
	// cannot be deterministically ordered.
	ErrAmbiguousBody = errors.New("dbglog: two concurrent messages have equal bodies; schedule is ambiguous")

	// ErrWaitDynamicUnimplemented is returned by New when WaitDynamicMode
	// is selected.
	ErrWaitDynamicUnimplemented = errors.New("dbglog: WaitDynamic is reserved and not implemented")
)
