package logger

// WaitMode selects the coordinator's top-level scheduling behaviour.
type WaitMode interface {
	isWaitMode()
}

// DontWaitMode makes every submission non-blocking: producers never
// park, and the coordinator runs a plain print loop.
type DontWaitMode struct{}

func (DontWaitMode) isWaitMode() {}

// WaitFixedMode runs the scheduling loop: a round completes once
// parked+ExtraIdle() >= Target.
type WaitFixedMode struct {
	Target    int
	ExtraIdle func() int
}

func (WaitFixedMode) isWaitMode() {}

// WaitDynamicMode is reserved and unimplemented; New rejects it with
// ErrWaitDynamicUnimplemented.
type WaitDynamicMode struct{}

func (WaitDynamicMode) isWaitMode() {}
