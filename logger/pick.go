package logger

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"sort"
	"sync"

	"github.com/nlog-dbg/dbglog/format"
	"github.com/nlog-dbg/dbglog/internal/diag"
	"github.com/nlog-dbg/dbglog/msg"
	"github.com/nlog-dbg/dbglog/sink"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewPCG(1, 2))
)

// SeedPick reseeds the package-level pick-and-proceed RNG. Exposed so a
// caller can fix the seed before a run and get the same winner chosen
// across identical concurrent submissions.
func SeedPick(seed1, seed2 uint64) {
	rngMu.Lock()
	rng = rand.New(rand.NewPCG(seed1, seed2))
	rngMu.Unlock()
}

// pickAndProceed sorts the currently-waiting writers by body, selects
// one pseudo-randomly, dispatches it, and releases its producer. waiting
// must be non-empty.
func (l *Logger) pickAndProceed(waiting []*msg.Writer) []*msg.Writer {
	sorted := make([]*msg.Writer, len(waiting))
	copy(sorted, waiting)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Msg.Body < sorted[j].Msg.Body
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Msg.Body == sorted[i-1].Msg.Body {
			panic(fmt.Errorf("%w: %q", ErrAmbiguousBody, sorted[i].Msg.Body))
		}
	}

	rngMu.Lock()
	pos := rng.IntN(len(sorted))
	rngMu.Unlock()

	picked := sorted[pos]
	remainder := make([]*msg.Writer, 0, len(sorted)-1)
	remainder = append(remainder, sorted[:pos]...)
	remainder = append(remainder, sorted[pos+1:]...)

	extra := format.Pick(pos+1, len(sorted))
	line := format.Line(picked.Msg, extra)
	if err := sink.Dispatch(l.dests, line); err != nil {
		diag.DispatchError(err)
	}
	picked.Release.Signal()
	runtime.Gosched()

	return remainder
}
