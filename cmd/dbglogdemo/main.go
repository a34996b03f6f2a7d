// Command dbglogdemo is a small runnable demonstration of the scheduling
// logger: it instruments a handful of goroutines racing over a shared
// counter with one submission before every read and write, and lets the
// coordinator pick a reproducible interleaving.
package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/nlog-dbg/dbglog"
	"github.com/nlog-dbg/dbglog/logger"
	"github.com/nlog-dbg/dbglog/sink"
)

func main() {
	dbgLvl, err := dbglog.DebugLevel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	const workers = 4
	mem := sink.NewMemorySink()
	// os.Stdout is wrapped so that Close, which closes every destination,
	// leaves it open for the memory dump below.
	dests := []sink.OutDest{sink.NewHandleSink(struct{ io.Writer }{os.Stdout}), mem}

	var idle atomic.Int32
	idle.Store(workers)

	l, err := logger.New(0, dbgLvl, dests, logger.WaitFixedMode{
		Target:    workers,
		ExtraIdle: func() int { return int(idle.Load()) },
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var counter atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			idle.Add(-1)
			l.LogStrLn(0, fmt.Sprintf("worker-%d-read-%d", id, counter.Load()))
			counter.Add(1)
			l.LogStrLn(0, fmt.Sprintf("worker-%d-wrote-%d", id, counter.Load()))
			idle.Add(1)
		}(i)
	}
	wg.Wait()

	if err := l.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, line := range l.FlushLogs() {
		fmt.Println("memory:", line)
	}
}
