// Package diag carries the coordinator's own operational messages — as
// distinct from the Standard/OffTheRecord message traffic the logger
// exists to serialize — through a zap logger, the one third-party
// dependency this framework's own go.mod names outside its internal
// packages.
package diag

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	once   sync.Once
	logger *zap.SugaredLogger
)

func get() *zap.SugaredLogger {
	once.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l.Sugar()
	})
	return logger
}

// EnvOverride reports that DEBUG was parsed to a non-default level.
func EnvOverride(level int) {
	get().Infof("Responding to env var: DEBUG=%d", level)
}

// Spin reports the coordinator's periodic spin diagnostic: it has not
// found a round to complete for the given number of iterations.
func Spin(iters, parked, idle int) {
	fmt.Fprintf(os.Stdout, "logger has spun for %d iterations, %d checked-in, %d idling.\n", iters, parked, idle)
}

// Fatal logs a normal-operation fatal condition (the only one being the
// ambiguous-body schedule error) before the coordinator re-raises it.
func Fatal(msg string) {
	get().Errorw("coordinator fatal", "reason", msg)
}

// DispatchError logs a failed write to one or more destinations. This is
// a routine, recoverable I/O failure — one destination erroring never
// stops the others from receiving the line — so it's logged and
// execution continues.
func DispatchError(err error) {
	get().Errorw("dispatch to destination failed", "error", err)
}

// CoordinatorCrash logs an unrecovered coordinator panic to stderr
// before it is re-raised to the spawning goroutine, typically killing
// the process.
func CoordinatorCrash(err error) {
	get().Errorw("coordinator crashed", "error", err)
}
