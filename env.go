package dbglog

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/nlog-dbg/dbglog/internal/diag"
)

// Default range callers use to select which messages participate in
// schedule-fuzz testing.
const (
	DefaultMemDbgRangeMin = 0
	DefaultMemDbgRangeMax = 10
)

var (
	debugLevelOnce sync.Once
	debugLevel     int
	debugLevelErr  error
)

// DebugLevel returns the process-wide debug level read from the DEBUG
// environment variable, memoized on first use: later mutation of the
// environment is ignored. An unset, empty, or "0" value yields
// DefaultLevel without error; any other unparseable value is a fatal
// parse error.
func DebugLevel() (int, error) {
	if !Compiled {
		return DefaultLevel, nil
	}
	debugLevelOnce.Do(func() {
		raw, ok := os.LookupEnv("DEBUG")
		if !ok || raw == "" || raw == "0" {
			debugLevel = DefaultLevel
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			debugLevelErr = fmt.Errorf("dbglog: parsing DEBUG=%q: %w", raw, err)
			return
		}
		debugLevel = v
		if v != DefaultLevel {
			diag.EnvOverride(v)
		}
	})
	return debugLevel, debugLevelErr
}

var (
	silenceOTROnce sync.Once
	silenceOTR     bool
)

// SilenceOTR reports whether SILENCEOTR suppresses echoing of
// off-the-record messages in the scheduling loop. Off-the-record
// producers are still released immediately regardless of this setting.
func SilenceOTR() bool {
	silenceOTROnce.Do(func() {
		raw, ok := os.LookupEnv("SILENCEOTR")
		if !ok {
			return
		}
		switch raw {
		case "0", "false", "False":
			return
		default:
			silenceOTR = true
		}
	})
	return silenceOTR
}
