//go:build !nodebug

package dbglog

// Compiled reports whether the debug-logging facility is built in. It is
// a compile-time constant so the Go compiler folds the `if !Compiled`
// guards in DebugLevel away entirely under the nodebug build, achieving
// the elision the design calls for without a preprocessor.
const Compiled = true

// DefaultLevel is the compile-time default debug level applied when
// DEBUG is unset, empty, or "0".
const DefaultLevel = 0
