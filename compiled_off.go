//go:build nodebug

package dbglog

// Compiled is false under the nodebug build tag: DebugLevel short-circuits
// before touching os.LookupEnv, and every Logger's level check rejects,
// so no message is ever queued.
const Compiled = false

// DefaultLevel stays pinned to 0; DEBUG is never consulted under this
// build (see DebugLevel).
const DefaultLevel = 0
