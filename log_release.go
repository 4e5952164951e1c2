//go:build !debug

package sbuffer

// logDebugf is a no-op outside debug builds.
func logDebugf(format string, v ...interface{}) {}

// assertf is a no-op outside debug builds: release builds rely on Push's
// ordinary error returns (ErrOccluded, ErrMaxDepthExceeded) and the
// caller's contractual obligation to pre-sort and pre-clamp arguments
// (see the design notes on error handling), rather than paying for
// assertion checks on every call.
func assertf(cond bool, format string, v ...interface{}) {}
