//go:build debug

package sbuffer

import (
	"fmt"
	"log"
	"os"
)

// Debug logger instance.
var logger = log.New(os.Stderr, "[sbuffer DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages when the package is built with the debug
// tag, e.g. Push's maximum-depth and fully-occluded messages.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}

// assertf panics with a formatted message if cond is false. Only compiled
// into debug builds, per the design notes' "implementations in a language
// with cheap assertions should assert these" guidance for Push's
// caller-contract preconditions (x0 < x1, w0/w1 > 0, and so on).
func assertf(cond bool, format string, v ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, v...))
	}
}
