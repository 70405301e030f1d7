package gridlogic

import (
	"log"
	"os"
	"sync/atomic"
)

var traceEnabled atomic.Bool

func init() {
	if os.Getenv("GRIDLOGIC_TRACE") == "1" {
		traceEnabled.Store(true)
	}
}

// EnableTrace turns on diagnostic logging for the solver's branch and
// backtrack points. Off by default; also toggleable via the
// GRIDLOGIC_TRACE=1 environment variable.
func EnableTrace() {
	traceEnabled.Store(true)
}

// DisableTrace turns diagnostic logging back off.
func DisableTrace() {
	traceEnabled.Store(false)
}

func tracef(format string, args ...any) {
	if !traceEnabled.Load() {
		return
	}
	log.Printf("[gridlogic] "+format, args...)
}
