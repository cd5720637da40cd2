// Package goroutine launches background goroutines that cannot crash the process.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/hys-retail/storedesk/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine and logs, instead of propagating, any panic.
func SafeGo(log logger.Interface, name string, fn func()) {
	go Run(log, name, fn)
}

// Run calls fn on the current goroutine with the same panic recovery as SafeGo.
// It reports whether fn returned normally.
func Run(log logger.Interface, name string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			ok = false
		}
	}()
	fn()
	return true
}
