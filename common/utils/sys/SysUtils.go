package sys

import (
	"fmt"
	"runtime/debug"

	"g2rapid/common/logger"

	"github.com/petermattis/goid"
)

func GetGID() uint64 {
	id := goid.Get()
	return uint64(id)
}

// CatchPanic must be deferred directly. A recovered panic is logged with the
// goroutine id and stack, then handed to report as an error so a worker can
// deliver it instead of dying.
func CatchPanic(report func(err error)) {
	if r := recover(); r != nil {
		s := string(debug.Stack())
		logger.Error("panic:", GetGID(), r, s)

		var err error
		switch v := r.(type) {
		case error:
			err = fmt.Errorf("recovered panic: %w", v)
		default:
			err = fmt.Errorf("recovered panic: %v", v)
		}
		if report != nil {
			report(err)
		}
	}
}
