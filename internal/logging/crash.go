package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// RecoverPanic logs a panic with its stack and re-panics. Deferred at the
// top of main so a crash on an unattended terminal leaves a trace in the
// log file.
func RecoverPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	FromContext(ctx).Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("stack", string(debug.Stack())).
		Msg("kiosk crashed")
	panic(r)
}
