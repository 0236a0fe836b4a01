//go:build linux || darwin

package main

import (
	"context"
	"runtime/debug"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/bnema/kiosk/internal/logging"
)

// enableCrashForensics makes a crash inside WebKit or GTK leave a full
// goroutine dump and, where allowed, a core file.
func enableCrashForensics() {
	debug.SetTraceback("crash")

	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &limit); err != nil || limit.Cur >= limit.Max {
		return
	}
	limit.Cur = limit.Max
	_ = unix.Setrlimit(unix.RLIMIT_CORE, &limit)
}

func logCoreDumpLimits(ctx context.Context) {
	log := logging.FromContext(ctx)

	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &limit); err != nil {
		log.Debug().Err(err).Msg("failed to read RLIMIT_CORE")
		return
	}
	log.Debug().
		Str("soft", rlimitString(limit.Cur)).
		Str("hard", rlimitString(limit.Max)).
		Bool("enabled", limit.Cur > 0).
		Msg("core dump limits")
}

func rlimitString(value uint64) string {
	if value == unix.RLIM_INFINITY {
		return "unlimited"
	}
	return strconv.FormatUint(value, 10)
}
