package idle

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

// WatchdogState reports whether the inactivity timer is armed.
type WatchdogState int

const (
	// WatchdogDisabled means the timeout is zero and the timer never fires.
	WatchdogDisabled WatchdogState = iota
	// WatchdogIdle means the watchdog is configured but not started.
	WatchdogIdle
	// WatchdogRunning means a timer is pending.
	WatchdogRunning
)

func (s WatchdogState) String() string {
	switch s {
	case WatchdogDisabled:
		return "disabled"
	case WatchdogIdle:
		return "idle"
	case WatchdogRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Watchdog fires onExpire once the user has been inactive for the timeout,
// then starts watching again.
//
// Activity only records a timestamp. The pending timer checks the timestamp
// when it fires and re-arms for the remainder, so a burst of pointer motion
// costs no timer churn.
type Watchdog struct {
	timeout  time.Duration
	sched    port.Scheduler
	onExpire func()
	now      func() time.Time

	mu           sync.Mutex
	cancel       port.CancelFunc
	lastActivity time.Time
	generation   uint64
	expirations  int
}

// NewWatchdog creates a watchdog. A timeout <= 0 disables it.
func NewWatchdog(timeout time.Duration, sched port.Scheduler, onExpire func()) *Watchdog {
	if timeout < 0 {
		timeout = 0
	}
	return &Watchdog{
		timeout:  timeout,
		sched:    sched,
		onExpire: onExpire,
		now:      time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (w *Watchdog) WithClock(now func() time.Time) *Watchdog {
	w.now = now
	return w
}

// Timeout returns the configured inactivity window.
func (w *Watchdog) Timeout() time.Duration {
	return w.timeout
}

// State reports the current timer state.
func (w *Watchdog) State() WatchdogState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *Watchdog) stateLocked() WatchdogState {
	switch {
	case w.timeout == 0:
		return WatchdogDisabled
	case w.cancel != nil:
		return WatchdogRunning
	default:
		return WatchdogIdle
	}
}

// Expirations counts how many times the watchdog has fired.
func (w *Watchdog) Expirations() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.expirations
}

// Start arms the timer. Calling Start on a running watchdog restarts the
// inactivity window.
func (w *Watchdog) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timeout == 0 {
		logging.FromContext(ctx).Debug().Msg("inactivity watchdog disabled")
		return
	}
	w.lastActivity = w.now()
	w.armLocked(w.timeout)
	logging.FromContext(ctx).Debug().Dur("timeout", w.timeout).Msg("inactivity watchdog started")
}

// Activity records user input and pushes the deadline out.
func (w *Watchdog) Activity() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel == nil {
		return
	}
	w.lastActivity = w.now()
}

// Stop cancels the pending timer.
func (w *Watchdog) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.disarmLocked()
}

func (w *Watchdog) armLocked(d time.Duration) {
	w.disarmLocked()
	w.generation++
	gen := w.generation
	w.cancel = w.sched.AfterFunc(d, func() { w.fire(gen) })
}

func (w *Watchdog) disarmLocked() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

func (w *Watchdog) fire(gen uint64) {
	w.mu.Lock()
	if gen != w.generation || w.cancel == nil {
		w.mu.Unlock()
		return
	}
	w.cancel = nil

	idleFor := w.now().Sub(w.lastActivity)
	if remaining := w.timeout - idleFor; remaining > 0 {
		w.armLocked(remaining)
		w.mu.Unlock()
		return
	}

	w.expirations++
	w.lastActivity = w.now()
	w.armLocked(w.timeout)
	onExpire := w.onExpire
	w.mu.Unlock()

	if onExpire != nil {
		onExpire()
	}
}
