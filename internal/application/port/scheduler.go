package port

import "time"

// CancelFunc stops a scheduled callback. Calling it after the callback ran,
// or more than once, is a no-op.
type CancelFunc func()

// Scheduler runs callbacks on the UI thread after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) CancelFunc
}
