package mainloop

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/kiosk/internal/application/port"
)

// Scheduler runs callbacks on the GTK main loop.
type Scheduler struct{}

var _ port.Scheduler = Scheduler{}

// AfterFunc schedules fn once after d on the main loop.
func (Scheduler) AfterFunc(d time.Duration, fn func()) port.CancelFunc {
	ms := d.Milliseconds()
	if ms < 1 {
		ms = 1
	}

	var done atomic.Bool
	handle := glib.TimeoutAdd(uint(ms), func() bool {
		if done.Swap(true) {
			return false
		}
		fn()
		return false
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			// A source that already ran has removed itself.
			if !done.Swap(true) {
				glib.SourceRemove(handle)
			}
		})
	}
}

// IdlePost queues fn on the main loop. It is safe to call from any
// goroutine and is the post function for a Coalescer.
func IdlePost(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
