package idle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fakeTimer struct {
	delay     time.Duration
	fn        func()
	cancelled bool
}

// fakeScheduler records timers; tests fire them by hand.
type fakeScheduler struct {
	timers []*fakeTimer
}

var _ port.Scheduler = (*fakeScheduler)(nil)

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) port.CancelFunc {
	t := &fakeTimer{delay: d, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

func (s *fakeScheduler) pending() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range s.timers {
		if !t.cancelled && t.fn != nil {
			out = append(out, t)
		}
	}
	return out
}

// fireNext runs the single pending timer.
func (s *fakeScheduler) fireNext(t *testing.T) *fakeTimer {
	t.Helper()
	pending := s.pending()
	require.Len(t, pending, 1)
	timer := pending[0]
	fn := timer.fn
	timer.fn = nil
	fn()
	return timer
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestWatchdog(timeout time.Duration) (*Watchdog, *fakeScheduler, *fakeClock, *int) {
	sched := &fakeScheduler{}
	clock := &fakeClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	fired := new(int)
	w := NewWatchdog(timeout, sched, func() { *fired++ }).WithClock(clock.now)
	return w, sched, clock, fired
}

func TestWatchdog_ZeroTimeoutNeverArms(t *testing.T) {
	w, sched, _, fired := newTestWatchdog(0)
	w.Start(testContext())
	w.Activity()

	assert.Equal(t, WatchdogDisabled, w.State())
	assert.Empty(t, sched.timers)
	assert.Zero(t, *fired)
}

func TestWatchdog_NegativeTimeoutIsDisabled(t *testing.T) {
	w := NewWatchdog(-time.Second, &fakeScheduler{}, nil)
	assert.Equal(t, time.Duration(0), w.Timeout())
	assert.Equal(t, WatchdogDisabled, w.State())
}

func TestWatchdog_FiresAfterTimeoutAndRestarts(t *testing.T) {
	w, sched, clock, fired := newTestWatchdog(30 * time.Second)
	assert.Equal(t, WatchdogIdle, w.State())

	w.Start(testContext())
	assert.Equal(t, WatchdogRunning, w.State())

	clock.advance(30 * time.Second)
	timer := sched.fireNext(t)
	assert.Equal(t, 30*time.Second, timer.delay)
	assert.Equal(t, 1, *fired)
	assert.Equal(t, 1, w.Expirations())

	// A fresh full window follows an expiry.
	next := sched.pending()
	require.Len(t, next, 1)
	assert.Equal(t, 30*time.Second, next[0].delay)
	assert.Equal(t, WatchdogRunning, w.State())
}

func TestWatchdog_ActivityPushesDeadline(t *testing.T) {
	w, sched, clock, fired := newTestWatchdog(30 * time.Second)
	w.Start(testContext())

	clock.advance(20 * time.Second)
	w.Activity()
	clock.advance(10 * time.Second)
	sched.fireNext(t)

	assert.Zero(t, *fired)
	rearmed := sched.pending()
	require.Len(t, rearmed, 1)
	assert.Equal(t, 20*time.Second, rearmed[0].delay)

	clock.advance(20 * time.Second)
	sched.fireNext(t)
	assert.Equal(t, 1, *fired)
}

func TestWatchdog_StopCancelsTimer(t *testing.T) {
	w, sched, clock, fired := newTestWatchdog(10 * time.Second)
	w.Start(testContext())
	w.Stop()

	assert.Equal(t, WatchdogIdle, w.State())
	assert.Empty(t, sched.pending())

	// A callback that slipped past cancellation must not fire.
	clock.advance(time.Minute)
	sched.timers[0].fn()
	assert.Zero(t, *fired)
}

func TestWatchdog_ActivityBeforeStartIsIgnored(t *testing.T) {
	w, sched, _, _ := newTestWatchdog(10 * time.Second)
	w.Activity()
	assert.Empty(t, sched.timers)
}

func TestWatchdog_RestartReplacesPendingTimer(t *testing.T) {
	w, sched, _, _ := newTestWatchdog(10 * time.Second)
	w.Start(testContext())
	w.Start(testContext())

	assert.Len(t, sched.timers, 2)
	assert.True(t, sched.timers[0].cancelled)
	assert.Len(t, sched.pending(), 1)
}

func TestWatchdogState_String(t *testing.T) {
	assert.Equal(t, "disabled", WatchdogDisabled.String())
	assert.Equal(t, "idle", WatchdogIdle.String())
	assert.Equal(t, "running", WatchdogRunning.String())
	assert.Equal(t, "unknown", WatchdogState(42).String())
}
