package checkout

import "time"

// Scheduler abstracts the simulated payment processing delay so tests can
// resolve it synchronously instead of waiting on wall-clock time.
type Scheduler interface {
	// Schedule runs fn once after the delay and returns a cancel function.
	Schedule(delay time.Duration, fn func()) (cancel func())
}

// TimerScheduler is the production scheduler, backed by time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}

// SyncScheduler runs the callback immediately on the calling goroutine.
// Test use only.
type SyncScheduler struct{}

func (SyncScheduler) Schedule(_ time.Duration, fn func()) func() {
	fn()
	return func() {}
}
