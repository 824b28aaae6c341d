// Package clock abstracts wall-clock time and deferred execution so that
// time-dependent code can be driven deterministically in tests.
//
// Production code uses [Real]. Tests use a [Fake], whose time only moves when
// [Fake.Advance] is called and whose scheduled callbacks run synchronously,
// in due-time order, inside that call.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Scheduler runs a callback once after a delay.
//
// Callbacks fire no earlier than the requested delay. Callbacks that become
// due at the same instant run in the order they were scheduled.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle on a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped it, false if it had already run or been stopped.
	Stop() bool
}

// ClockScheduler is implemented by [Real] and [*Fake].
type ClockScheduler interface {
	Clock
	Scheduler
}

type realClock struct{}

// Real returns the clock and scheduler backed by the time package. Callbacks
// run on their own goroutine.
func Real() ClockScheduler { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
