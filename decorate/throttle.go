package decorate

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/arkadyp/underbar/clock"
)

// Throttled is a function limited to one leading execution per window.
//
// A call made once the window has lapsed runs immediately and opens a new
// window of length wait. Calls made inside the window are coalesced into a
// single trailing execution at the window's end, using the argument of the
// latest such call. The trailing execution does not open a window of its own.
//
// Every call returns the result of the most recently completed execution, so
// callers inside a window see the previous result, not the pending one.
//
// If a call opens a new window while the trailing execution is still waiting
// on a late scheduler, the trailing execution runs first, synchronously.
type Throttled[A, R any] struct {
	fn     func(A) R
	wait   time.Duration
	clock  clock.Clock
	sched  clock.Scheduler
	logger *zap.Logger

	mu        sync.Mutex
	windowEnd time.Time
	last      R
	pending   *trailingCall[A]
}

type trailingCall[A any] struct {
	arg   A
	timer clock.Timer
}

// NewThrottled returns fn throttled to one leading execution per wait.
// A non-positive wait disables throttling.
func NewThrottled[A, R any](fn func(A) R, wait time.Duration, opts ...Option) *Throttled[A, R] {
	cfg := newConfig(opts)
	return &Throttled[A, R]{
		fn:     fn,
		wait:   wait,
		clock:  cfg.Clock,
		sched:  cfg.Scheduler,
		logger: cfg.Logger.With(zap.String("decorator", "throttle"), zap.Duration("wait", wait)),
	}
}

// Throttle is NewThrottled(fn, wait, opts...).Call.
func Throttle[A, R any](fn func(A) R, wait time.Duration, opts ...Option) func(A) R {
	return NewThrottled(fn, wait, opts...).Call
}

// Call invokes or defers fn according to the throttling window.
func (t *Throttled[A, R]) Call(arg A) R {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if !now.Before(t.windowEnd) {
		if t.pending != nil {
			// The trailing timer is late; its call runs before the leading one.
			overdue := t.pending
			t.pending = nil
			overdue.timer.Stop()
			t.logger.Debug("overdue trailing call run before leading call")
			t.last = t.fn(overdue.arg)
		}
		t.windowEnd = now.Add(t.wait)
		t.last = t.fn(arg)
		return t.last
	}

	if t.pending != nil {
		t.pending.arg = arg
		t.logger.Debug("call coalesced into pending trailing call")
		return t.last
	}

	call := &trailingCall[A]{arg: arg}
	delay := t.windowEnd.Sub(now)
	call.timer = t.sched.AfterFunc(delay, func() { t.fire(call) })
	t.pending = call
	t.logger.Debug("trailing call scheduled", zap.Duration("in", delay))
	return t.last
}

func (t *Throttled[A, R]) fire(call *trailingCall[A]) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending != call {
		// cancelled, or already run by a leading call
		return
	}
	t.pending = nil
	t.logger.Debug("trailing call firing")
	t.last = t.fn(call.arg)
}

// Cancel drops the pending trailing execution, if any, and reports whether
// there was one. The current window is left as is.
func (t *Throttled[A, R]) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending == nil {
		return false
	}
	t.pending.timer.Stop()
	t.pending = nil
	t.logger.Debug("trailing call cancelled")
	return true
}

// Pending reports whether a trailing execution is scheduled.
func (t *Throttled[A, R]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

// Last returns the result of the most recently completed execution.
func (t *Throttled[A, R]) Last() R {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}
