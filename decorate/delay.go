package decorate

import (
	"slices"
	"time"

	"github.com/arkadyp/underbar/clock"
)

// Delay schedules fn(args...) to run once, no earlier than wait from now, and
// returns immediately. The arguments are copied at call time.
//
// The returned Timer may be ignored; stopping it cancels the invocation if it
// has not run yet. A nil scheduler uses [clock.Real].
func Delay[A any](s clock.Scheduler, fn func(...A), wait time.Duration, args ...A) clock.Timer {
	if s == nil {
		s = clock.Real()
	}
	captured := slices.Clone(args)
	return s.AfterFunc(wait, func() { fn(captured...) })
}
