package clock

import (
	"sync"
	"time"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// Fake is a manually driven [Clock] and [Scheduler].
//
// Fake is safe for concurrent use. Callbacks run on the goroutine that calls
// [Fake.Advance] and may themselves schedule further callbacks.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending *binaryheap.Heap
}

var _ ClockScheduler = (*Fake)(nil)

type fakeTimer struct {
	fake    *Fake
	due     time.Time
	seq     uint64
	fn      func()
	// immediate is set for timers scheduled with a non-positive delay.
	immediate bool
	stopped   bool
	fired     bool
}

// byDueThenSeq orders timers by due time, then by scheduling order.
func byDueThenSeq(a, b interface{}) int {
	ta, tb := a.(*fakeTimer), b.(*fakeTimer)
	switch {
	case ta.due.Before(tb.due):
		return -1
	case ta.due.After(tb.due):
		return 1
	case ta.seq < tb.seq:
		return -1
	case ta.seq > tb.seq:
		return 1
	default:
		return 0
	}
}

// NewFake returns a Fake whose current time is start.
func NewFake(start time.Time) *Fake {
	return &Fake{
		now:     start,
		pending: binaryheap.NewWith(byDueThenSeq),
	}
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// AfterFunc schedules fn to run once the fake time reaches Now()+d.
// A non-positive d makes fn due immediately; it still only runs on the next
// Advance, even when scheduled from a callback during an Advance.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := &fakeTimer{
		fake: f,
		due:       f.now.Add(max(d, 0)),
		seq:       f.seq,
		fn:        fn,
		immediate: d <= 0,
	}
	f.pending.Push(t)
	return t
}

// Stop cancels the timer if it has neither fired nor been stopped.
func (t *fakeTimer) Stop() bool {
	t.fake.mu.Lock()
	defer t.fake.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the fake time forward by d, running every callback that
// becomes due on the way. Each callback observes Now() equal to its own due
// time.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	start := f.seq
	f.mu.Unlock()
	var deferred []*fakeTimer
	for f.fireNext(target, start, &deferred) {
	}
	f.mu.Lock()
	for _, t := range deferred {
		f.pending.Push(t)
	}
	if target.After(f.now) {
		f.now = target
	}
	f.mu.Unlock()
}

// AdvanceTo is Advance(t.Sub(Now())).
func (f *Fake) AdvanceTo(t time.Time) {
	f.Advance(t.Sub(f.Now()))
}

// fireNext runs the earliest live callback due no later than target. It
// reports whether one ran. Immediate timers scheduled after seq start are
// moved to deferred instead of running.
func (f *Fake) fireNext(target time.Time, start uint64, deferred *[]*fakeTimer) bool {
	f.mu.Lock()
	for {
		top, ok := f.pending.Peek()
		if !ok {
			f.mu.Unlock()
			return false
		}
		t := top.(*fakeTimer)
		if t.stopped {
			f.pending.Pop()
			continue
		}
		if t.due.After(target) {
			f.mu.Unlock()
			return false
		}
		f.pending.Pop()
		if t.immediate && t.seq > start {
			*deferred = append(*deferred, t)
			continue
		}
		t.fired = true
		if t.due.After(f.now) {
			f.now = t.due
		}
		f.mu.Unlock()
		t.fn()
		return true
	}
}

// Pending returns the number of callbacks that are scheduled and not stopped.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, v := range f.pending.Values() {
		if !v.(*fakeTimer).stopped {
			n++
		}
	}
	return n
}
