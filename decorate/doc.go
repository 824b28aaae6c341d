// Package decorate wraps functions to change how they are invoked: at most
// once ([Once]), cached per argument ([Memoize], [MemoizeBounded]), deferred
// ([Delay]), at most once per time window ([Throttle]) or within a token
// budget ([NewRateLimited]).
//
// # Typed functions
//
// Decorators work on single-argument functions, func(A) R. Functions with
// several inputs take a struct; functions without inputs take struct{}:
//
//	type query struct{ table string; limit int }
//	load := decorate.Memoize(func(q query) []Row { ... })
//
// # Time
//
// Time-based decorators read the time from a [clock.Clock] and defer work
// through a [clock.Scheduler]. Both default to [clock.Real] and can be
// replaced with a [clock.Fake] for deterministic tests:
//
//	fake := clock.NewFake(time.Now())
//	save := decorate.Throttle(persist, 100*time.Millisecond, decorate.WithClockScheduler(fake))
//	save(doc)                        // runs now
//	save(doc2)                       // coalesced into one trailing call
//	fake.Advance(100 * time.Millisecond) // trailing call runs with doc2
//
// # State and concurrency
//
// Each call to a decorator creates private state owned by the returned value;
// nothing is shared between decorations. Decorated values are safe for
// concurrent use. [Once], [Throttle] and [NewRateLimited] hold their lock
// while the wrapped function runs, so that function must not call its own
// decorated form.
//
// Panics raised by wrapped functions are not recovered.
package decorate
