package decorate

import "sync"

type onceState[R any] struct {
	mu     sync.Mutex
	called bool
	result R
}

// Once returns a function that calls fn on its first invocation only. Every
// later invocation returns that first result, whatever its argument.
//
// If fn panics the call does not count, and the next invocation tries again.
func Once[A, R any](fn func(A) R) func(A) R {
	s := &onceState[R]{}
	return func(arg A) R {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.called {
			s.result = fn(arg)
			s.called = true
		}
		return s.result
	}
}

// OnceFunc is [Once] for functions without an argument.
func OnceFunc[R any](fn func() R) func() R {
	once := Once(func(struct{}) R { return fn() })
	return func() R { return once(struct{}{}) }
}
