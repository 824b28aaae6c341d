package decorate

import (
	"fmt"
	"sync"

	"github.com/Yiling-J/theine-go"
)

type memoState[K comparable, R any] struct {
	mu      sync.Mutex
	results map[K]R
}

// Memoize returns a function that caches fn's result for every distinct
// argument, using the argument itself as the lookup key. The cache grows
// without bound; see [MemoizeBounded] for a capped variant.
//
// fn runs without the cache lock held, so a memoized function may recurse
// through its own memoized form. Two goroutines missing on the same key at
// once may both call fn; the first stored result wins.
func Memoize[K comparable, R any](fn func(K) R) func(K) R {
	s := &memoState[K, R]{results: make(map[K]R)}
	return func(key K) R {
		s.mu.Lock()
		if r, ok := s.results[key]; ok {
			s.mu.Unlock()
			return r
		}
		s.mu.Unlock()

		r := fn(key)

		s.mu.Lock()
		defer s.mu.Unlock()
		if prev, ok := s.results[key]; ok {
			return prev
		}
		s.results[key] = r
		return r
	}
}

// Memo is a memoized function whose cache holds at most a fixed number of
// results, evicting by recency and frequency.
type Memo[K comparable, R any] struct {
	fn    func(K) R
	cache *theine.Cache[K, R]
}

// MemoizeBounded is [Memoize] with a cache capped at capacity entries.
// Close the returned Memo when it is no longer needed.
func MemoizeBounded[K comparable, R any](fn func(K) R, capacity int64) (*Memo[K, R], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	cache, err := theine.NewBuilder[K, R](capacity).Build()
	if err != nil {
		return nil, fmt.Errorf("decorate: build memo cache: %w", err)
	}
	return &Memo[K, R]{fn: fn, cache: cache}, nil
}

// Call returns the cached result for key, computing it with fn on a miss.
func (m *Memo[K, R]) Call(key K) R {
	if r, ok := m.cache.Get(key); ok {
		return r
	}
	r := m.fn(key)
	m.cache.Set(key, r, 1)
	return r
}

// Func returns m.Call as a plain function value.
func (m *Memo[K, R]) Func() func(K) R { return m.Call }

// Close releases the cache's background resources.
func (m *Memo[K, R]) Close() { m.cache.Close() }
