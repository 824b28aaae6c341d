package decorate_test

import (
	"sync/atomic"
	"testing"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/require"

	"github.com/arkadyp/underbar/decorate"
)

func TestMemoize(t *testing.T) {
	calls := map[int]int{}
	square := decorate.Memoize(func(n int) int {
		calls[n]++
		return n * n
	})
	require.Equal(t, 9, square(3))
	require.Equal(t, 9, square(3))
	require.Equal(t, 16, square(4))
	require.Equal(t, map[int]int{3: 1, 4: 1}, calls)
}

func TestMemoizeRecursive(t *testing.T) {
	var calls int
	var fib func(int) int
	fib = decorate.Memoize(func(n int) int {
		calls++
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})
	require.Equal(t, 12586269025, fib(50))
	require.Equal(t, 51, calls)
}

func TestMemoizeZeroResultIsCached(t *testing.T) {
	calls := 0
	f := decorate.Memoize(func(s string) bool {
		calls++
		return false
	})
	f("x")
	f("x")
	require.Equal(t, 1, calls)
}

func TestMemoizeConcurrent(t *testing.T) {
	var calls atomic.Int32
	f := decorate.Memoize(func(n int) int {
		calls.Add(1)
		return n + 1
	})
	results := make([]int, 200)
	var wg conc.WaitGroup
	for i := range results {
		wg.Go(func() { results[i] = f(i % 10) })
	}
	wg.Wait()
	for i, r := range results {
		require.Equal(t, i%10+1, r)
	}
	require.GreaterOrEqual(t, calls.Load(), int32(10))
	calls.Store(0)
	for i := 0; i < 10; i++ {
		f(i)
	}
	require.Zero(t, calls.Load())
}

func TestMemoizeBounded(t *testing.T) {
	calls := 0
	m, err := decorate.MemoizeBounded(func(s string) int {
		calls++
		return len(s)
	}, 100)
	require.NoError(t, err)
	defer m.Close()

	require.Equal(t, 5, m.Call("hello"))
	require.Equal(t, 5, m.Call("hello"))
	require.Equal(t, 2, m.Func()("hi"))
	require.Equal(t, 2, calls)
}

func TestMemoizeBoundedInvalidCapacity(t *testing.T) {
	_, err := decorate.MemoizeBounded(func(n int) int { return n }, 0)
	require.ErrorIs(t, err, decorate.ErrInvalidCapacity)
}
