package collections_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkadyp/underbar/collections"
)

func TestEachSequenceVisitsInIndexOrder(t *testing.T) {
	seq := collections.Sequence[string]{"a", "b", "c"}
	var values []string
	var keys []int
	collections.Each[string](seq, func(v string, k collections.Key, c collections.Enumerable[string]) {
		require.True(t, k.IsIndex())
		require.Equal(t, 3, c.Len())
		values = append(values, v)
		keys = append(keys, k.Index())
	})
	require.Equal(t, []string{"a", "b", "c"}, values)
	require.Equal(t, []int{0, 1, 2}, keys)
}

func TestEachKeyedVisitsEveryKeyOnce(t *testing.T) {
	kv := collections.Keyed[int]{"c": 3, "a": 1, "b": 2}
	seen := map[string]int{}
	var order []string
	collections.Each[int](kv, func(v int, k collections.Key, _ collections.Enumerable[int]) {
		require.False(t, k.IsIndex())
		require.Equal(t, -1, k.Index())
		seen[k.Name()]++
		order = append(order, k.Name())
		require.Equal(t, kv[k.Name()], v)
	})
	require.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, seen)
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestEachKeyedOrderIsStable(t *testing.T) {
	kv := collections.Keyed[int]{}
	for i, k := range []string{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"} {
		kv[k] = i
	}
	first := kv.Keys()
	for i := 0; i < 20; i++ {
		require.Equal(t, first, kv.Keys())
	}
}

func TestEachNumericLookingKeysStayKeyed(t *testing.T) {
	// Keys that look like indexes must not turn a map into a sequence.
	kv := collections.Keyed[string]{"0": "zero", "1": "one", "length": "2"}
	n := 0
	collections.Each[string](kv, func(_ string, k collections.Key, _ collections.Enumerable[string]) {
		require.False(t, k.IsIndex())
		n++
	})
	require.Equal(t, 3, n)
}

func TestEachNilAndEmpty(t *testing.T) {
	calls := 0
	fn := func(int, collections.Key, collections.Enumerable[int]) { calls++ }
	collections.Each[int](nil, fn)
	collections.Each[int](collections.Sequence[int](nil), fn)
	collections.Each[int](collections.Keyed[int]{}, fn)
	require.Zero(t, calls)
}

func TestEachPanicPropagates(t *testing.T) {
	visited := 0
	require.PanicsWithValue(t, "boom", func() {
		collections.Each[int](collections.Sequence[int]{1, 2, 3}, func(v int, _ collections.Key, _ collections.Enumerable[int]) {
			visited++
			if v == 2 {
				panic("boom")
			}
		})
	})
	require.Equal(t, 2, visited)
}

func TestKeyString(t *testing.T) {
	require.Equal(t, "4", collections.IndexKey(4).String())
	require.Equal(t, "name", collections.NameKey("name").String())
	require.Equal(t, "", collections.IndexKey(4).Name())
}

func TestReduce(t *testing.T) {
	sum := collections.Reduce(collections.Sequence[int]{1, 2, 3}, func(acc, n int) int { return acc + n }, 0)
	if sum != 6 {
		t.Fatalf("Reduce = %d; want 6", sum)
	}
}

func TestReduceWithoutSeedStartsAtZero(t *testing.T) {
	// The first element is not used as the seed.
	var seeds []int
	got := collections.Reduce(collections.Sequence[int]{5, 7}, func(acc, n int) int {
		seeds = append(seeds, acc)
		return acc*10 + n
	})
	require.Equal(t, 57, got)
	require.Equal(t, []int{0, 5}, seeds)

	product := collections.Reduce(collections.Sequence[int]{2, 3, 4}, func(acc, n int) int { return acc * n })
	require.Zero(t, product)
}

func TestReduceKeyed(t *testing.T) {
	joined := collections.Reduce(collections.Keyed[string]{"b": "B", "a": "A"}, func(acc, s string) string {
		return acc + s
	}, ">")
	require.Equal(t, ">AB", joined)
}

func TestReduceEmptyReturnsSeed(t *testing.T) {
	require.Equal(t, 42, collections.Reduce(collections.Sequence[int]{}, func(acc, n int) int { return acc + n }, 42))
	require.Equal(t, "", collections.Reduce(collections.Sequence[int]{}, func(acc string, _ int) string { return acc + "x" }))
}
