package arr

import (
	"fmt"
	"reflect"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/arkadyp/underbar/collections"
	"github.com/arkadyp/underbar/random"
)

// MissingValue is the type of [Missing].
type MissingValue struct{}

// String renders the marker in fmt output.
func (MissingValue) String() string { return "<missing>" }

// Missing fills the slots of a [Zip] row whose input sequence is too short.
var Missing = MissingValue{}

// Number is the set of key types accepted by [SortBy]. Keys are compared by
// subtraction, so unsigned integers, whose differences wrap instead of going
// negative, are excluded.
type Number interface {
	constraints.Signed | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Zip groups the i-th elements of every sequence into row i.
//
// The result has as many rows as the longest input. A sequence that is too
// short contributes [Missing] to the rows past its end. At least one sequence
// is required.
//
//	Zip([]any{"a", "b", "c"}, []any{1, 2})
//	// → [[a 1] [b 2] [c <missing>]]
func Zip(seqs ...[]any) ([][]any, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("%w: Zip needs at least one sequence", ErrInvalidArgument)
	}
	n := collections.Reduce(collections.Sequence[[]any](seqs), func(longest int, s []any) int {
		return max(longest, len(s))
	})
	out := make([][]any, n)
	for i := range out {
		row := make([]any, len(seqs))
		for j, s := range seqs {
			if i < len(s) {
				row[j] = s[i]
			} else {
				row[j] = Missing
			}
		}
		out[i] = row
	}
	return out, nil
}

// Flatten returns the leaves of an arbitrarily nested structure of slices in
// depth-first, left-to-right order.
//
// Any slice or array value is descended into, whatever its element type;
// everything else is a leaf. A non-slice argument yields a single leaf.
// Cyclic structures (a []any that contains itself) do not terminate.
func Flatten(nested any) []any {
	return FlattenInto(nil, nested)
}

// FlattenInto appends the leaves of nested to dst and returns the extended
// slice.
func FlattenInto(dst []any, nested any) []any {
	switch v := nested.(type) {
	case []any:
		for _, elem := range v {
			dst = FlattenInto(dst, elem)
		}
		return dst
	case nil:
		return append(dst, nil)
	}
	rv := reflect.ValueOf(nested)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			dst = FlattenInto(dst, rv.Index(i).Interface())
		}
		return dst
	default:
		return append(dst, nested)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Intersection returns the values present in every sequence, in the order of
// their first appearance in seqs[0], each value once. At least one sequence
// is required.
func Intersection[T comparable](seqs ...[]T) ([]T, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("%w: Intersection needs at least one sequence", ErrInvalidArgument)
	}
	others := make([]map[T]struct{}, len(seqs)-1)
	for i, s := range seqs[1:] {
		others[i] = toSet(s)
	}
	uniq := collections.Uniq(seqs[0])
	return collections.Filter(uniq, func(v T) bool {
		for _, set := range others {
			if _, ok := set[v]; !ok {
				return false
			}
		}
		return true
	}), nil
}

// Difference returns the elements of first that occur in none of rest.
// Order and duplicates of first are preserved. With no rest sequences, first
// itself is returned.
func Difference[T comparable](first []T, rest ...[]T) []T {
	if len(rest) == 0 {
		return first
	}
	drop := make(map[T]struct{})
	for _, s := range rest {
		for _, v := range s {
			drop[v] = struct{}{}
		}
	}
	return collections.Reject(collections.Sequence[T](first), func(v T) bool {
		_, found := drop[v]
		return found
	})
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a uniformly random permutation of items, leaving items
// untouched. It runs a Fisher–Yates pass over a copy, from the last index down,
// swapping each position i with one drawn uniformly from [0, i]. A nil src
// uses [random.Default].
func Shuffle[T any](items []T, src random.Source) []T {
	if src == nil {
		src = random.Default()
	}
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := random.Intn(src, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SortBy returns a copy of items stably ordered by ascending key(item).
//
// Keys are compared by difference, key(a) - key(b), exactly as a numeric
// comparator would. Differences that overflow the key type, and NaN keys,
// produce an unspecified order. key is called once per element.
func SortBy[T any, N Number](items []T, key func(T) N) []T {
	tagged := collections.Map(collections.Sequence[T](items), func(v T, _ collections.Key, _ collections.Enumerable[T]) keyed[T, N] {
		return keyed[T, N]{item: v, key: key(v)}
	})
	slices.SortStableFunc(tagged, func(a, b keyed[T, N]) int {
		switch d := a.key - b.key; {
		case d < 0:
			return -1
		case d > 0:
			return 1
		default:
			return 0
		}
	})
	out := make([]T, len(tagged))
	for i, t := range tagged {
		out[i] = t.item
	}
	return out
}

type keyed[T any, N Number] struct {
	item T
	key  N
}

// SortByKey is [SortBy] for maps, ordering them by the value stored under key.
// Maps that lack key sort as if it held zero.
func SortByKey[K comparable, N Number](items []map[K]N, key K) []map[K]N {
	return SortBy(items, func(m map[K]N) N { return m[key] })
}
