package collections

import (
	"maps"
	"slices"
	"strconv"
)

// Enumerable is the traversal surface shared by [Sequence] and [Keyed].
//
// Every operation in this package is written against Enumerable, so the
// ordered and keyed variants go through the same code paths. The variant is
// chosen by the static type the caller constructs, never by inspecting the
// values at runtime.
type Enumerable[T any] interface {
	// Each calls fn(value, key, collection) once per element in traversal
	// order.
	Each(fn func(T, Key, Enumerable[T]))

	// Len returns the number of elements.
	Len() int
}

// Key identifies an element's position: a zero-based index for a [Sequence]
// or a string key for a [Keyed] collection.
type Key struct {
	index int
	name  string
	named bool
}

// IndexKey returns the key of the i-th element of a sequence.
func IndexKey(i int) Key { return Key{index: i} }

// NameKey returns the key of a keyed-collection entry.
func NameKey(name string) Key { return Key{name: name, named: true} }

// IsIndex reports whether k is a sequence index.
func (k Key) IsIndex() bool { return !k.named }

// Index returns the sequence index, or -1 for a named key.
func (k Key) Index() int {
	if k.named {
		return -1
	}
	return k.index
}

// Name returns the map key, or "" for a sequence index.
func (k Key) Name() string { return k.name }

// String renders the index in decimal or the name verbatim.
func (k Key) String() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}

// Sequence is an ordered, index-addressable collection.
//
//	s := collections.Sequence[int]{1, 2, 3}
type Sequence[T any] []T

var _ Enumerable[int] = Sequence[int](nil)

// Each visits elements in index order.
func (s Sequence[T]) Each(fn func(T, Key, Enumerable[T])) {
	for i, v := range s {
		fn(v, IndexKey(i), s)
	}
}

// Len returns len(s).
func (s Sequence[T]) Len() int { return len(s) }

// Keyed is a collection of values addressed by string keys.
//
// Traversal visits keys in ascending byte order so that results are stable
// from one run to the next.
type Keyed[T any] map[string]T

var _ Enumerable[int] = Keyed[int](nil)

// Each visits entries in ascending key order.
func (k Keyed[T]) Each(fn func(T, Key, Enumerable[T])) {
	for _, name := range k.Keys() {
		fn(k[name], NameKey(name), k)
	}
}

// Len returns len(k).
func (k Keyed[T]) Len() int { return len(k) }

// Keys returns the keys in traversal order.
func (k Keyed[T]) Keys() []string {
	return slices.Sorted(maps.Keys(k))
}

// Each is the traversal primitive: it calls fn(value, key, c) once for every
// element of c, in c's traversal order.
//
// A panic raised by fn propagates to the caller and aborts the traversal.
func Each[T any](c Enumerable[T], fn func(T, Key, Enumerable[T])) {
	if c == nil {
		return
	}
	c.Each(fn)
}
