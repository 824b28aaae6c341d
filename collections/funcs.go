package collections

import (
	"fmt"
	"reflect"
)

// This file contains the operations derived from [Each] and [Reduce]. None of
// them walk a collection on their own; they all go through the primitives so
// that ordered and keyed collections behave identically.

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns, in traversal order, the values for which pred returns true.
func Filter[T any](c Enumerable[T], pred func(T) bool) Sequence[T] {
	out := make(Sequence[T], 0, lenOf(c))
	Each(c, func(v T, _ Key, _ Enumerable[T]) {
		if pred(v) {
			out = append(out, v)
		}
	})
	return out
}

// Reject is the complement of [Filter]: it keeps the values for which pred
// returns false.
func Reject[T any](c Enumerable[T], pred func(T) bool) Sequence[T] {
	return Filter(c, func(v T) bool { return !pred(v) })
}

// Uniq returns items with later duplicates removed, keeping first-occurrence
// order. Equality is Go's == operator.
func Uniq[T comparable](items []T) Sequence[T] {
	seen := make(map[T]struct{}, len(items))
	out := make(Sequence[T], 0, len(items))
	Sequence[T](items).Each(func(v T, _ Key, _ Enumerable[T]) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns fn(value, key, c) for every element, in traversal order.
// The result always has c.Len() elements.
func Map[T, R any](c Enumerable[T], fn func(T, Key, Enumerable[T]) R) Sequence[R] {
	out := make(Sequence[R], 0, lenOf(c))
	Each(c, func(v T, k Key, coll Enumerable[T]) {
		out = append(out, fn(v, k, coll))
	})
	return out
}

// Pluck returns item[key] for every map in items. Maps that lack key
// contribute the zero value of V. For struct fields use [Map].
//
//	ages := collections.Pluck(people, "age")
func Pluck[K comparable, V any](items []map[K]V, key K) Sequence[V] {
	return Map(Sequence[map[K]V](items), func(m map[K]V, _ Key, _ Enumerable[map[K]V]) V {
		return m[key]
	})
}

// PluckPath is [Pluck] for nested map[string]any values addressed with a
// dot-notation path such as "user.address.city". Missing paths yield nil.
func PluckPath(items []map[string]any, path string) Sequence[any] {
	return Map(Sequence[map[string]any](items), func(m map[string]any, _ Key, _ Enumerable[map[string]any]) any {
		v, _ := Get(m, path)
		return v
	})
}

// Invoke calls the exported method named method on every item, passing args,
// and returns the first result of each call (nil for methods without results).
//
// The method set is that of the item's dynamic type, so pointer-receiver
// methods are only found on pointer elements. An item without the method, a
// nil pointer whose method has a value receiver, or an argument list the
// method cannot accept yields [ErrInvalidArgument] and no partial result.
func Invoke[T any](items []T, method string, args ...any) (Sequence[any], error) {
	out := make(Sequence[any], 0, len(items))
	var err error
	Sequence[T](items).Each(func(item T, k Key, _ Enumerable[T]) {
		if err != nil {
			return
		}
		var res any
		res, err = callMethod(item, k, method, args)
		out = append(out, res)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InvokeFunc calls fn(item, args...) for every item and returns the results.
func InvokeFunc[T, R any](items []T, fn func(T, ...any) R, args ...any) Sequence[R] {
	return Map(Sequence[T](items), func(item T, _ Key, _ Enumerable[T]) R {
		return fn(item, args...)
	})
}

func callMethod(item any, k Key, method string, args []any) (any, error) {
	rv := reflect.ValueOf(item)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: element %s is nil", ErrInvalidArgument, k)
	}
	m := rv.MethodByName(method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: element %s (%T) has no method %q", ErrInvalidArgument, k, item, method)
	}
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		// Value-receiver methods would dereference the nil pointer.
		if _, ok := rv.Type().Elem().MethodByName(method); ok {
			return nil, fmt.Errorf("%w: element %s is a nil %T", ErrInvalidArgument, k, item)
		}
	}
	in, err := methodArgs(m.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("%w: element %s (%T).%s: %v", ErrInvalidArgument, k, item, method, err)
	}
	res := m.Call(in)
	if len(res) == 0 {
		return nil, nil
	}
	return res[0].Interface(), nil
}

func methodArgs(mt reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("want at least %d arguments, got %d", fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("want %d arguments, got %d", fixed, len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		want := mt.In(min(i, mt.NumIn()-1))
		if i >= fixed {
			want = want.Elem()
		}
		if a == nil {
			switch want.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
				in[i] = reflect.Zero(want)
				continue
			}
			return nil, fmt.Errorf("argument %d: nil is not a %s", i, want)
		}
		v := reflect.ValueOf(a)
		if !v.Type().AssignableTo(want) {
			return nil, fmt.Errorf("argument %d: %s is not assignable to %s", i, v.Type(), want)
		}
		in[i] = v
	}
	return in, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether any element of c equals target.
func Contains[T comparable](c Enumerable[T], target T) bool {
	return Reduce(c, func(found bool, v T) bool {
		if found {
			return true
		}
		return v == target
	}, false)
}

// IndexOf returns the index of the first element equal to target, or -1.
func IndexOf[T comparable](items []T, target T) int {
	idx := -1
	Sequence[T](items).Each(func(v T, k Key, _ Enumerable[T]) {
		if idx == -1 && v == target {
			idx = k.Index()
		}
	})
	return idx
}

// Every reports whether no element of c fails pred. Without a predicate each
// value is tested with [Truthy]. An empty collection satisfies Every.
func Every[T any](c Enumerable[T], pred ...func(T) bool) bool {
	test := predicate(pred)
	return Reduce(c, func(all bool, v T) bool {
		if !all {
			return false
		}
		return test(v)
	}, true)
}

// Some reports whether at least one element of c passes pred, defaulting to
// [Truthy]. It is defined as the negation of [Every] over the negated
// predicate, so an empty collection never satisfies Some.
func Some[T any](c Enumerable[T], pred ...func(T) bool) bool {
	test := predicate(pred)
	return !Every(c, func(v T) bool { return !test(v) })
}

// Truthy reports whether v is anything other than its type's zero value.
// A nil interface is not truthy.
func Truthy[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	return rv.IsValid() && !rv.IsZero()
}

func predicate[T any](pred []func(T) bool) func(T) bool {
	if len(pred) > 0 && pred[0] != nil {
		return pred[0]
	}
	return Truthy[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element. The boolean is false for an empty slice.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a copy of the first n elements, or all of them when n
// exceeds the length.
func FirstN[T any](items []T, n int) Sequence[T] {
	n = max(0, min(n, len(items)))
	out := make(Sequence[T], n)
	copy(out, items[:n])
	return out
}

// Last returns the last element. The boolean is false for an empty slice.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a copy of the last n elements, or all of them when n exceeds
// the length.
func LastN[T any](items []T, n int) Sequence[T] {
	n = max(0, min(n, len(items)))
	out := make(Sequence[T], n)
	copy(out, items[len(items)-n:])
	return out
}

func lenOf[T any](c Enumerable[T]) int {
	if c == nil {
		return 0
	}
	return c.Len()
}
