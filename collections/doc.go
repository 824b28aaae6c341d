// Package collections provides the traversal and reduction primitives of the
// toolkit and the collection operations derived from them.
//
// # Ordered and keyed collections
//
// Two concrete types satisfy [Enumerable]:
//
//	seq := collections.Sequence[int]{3, 1, 2}            // keys are indexes 0, 1, 2
//	kv  := collections.Keyed[int]{"b": 2, "a": 1}        // keys are "a", "b"
//
// The variant is fixed by the type the caller builds, so a map is never
// mistaken for a sequence because of how its keys look.
//
// # Primitives
//
// [Each] visits every element once, passing (value, key, collection).
// [Reduce] folds a collection left to right on top of Each. Every other
// operation here is written in terms of these two:
//
//	evens := collections.Filter(seq, func(n int) bool { return n%2 == 0 })
//	sum   := collections.Reduce(kv, func(acc, n int) int { return acc + n })
//	all   := collections.Every(seq, func(n int) bool { return n > 0 })
//
// Reduce without a seed starts from the accumulator's zero value rather than
// the first element. This is intentional and relied on by callers.
//
// # Errors
//
// Edge cases have defined results instead of errors: [Every] on an empty
// collection is true, [Some] is false. Only [Invoke] can fail, with
// [ErrInvalidArgument]. Panics raised by caller-supplied functions are never
// recovered.
package collections
