// Package arr provides set and array algorithms over plain Go slices: zipping,
// deep flattening, intersection, difference, shuffling and key-based sorting.
//
//	rows, _ := arr.Zip([]any{"a", "b", "c"}, []any{1, 2})  // [[a 1] [b 2] [c <missing>]]
//	flat    := arr.Flatten([]any{1, []any{2, []int{3, 4}}}) // [1 2 3 4]
//	common, _ := arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4}) // [2 3]
//	rest    := arr.Difference([]int{1, 2, 3}, []int{2, 3})       // [1]
//
// Every function returns a new slice and leaves its inputs unmodified, with
// one exception: [Difference] without exclusion lists returns its first
// argument as is.
//
// # Randomness
//
// [Shuffle] takes a [random.Source] so tests can pin the permutation with
// [random.NewSeeded].
//
// # Sorting
//
// [SortBy] compares keys by subtraction. Keys are therefore limited to signed
// integer and floating-point types; anything else has to be mapped to a number
// by the key function.
package arr
