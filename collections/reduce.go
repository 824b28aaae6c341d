package collections

// Reduce folds c from left to right: acc = fn(acc, value) for every element,
// starting from initial[0].
//
// When initial is omitted the accumulator starts at the zero value of A
// (numeric zero for number types). The first element is never used as the
// seed; callers that need a non-zero seed, such as a boolean true, must pass
// it explicitly.
//
//	sum := collections.Reduce(collections.Sequence[int]{1, 2, 3},
//	    func(acc, n int) int { return acc + n }) // 6
func Reduce[T, A any](c Enumerable[T], fn func(A, T) A, initial ...A) A {
	var acc A
	if len(initial) > 0 {
		acc = initial[0]
	}
	Each(c, func(v T, _ Key, _ Enumerable[T]) {
		acc = fn(acc, v)
	})
	return acc
}
