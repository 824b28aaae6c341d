package arr_test

import (
	"fmt"

	"github.com/arkadyp/underbar/arr"
	"github.com/arkadyp/underbar/random"
)

func ExampleZip() {
	rows, _ := arr.Zip([]any{"a", "b", "c"}, []any{1, 2})
	fmt.Println(rows)
	// Output: [[a 1] [b 2] [c <missing>]]
}

func ExampleFlatten() {
	fmt.Println(arr.Flatten([]any{1, []any{2, []any{3, []int{4, 5}}}}))
	// Output: [1 2 3 4 5]
}

func ExampleIntersection() {
	common, _ := arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4})
	fmt.Println(common)
	// Output: [2 3]
}

func ExampleDifference() {
	fmt.Println(arr.Difference([]int{1, 2, 3, 4}, []int{2}, []int{4}))
	// Output: [1 3]
}

func ExampleShuffle() {
	deck := []string{"a", "b", "c", "d"}
	shuffled := arr.Shuffle(deck, random.NewSeeded(1))
	fmt.Println(len(shuffled), deck)
	// Output: 4 [a b c d]
}

func ExampleSortBy() {
	words := []string{"banana", "kiwi", "apple"}
	fmt.Println(arr.SortBy(words, func(s string) int { return len(s) }))
	// Output: [kiwi apple banana]
}
