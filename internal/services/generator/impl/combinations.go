package impl

import (
	"iter"
	"slices"
)

// Combinations yields every k-element combination of the indexes [0, n) in
// lexicographic order. The yielded slice is reused between iterations.
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k <= 0 || k > n {
			return
		}

		indexes := make([]int, k)
		for i := range indexes {
			indexes[i] = i
		}

		for {
			if !yield(indexes) {
				return
			}

			position := k - 1
			for position >= 0 && indexes[position] == n-k+position {
				position--
			}

			if position < 0 {
				return
			}

			indexes[position]++
			for i := position + 1; i < k; i++ {
				indexes[i] = indexes[i-1] + 1
			}
		}
	}
}

// CrossProduct yields one tuple per way of picking a single element from every
// choice list, advancing the last position fastest. The yielded slice is reused.
func CrossProduct(choices [][]string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		if len(choices) == 0 {
			return
		}

		for _, choice := range choices {
			if len(choice) == 0 {
				return
			}
		}

		choiceIndexes := make([]int, len(choices))
		tuple := make([]string, len(choices))

		for {
			for i, choiceIndex := range choiceIndexes {
				tuple[i] = choices[i][choiceIndex]
			}

			if !yield(tuple) {
				return
			}

			position := len(choices) - 1

			for position >= 0 {
				choiceIndexes[position]++

				if choiceIndexes[position] < len(choices[position]) {
					break
				}

				choiceIndexes[position] = 0
				position--
			}

			if position < 0 {
				return
			}
		}
	}
}

// Permutations yields all len(items)! orderings of items. Positions are permuted,
// not values, so equal items still produce every ordering. The yielded slice is reused.
func Permutations(items []string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		n := len(items)
		if n == 0 {
			return
		}

		order := make([]int, n)
		for i := range order {
			order[i] = i
		}

		permutation := make([]string, n)

		for {
			for i, itemIndex := range order {
				permutation[i] = items[itemIndex]
			}

			if !yield(permutation) {
				return
			}

			pivot := n - 2
			for pivot >= 0 && order[pivot] > order[pivot+1] {
				pivot--
			}

			if pivot < 0 {
				return
			}

			successor := n - 1
			for order[successor] < order[pivot] {
				successor--
			}

			order[pivot], order[successor] = order[successor], order[pivot]
			slices.Reverse(order[pivot+1:])
		}
	}
}
