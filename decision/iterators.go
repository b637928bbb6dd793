package decision

import "iter"

// AscendingPairs yields every (i, j) with 0 <= i < j < n, ordered by j and
// then by i: (0,1), (0,2), (1,2), (0,3), ...
func AscendingPairs(n int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for j := 1; j < n; j++ {
			for i := 0; i < j; i++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}

// PairIndex is the position of the pair {i, j} in AscendingPairs order.
func PairIndex(i, j int) int {
	if i > j {
		i, j = j, i
	}

	return j*(j-1)/2 + i
}

// PowerSet yields every subset of items, as the subset of items whose bit
// is set in a counter running from 0 to 2^len(items)-1. Each yielded slice
// is fresh. items must hold fewer than 64 elements.
func PowerSet[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		total := uint64(1) << len(items)
		for mask := uint64(0); mask < total; mask++ {
			subset := make([]T, 0, len(items))
			for k, it := range items {
				if mask&(1<<k) != 0 {
					subset = append(subset, it)
				}
			}
			if !yield(subset) {
				return
			}
		}
	}
}

// Permutations yields all n! orderings of 0..n-1 using Heap's algorithm.
// The yielded slice is reused between iterations; copy it to keep it.
func Permutations(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p := make([]int, n)
		for i := range p {
			p[i] = i
		}
		if !yield(p) {
			return
		}
		c := make([]int, n)
		for i := 1; i < n; {
			if c[i] < i {
				if i%2 == 0 {
					p[0], p[i] = p[i], p[0]
				} else {
					p[c[i]], p[i] = p[i], p[c[i]]
				}
				if !yield(p) {
					return
				}
				c[i]++
				i = 1
			} else {
				c[i] = 0
				i++
			}
		}
	}
}
