package graph

import (
	"cmp"
	"iter"

	"github.com/katalvlaran/spanforest/core"
)

// Number is the set of weight types that can be summed.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns the total weight of edges.
func Sum[W Number](edges []core.Weighted[W]) W {
	var total W
	for _, e := range edges {
		total += e.Weight()
	}

	return total
}

// Unwrap returns the original edge of every contracted edge in seq.
func Unwrap[W cmp.Ordered, E core.Edge[W, E]](seq iter.Seq[core.Contracted[W, E]]) []E {
	var out []E
	for e := range seq {
		out = append(out, e.Original)
	}

	return out
}
