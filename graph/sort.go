package graph

import (
	"iter"

	"github.com/katalvlaran/spanforest/core"
)

// SortEdges returns edges ordered lexicographically by (from, to), with
// every edge oriented so that from <= to. Two stable bucket passes over
// vertex ids make this O(V + E) instead of O(E log E).
func SortEdges[E core.Incident[E]](vertices int, edges iter.Seq[E]) *core.List[E] {
	// 1. Bucket by the larger endpoint after canonical orientation.
	byTo := make([]core.List[E], vertices)
	for e := range edges {
		if e.From() > e.To() {
			e = e.Reversed()
		}
		byTo[e.To()].Append(e)
	}

	// 2. Stable re-bucket by the smaller endpoint.
	byFrom := make([]core.List[E], vertices)
	for i := range byTo {
		for e := range byTo[i].All() {
			byFrom[e.From()].Append(e)
		}
	}

	// 3. Concatenate.
	out := &core.List[E]{}
	for i := range byFrom {
		out.Meld(&byFrom[i])
	}

	return out
}

// RemoveDuplicates keeps, for every unordered vertex pair, only the
// lightest edge by Compare and drops self-loops. The result is sorted by
// (from, to) with from < to.
//
// Complexity: O(V + E).
func RemoveDuplicates[E core.Ordered[E]](vertices int, edges iter.Seq[E]) *core.List[E] {
	out := &core.List[E]{}
	var (
		best E
		have bool
	)
	for e := range SortEdges(vertices, edges).All() {
		if e.From() == e.To() {
			continue
		}
		if have && best.From() == e.From() && best.To() == e.To() {
			if e.Compare(best) < 0 {
				best = e
			}
			continue
		}
		if have {
			out.Append(best)
		}
		best, have = e, true
	}
	if have {
		out.Append(best)
	}

	return out
}
