package mst

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/disjointset"
)

// Kruskal computes the minimum spanning forest of an undirected graph on
// vertices 0..vertices-1 by scanning edges in Compare order and keeping
// every edge that joins two components.
//
// Error Conditions:
//   - ErrInvalidGraph : vertices < 0 or an endpoint outside [0, vertices).
//   - ErrDisconnected : only with WithRequireConnected, when the forest is not a tree.
//
// Steps:
//  1. Validate the input.
//  2. Sort a copy of the edges by Compare.
//  3. Union endpoints through a DisjointSet, keeping edges that merge two sets.
//  4. Stop early once a single component remains.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal[W cmp.Ordered, E core.Edge[W, E]](vertices int, edges []E, opts ...Option) ([]E, error) {
	o := newOptions(opts)
	// 1. Validate.
	if err := validate(MethodKruskal, vertices, edges); err != nil {
		return nil, err
	}

	// 2. Sort by the edge order; Compare is total so the result is deterministic.
	sorted := slices.Clone(edges)
	slices.SortFunc(sorted, func(a, b E) int { return a.Compare(b) })

	// 3. Scan and union.
	ds := disjointset.New(vertices)
	forest := make([]E, 0, max(vertices-1, 0))
	for _, e := range sorted {
		// 4. A single component cannot grow further.
		if ds.Distinct() == 1 {
			break
		}
		if ds.Union(e.From(), e.To()) {
			forest = append(forest, e)
		}
	}

	return finish(MethodKruskal, vertices, forest, o)
}
