package mst

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/graph"
)

// BoruvkaStep runs one Borůvka round: every vertex picks its lightest
// incident edge, the picked edges join the forest and their components are
// contracted. It returns the contracted graph, whose edges wrap the input
// edges, and the picked edges.
//
// Complexity: O(V + E).
func BoruvkaStep[W cmp.Ordered, E core.Edge[W, E]](vertices int, edges []E) (core.Graph[core.Contracted[W, E]], []E, error) {
	if err := validate(MethodBoruvka, vertices, edges); err != nil {
		return core.Graph[core.Contracted[W, E]]{}, nil, err
	}
	next, picked := boruvkaStep(core.Graph[core.Contracted[W, E]]{
		Vertices: vertices,
		Edges:    graph.Wrap[W](slices.Values(edges)),
	})

	return next, picked, nil
}

// Boruvka computes the minimum spanning forest by repeating BoruvkaStep
// until fewer than two vertices or no edges remain. Every round at least
// halves the number of non-isolated vertices.
//
// Error Conditions:
//   - ErrInvalidGraph : vertices < 0 or an endpoint outside [0, vertices).
//   - ErrDisconnected : only with WithRequireConnected.
//
// Complexity: O(E log V). Memory: O(V + E).
func Boruvka[W cmp.Ordered, E core.Edge[W, E]](vertices int, edges []E, opts ...Option) ([]E, error) {
	o := newOptions(opts)
	if err := validate(MethodBoruvka, vertices, edges); err != nil {
		return nil, err
	}

	g := core.Graph[core.Contracted[W, E]]{Vertices: vertices, Edges: graph.Wrap[W](slices.Values(edges))}
	forest := make([]E, 0, max(vertices-1, 0))
	for g.Vertices >= 2 && g.Edges.Len() > 0 {
		var picked []E
		g, picked = boruvkaStep(g)
		forest = append(forest, picked...)
	}

	return finish(MethodBoruvka, vertices, forest, o)
}

// boruvkaStep is one round on a graph whose edges already carry ids.
func boruvkaStep[W cmp.Ordered, E core.Edge[W, E]](g core.Graph[core.Contracted[W, E]]) (core.Graph[core.Contracted[W, E]], []E) {
	picked := graph.LightestEdgePerVertex(g.Vertices, g.Edges.All())
	next := graph.Flatten[W, E](graph.Contract[W](g.Vertices, picked.All(), g.Edges.All()))

	return next, graph.Unwrap[W](picked.All())
}
