package dfs

import (
	"github.com/katalvlaran/spanforest/core"
)

// Components returns the vertex sets of the connected components of adj.
// Components appear in increasing order of their smallest vertex; vertices
// inside a component appear in discovery order. An isolated vertex forms
// its own component.
//
// Complexity: O(V + E).
func Components[E core.Incident[E]](adj *core.Adjacency[E]) [][]int {
	if adj == nil {
		return nil
	}
	discovered := make([]int, 0, adj.Vertices())
	res, _ := DFS(adj, 0, WithFullTraversal(), WithOnVisit(func(v int) error {
		discovered = append(discovered, v)

		return nil
	}))

	out := make([][]int, res.Trees)
	for _, v := range discovered {
		c := res.Component[v]
		out[c] = append(out[c], v)
	}

	return out
}

// Labels returns, for every vertex, the index of its component in the
// order Components would report them, plus the component count.
//
// Complexity: O(V + E).
func Labels[E core.Incident[E]](adj *core.Adjacency[E]) ([]int, int) {
	if adj == nil {
		return nil, 0
	}
	res, _ := DFS(adj, 0, WithFullTraversal())

	return res.Component, res.Trees
}

// HasCycle reports whether the undirected graph held by adj contains a
// cycle. Self-loops and parallel edges count as cycles.
//
// Complexity: O(V + E).
func HasCycle[E core.Incident[E]](adj *core.Adjacency[E]) bool {
	if adj == nil {
		return false
	}
	_, trees := Labels(adj)

	// a forest has exactly V - (number of trees) edges
	return adj.Edges() != adj.Vertices()-trees
}
