package mst

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/pq"
)

// FredmanTarjan computes the minimum spanning forest in passes. A pass
// grows Prim trees one after another, each with its own Fibonacci heap,
// and stops a tree once it spans 2^min(62, floor(2E/V)) vertices or once
// it reaches a vertex of an earlier tree. Every tree with an incident edge
// picks at least one. The trees are then contracted and the next pass runs
// on the contracted graph.
//
// Error Conditions:
//   - ErrInvalidGraph : vertices < 0 or an endpoint outside [0, vertices).
//   - ErrDisconnected : only with WithRequireConnected.
//
// Complexity: O(E β(E, V)). Memory: O(V + E).
func FredmanTarjan[W cmp.Ordered, E core.Edge[W, E]](vertices int, edges []E, opts ...Option) ([]E, error) {
	o := newOptions(opts)
	if err := validate(MethodFredmanTarjan, vertices, edges); err != nil {
		return nil, err
	}

	forest, err := fredmanTarjan(vertices, graph.Wrap[W](slices.Values(edges)))
	if err != nil {
		return nil, fmt.Errorf("mst: %s: %w", MethodFredmanTarjan, err)
	}

	return finish(MethodFredmanTarjan, vertices, forest, o)
}

// treeLimit returns the vertex cap 2^min(62, floor(2E/V)) of one tree.
func treeLimit(vertices, edges int) int {
	return 1 << min(62, 2*edges/vertices)
}

// fredmanTarjan runs passes until one tree spans everything or no edges
// remain, and returns the original edges of the forest.
func fredmanTarjan[W cmp.Ordered, E core.Edge[W, E]](vertices int, edges *core.List[core.Contracted[W, E]]) ([]E, error) {
	var forest []E
	for vertices >= 2 && edges.Len() > 0 {
		trees, picked, err := fredmanTarjanPass(vertices, edges)
		if err != nil {
			return nil, err
		}
		forest = append(forest, graph.Unwrap[W](picked.All())...)
		if trees == 1 {
			break
		}
		g := graph.Flatten[W, E](graph.Contract[W](vertices, picked.All(), edges.All()))
		vertices, edges = g.Vertices, g.Edges
	}

	return forest, nil
}

// fredmanTarjanPass grows the trees of one pass and returns how many were
// started together with the edges they picked.
func fredmanTarjanPass[W cmp.Ordered, E core.Edge[W, E]](vertices int, edges *core.List[core.Contracted[W, E]]) (int, *core.List[core.Contracted[W, E]], error) {
	limit := treeLimit(vertices, edges.Len())
	adj := core.NewAdjacency(vertices, edges.All())
	tree := make([]int, vertices) // tree id per vertex, -1 when unreached
	for v := range tree {
		tree[v] = -1
	}
	stamp := make([]int, vertices) // 1 + tree id that queued the vertex
	handle := make([]pq.Handle, vertices)
	picked := &core.List[core.Contracted[W, E]]{}
	less := func(a, b candidate[core.Contracted[W, E]]) bool { return a.edge.Compare(b.edge) < 0 }

	trees := 0
	for start := range vertices {
		if tree[start] != -1 {
			continue
		}
		id := trees
		trees++
		heap := pq.NewFibonacciHeap(less)

		relax := func(v int) error {
			for e := range adj.At(v).All() {
				u := e.To()
				if tree[u] == id {
					continue
				}
				if stamp[u] != id+1 {
					handle[u] = heap.Insert(candidate[core.Contracted[W, E]]{vertex: u, edge: e})
					stamp[u] = id + 1
					continue
				}
				cur, _ := heap.Value(handle[u])
				if e.Compare(cur.edge) < 0 {
					if err := heap.Decrease(handle[u], candidate[core.Contracted[W, E]]{vertex: u, edge: e}); err != nil {
						return err
					}
				}
			}

			return nil
		}

		tree[start] = id
		size := 1
		if err := relax(start); err != nil {
			return 0, nil, err
		}
		for !heap.Empty() {
			c, err := heap.Pop()
			if err != nil {
				return 0, nil, err
			}
			picked.Append(c.edge)
			// reaching an earlier tree links this one into it
			if tree[c.vertex] != -1 {
				break
			}
			tree[c.vertex] = id
			if size++; size >= limit {
				break
			}
			if err = relax(c.vertex); err != nil {
				return 0, nil, err
			}
		}
	}

	return trees, picked, nil
}
