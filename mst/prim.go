package mst

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/pq"
)

// candidate is the lightest known edge reaching an outside vertex.
type candidate[E any] struct {
	vertex int
	edge   E
}

// Prim grows a minimum spanning tree from the root vertex (0 unless
// WithRoot says otherwise), keeping for every outside vertex its lightest
// connecting edge in a Fibonacci heap.
//
// On a disconnected graph Prim returns the tree of the root's component;
// WithRequireConnected turns that into ErrDisconnected.
//
// Error Conditions:
//   - ErrInvalidGraph     : vertices < 0 or an endpoint outside [0, vertices).
//   - ErrVertexOutOfRange : root outside [0, vertices) on a non-empty graph.
//   - ErrDisconnected     : only with WithRequireConnected.
//
// Steps:
//  1. Validate input and root; an empty graph yields an empty tree.
//  2. Build the adjacency and mark the root as reached.
//  3. Relax the edges of every reached vertex: insert a candidate for a new
//     outside vertex, decrease the key of a known one when lighter.
//  4. Pop the lightest candidate, take its edge, reach its vertex, repeat.
//
// Complexity: O(E + V log V). Memory: O(V + E).
func Prim[W cmp.Ordered, E core.Edge[W, E]](vertices int, edges []E, opts ...Option) ([]E, error) {
	o := newOptions(opts)
	// 1. Validate.
	if err := validate(MethodPrim, vertices, edges); err != nil {
		return nil, err
	}
	if vertices == 0 {
		return finish(MethodPrim, vertices, []E(nil), o)
	}
	if o.Root < 0 || o.Root >= vertices {
		return nil, fmt.Errorf("mst: %s: root %d with %d vertices: %w: %w",
			MethodPrim, o.Root, vertices, ErrInvalidGraph, core.ErrVertexOutOfRange)
	}

	// 2. Adjacency and bookkeeping.
	adj := core.NewAdjacency(vertices, slices.Values(edges))
	reached := bits.New(vertices)
	queued := bits.New(vertices)
	handle := make([]pq.Handle, vertices)
	heap := pq.NewFibonacciHeap(func(a, b candidate[E]) bool { return a.edge.Compare(b.edge) < 0 })
	forest := make([]E, 0, vertices-1)

	// 3. Relax every edge leaving v.
	relax := func(v int) error {
		for e := range adj.At(v).All() {
			u := e.To()
			if reached.Bit(u) == 1 {
				continue
			}
			if queued.Bit(u) == 0 {
				handle[u] = heap.Insert(candidate[E]{vertex: u, edge: e})
				queued.SetBit(u, 1)
				continue
			}
			cur, _ := heap.Value(handle[u])
			if e.Compare(cur.edge) < 0 {
				if err := heap.Decrease(handle[u], candidate[E]{vertex: u, edge: e}); err != nil {
					return err
				}
			}
		}

		return nil
	}

	reached.SetBit(o.Root, 1)
	if err := relax(o.Root); err != nil {
		return nil, fmt.Errorf("mst: %s: %w", MethodPrim, err)
	}

	// 4. Grow until no outside vertex is reachable.
	for !heap.Empty() {
		c, err := heap.Pop()
		if err != nil {
			return nil, fmt.Errorf("mst: %s: %w", MethodPrim, err)
		}
		reached.SetBit(c.vertex, 1)
		forest = append(forest, c.edge)
		if err = relax(c.vertex); err != nil {
			return nil, fmt.Errorf("mst: %s: %w", MethodPrim, err)
		}
	}

	return finish(MethodPrim, vertices, forest, o)
}
