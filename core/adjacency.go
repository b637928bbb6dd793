package core

import (
	"fmt"
	"iter"
)

// Adjacency keeps, for each vertex, the list of edges incident to it.
// An edge e is stored as e at e.From() and as e.Reversed() at e.To(), so
// every list entry starts at the vertex that owns the list. A self-loop is
// stored twice at its vertex.
type Adjacency[E Incident[E]] struct {
	lists []*List[E]
	edges int
}

// NewAdjacency builds the adjacency structure of a graph with the given
// vertex count. Endpoints must lie in [0, vertices); see CheckRange.
//
// Complexity: O(V + E).
func NewAdjacency[E Incident[E]](vertices int, edges iter.Seq[E]) *Adjacency[E] {
	a := &Adjacency[E]{lists: make([]*List[E], vertices)}
	for i := range a.lists {
		a.lists[i] = &List[E]{}
	}
	if edges != nil {
		for e := range edges {
			a.Add(e)
		}
	}

	return a
}

// Add inserts e at both endpoints.
func (a *Adjacency[E]) Add(e E) {
	a.lists[e.From()].Append(e)
	a.lists[e.To()].Append(e.Reversed())
	a.edges++
}

// Vertices returns the vertex count.
func (a *Adjacency[E]) Vertices() int { return len(a.lists) }

// Edges returns the number of undirected edges added.
func (a *Adjacency[E]) Edges() int { return a.edges }

// At returns the incidence list of v. Every edge in it has From() == v.
func (a *Adjacency[E]) At(v int) *List[E] { return a.lists[v] }

// Graph is an immutable-by-convention snapshot produced by a graph
// transformation.
type Graph[E any] struct {
	Vertices int
	Edges    *List[E]
}

// CheckRange validates a vertex count and that every endpoint lies in
// [0, vertices).
func CheckRange[E Incident[E]](vertices int, edges iter.Seq[E]) error {
	if vertices < 0 {
		return ErrNegativeVertices
	}
	for e := range edges {
		if e.From() < 0 || e.From() >= vertices || e.To() < 0 || e.To() >= vertices {
			return fmt.Errorf("core: edge %d-%d with %d vertices: %w", e.From(), e.To(), vertices, ErrVertexOutOfRange)
		}
	}

	return nil
}
