package core

import (
	"cmp"
	"fmt"
)

// Incident is the structural part of an edge: two endpoints and the
// ability to swap them. Containers and traversals only need this much.
type Incident[E any] interface {
	From() int
	To() int
	Reversed() E
}

// Ordered is an Incident edge with a total order. Compare returns a
// negative number, zero or a positive number like cmp.Compare, and an
// edge and its reversal compare equal.
type Ordered[E any] interface {
	Incident[E]
	Compare(other E) int
}

// Edge is the capability every algorithm is written against. Compare must
// be consistent with Weight: a lighter edge always compares below a
// heavier one.
type Edge[W cmp.Ordered, E any] interface {
	Ordered[E]
	Weight() W
}

// Weighted is a plain undirected edge.
type Weighted[W cmp.Ordered] struct {
	from, to int
	weight   W
}

// NewWeighted returns the edge from—to with weight w.
func NewWeighted[W cmp.Ordered](from, to int, w W) Weighted[W] {
	return Weighted[W]{from: from, to: to, weight: w}
}

func (e Weighted[W]) From() int { return e.from }
func (e Weighted[W]) To() int { return e.to }
func (e Weighted[W]) Weight() W { return e.weight }
func (e Weighted[W]) Reversed() Weighted[W] { return Weighted[W]{from: e.to, to: e.from, weight: e.weight} }

// Compare orders by weight, then by the unordered endpoint pair, so the
// result does not depend on orientation.
func (e Weighted[W]) Compare(o Weighted[W]) int {
	if c := cmp.Compare(e.weight, o.weight); c != 0 {
		return c
	}
	a1, b1 := minmax(e.from, e.to)
	a2, b2 := minmax(o.from, o.to)
	if c := cmp.Compare(a1, a2); c != 0 {
		return c
	}

	return cmp.Compare(b1, b2)
}

// String renders the edge as "from to weight".
func (e Weighted[W]) String() string {
	return fmt.Sprintf("%d %d %v", e.from, e.to, e.weight)
}

// Contracted is an edge between super-vertices. Original is the edge it
// stands for; ordering and weight are forwarded to it.
type Contracted[W cmp.Ordered, E Edge[W, E]] struct {
	from, to int
	Original E
	id       int
}

// NewContracted wraps original as an edge from—to. id must be unique among
// the edges of one graph; it breaks ties between equal originals.
func NewContracted[W cmp.Ordered, E Edge[W, E]](from, to int, original E, id int) Contracted[W, E] {
	return Contracted[W, E]{from: from, to: to, Original: original, id: id}
}

func (e Contracted[W, E]) From() int { return e.from }
func (e Contracted[W, E]) To() int { return e.to }
func (e Contracted[W, E]) Weight() W { return e.Original.Weight() }

// ID is the orientation-independent identity of the edge.
func (e Contracted[W, E]) ID() int { return e.id }

func (e Contracted[W, E]) Reversed() Contracted[W, E] {
	return Contracted[W, E]{from: e.to, to: e.from, Original: e.Original, id: e.id}
}

func (e Contracted[W, E]) Compare(o Contracted[W, E]) int {
	if c := e.Original.Compare(o.Original); c != 0 {
		return c
	}

	return cmp.Compare(e.id, o.id)
}

// Renamed is an edge whose endpoints were renumbered into a dense range.
type Renamed[W cmp.Ordered, E Edge[W, E]] struct {
	from, to int
	Original E
	id       int
}

// NewRenamed wraps original as an edge from—to in a renumbered graph.
func NewRenamed[W cmp.Ordered, E Edge[W, E]](from, to int, original E, id int) Renamed[W, E] {
	return Renamed[W, E]{from: from, to: to, Original: original, id: id}
}

func (e Renamed[W, E]) From() int { return e.from }
func (e Renamed[W, E]) To() int { return e.to }
func (e Renamed[W, E]) Weight() W { return e.Original.Weight() }
func (e Renamed[W, E]) ID() int { return e.id }

func (e Renamed[W, E]) Reversed() Renamed[W, E] {
	return Renamed[W, E]{from: e.to, to: e.from, Original: e.Original, id: e.id}
}

func (e Renamed[W, E]) Compare(o Renamed[W, E]) int {
	if c := e.Original.Compare(o.Original); c != 0 {
		return c
	}

	return cmp.Compare(e.id, o.id)
}

// Indexed tags Edge with its position Index in some structure.
type Indexed[W cmp.Ordered, E Edge[W, E]] struct {
	Index int
	Edge  E
}

func (e Indexed[W, E]) From() int { return e.Edge.From() }
func (e Indexed[W, E]) To() int { return e.Edge.To() }
func (e Indexed[W, E]) Weight() W { return e.Edge.Weight() }

func (e Indexed[W, E]) Reversed() Indexed[W, E] {
	return Indexed[W, E]{Index: e.Index, Edge: e.Edge.Reversed()}
}

func (e Indexed[W, E]) Compare(o Indexed[W, E]) int {
	return e.Edge.Compare(o.Edge)
}

// Other returns the endpoint of e that is not v. For a self-loop it returns v.
func Other[E Incident[E]](e E, v int) int {
	if e.From() == v {
		return e.To()
	}

	return e.From()
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}

	return a, b
}
