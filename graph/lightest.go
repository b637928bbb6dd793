package graph

import (
	"iter"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/spanforest/core"
)

// LightestEdgePerVertex selects, for every vertex with at least one
// non-loop incident edge, its minimum incident edge by Compare. An edge
// chosen by both endpoints is reported once. The selected edges always
// form a forest when Compare is a strict order on distinct edges.
//
// Complexity: O(V + E).
func LightestEdgePerVertex[E core.Ordered[E]](vertices int, edges iter.Seq[E]) *core.List[E] {
	best := make([]E, vertices)
	have := bits.New(vertices)

	offer := func(v int, e E) {
		if have.Bit(v) == 0 || e.Compare(best[v]) < 0 {
			best[v] = e
			have.SetBit(v, 1)
		}
	}
	for e := range edges {
		if e.From() == e.To() {
			continue
		}
		offer(e.From(), e)
		offer(e.To(), e.Reversed())
	}

	out := &core.List[E]{}
	for v := have.OneFrom(0); v >= 0; v = have.OneFrom(v + 1) {
		e := best[v]
		u := e.To()
		// the mutual choice is emitted by the smaller endpoint only
		if u < v && have.Bit(u) == 1 && best[u].Compare(e) == 0 && best[u].To() == v {
			continue
		}
		out.Append(e)
	}

	return out
}
