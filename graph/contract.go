package graph

import (
	"cmp"
	"iter"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/dfs"
)

// ComponentMapping labels every vertex with the connected component it
// belongs to in the forest spanned by span, and returns the component
// count. Components are numbered by their smallest vertex.
//
// Complexity: O(V + |span|).
func ComponentMapping[E core.Incident[E]](vertices int, span iter.Seq[E]) ([]int, int) {
	return dfs.Labels(core.NewAdjacency(vertices, span))
}

// Contract merges every component of span into a single super-vertex and
// re-attaches edges to super-vertices. Edges inside one component are
// dropped and parallel super-edges are reduced to the lightest. Each
// surviving edge remembers the edge it came from.
//
// Contract does not require span to be a subset of edges.
//
// Complexity: O(V + |span| + |edges|).
func Contract[W cmp.Ordered, E core.Edge[W, E]](vertices int, span, edges iter.Seq[E]) core.Graph[core.Contracted[W, E]] {
	// 1. Label components of the spanning edges.
	label, k := ComponentMapping(vertices, span)

	// 2. Re-attach inter-component edges.
	id := 0
	var mapped iter.Seq[core.Contracted[W, E]] = func(yield func(core.Contracted[W, E]) bool) {
		for e := range edges {
			u, v := label[e.From()], label[e.To()]
			if u == v {
				continue
			}
			if !yield(core.NewContracted[W](u, v, e, id)) {
				return
			}
			id++
		}
	}

	// 3. Keep the lightest edge between every pair of super-vertices.
	return core.Graph[core.Contracted[W, E]]{Vertices: k, Edges: RemoveDuplicates(k, mapped)}
}

// Flatten collapses a graph contracted twice into one whose edges point
// straight at the original edges. Identity and endpoints come from the
// inner and the outer wrapper respectively, so ordering is unchanged.
//
// Complexity: O(E).
func Flatten[W cmp.Ordered, E core.Edge[W, E]](g core.Graph[core.Contracted[W, core.Contracted[W, E]]]) core.Graph[core.Contracted[W, E]] {
	out := &core.List[core.Contracted[W, E]]{}
	for e := range g.Edges.All() {
		out.Append(core.NewContracted[W](e.From(), e.To(), e.Original.Original, e.Original.ID()))
	}

	return core.Graph[core.Contracted[W, E]]{Vertices: g.Vertices, Edges: out}
}

// RenameVertices renumbers the endpoints of edges into 0..k-1 in order of
// first appearance. It returns the renamed graph and, for every local
// vertex, the vertex it stands for.
//
// Complexity: O(E) expected.
func RenameVertices[W cmp.Ordered, E core.Edge[W, E]](edges iter.Seq[E]) (core.Graph[core.Renamed[W, E]], []int) {
	local := make(map[int]int)
	var global []int
	name := func(v int) int {
		if id, ok := local[v]; ok {
			return id
		}
		id := len(global)
		local[v] = id
		global = append(global, v)

		return id
	}

	out := &core.List[core.Renamed[W, E]]{}
	id := 0
	for e := range edges {
		u := name(e.From())
		v := name(e.To())
		out.Append(core.NewRenamed[W](u, v, e, id))
		id++
	}

	return core.Graph[core.Renamed[W, E]]{Vertices: len(global), Edges: out}, global
}

// Wrap lifts plain edges into contracted edges over the same vertex set,
// using each edge's position as its identity. Algorithms that recurse on
// contracted graphs start from Wrap so that one edge type serves every
// level.
func Wrap[W cmp.Ordered, E core.Edge[W, E]](edges iter.Seq[E]) *core.List[core.Contracted[W, E]] {
	out := &core.List[core.Contracted[W, E]]{}
	id := 0
	for e := range edges {
		out.Append(core.NewContracted[W](e.From(), e.To(), e, id))
		id++
	}

	return out
}
