// Package mst computes minimum spanning forests of undirected graphs on the
// vertices 0..V-1 with five algorithms that share one signature:
//
//	func(vertices int, edges []E, opts ...Option) ([]E, error)
//
// What & Why
//
//   - A minimum spanning forest (MSF) holds, for every connected component,
//     a spanning tree of minimum total weight. On a connected graph it is
//     the minimum spanning tree.
//   - Every algorithm orders edges with Compare, which breaks weight ties
//     deterministically. Under that total order the MSF is unique, so all
//     algorithms return the same edge set (in their own order).
//
// Algorithms Provided
//
//   - Kruskal: sort by Compare, scan with a disjoint set. O(E log E).
//   - Prim: grow one tree from the root with a Fibonacci heap. O(E + V log V).
//     Prim is the only algorithm that stays inside the root's component.
//   - Boruvka / BoruvkaStep: every vertex picks its lightest edge, the picks
//     are contracted, repeat. O(E log V).
//   - FredmanTarjan: passes of size-capped Prim trees followed by
//     contraction. O(E β(E, V)).
//   - PettieRamachandran: soft-heap partitions solved by precomputed optimal
//     decision trees, Fredman–Tarjan on the contracted rest and two Borůvka
//     rounds per level. Provably optimal; see package decision for the trees.
//
// Input Contract
//
//   - Endpoints must lie in [0, vertices); otherwise ErrInvalidGraph wraps
//     core.ErrVertexOutOfRange (or core.ErrNegativeVertices).
//   - Self-loops and parallel edges are allowed and never appear twice in a forest.
//   - The input slice is never modified.
//
// # Disconnected Graphs
//
// Kruskal, Boruvka, FredmanTarjan and PettieRamachandran return the spanning
// forest. Prim returns the tree of the root's component. WithRequireConnected
// makes every algorithm return ErrDisconnected when the result is not a
// spanning tree.
//
// # Choosing an Algorithm
//
// Lookup resolves the names in Methods to a Func for plain core.Weighted
// edges, and Compute dispatches on WithMethod for any edge type. Kruskal is
// the default and usually the fastest in practice; PettieRamachandran pays a
// one-off decision-tree build, best shared through a decision.Cache.
package mst
