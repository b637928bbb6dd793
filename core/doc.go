// Package core defines the edge capability shared by every spanning-forest
// algorithm, the concrete edge wrappers that the contraction machinery
// produces, and the two graph containers the algorithms operate on.
//
// Edges:
//
//   - Edge[W,E]      — the capability: endpoints, weight, reversal and a total order.
//   - Weighted[W]    — a plain edge {from, to, weight}.
//   - Contracted[W,E] — an edge re-attached to super-vertices; remembers its original.
//   - Renamed[W,E]   — an edge renumbered into a dense local vertex range.
//   - Indexed[W,E]   — an edge tagged with its position in a structure.
//
// Ordering is delegated: a wrapper compares by the edge it wraps, so an edge
// that has been contracted several times still sorts exactly like the input
// edge it came from. Contracted and Renamed break exact ties by an identity
// assigned at wrap time, which makes every wrapped edge set strictly ordered
// even when input weights repeat.
//
// Containers:
//
//   - List[E]      — doubly linked edge list with O(1) Append, Prepend and Meld.
//   - Adjacency[E] — one List per vertex; every edge is stored at both endpoints.
//   - Graph[E]     — a (vertex count, edge list) snapshot.
//
// Vertices are the integers 0..V-1. Containers are not safe for concurrent
// mutation; algorithms own their working copies.
package core
