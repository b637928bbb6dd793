// Package spanforest computes minimum spanning forests of undirected,
// weighted graphs given as plain edge lists.
//
// What is inside?
//
//	Five interchangeable algorithms behind one signature:
//		• Prim             – Fibonacci-heap driven, grows one tree from a root
//		• Kruskal          – sort once, join with a disjoint set
//		• Borůvka          – lightest edge per vertex, contract, repeat
//		• Fredman–Tarjan   – size-capped Prim passes, O(E·β(E,V))
//		• Pettie–Ramachandran – soft-heap partitions solved by optimal
//		  decision trees, optimal up to a constant factor
//
// Packages:
//
//	core/        — edge interfaces, Weighted / Contracted / Renamed edges, List, Adjacency
//	graph/       — contraction, renaming, sorting, duplicate removal, lightest edges
//	disjointset/ — union-find with path compression and union by size
//	pq/          — Fibonacci heap and Chazelle's soft heap
//	decision/    — optimal MST decision trees for tiny graphs, build / cache / persist
//	dfs/         — traversal, components and cycle checks over an Adjacency
//	builder/     — deterministic and random graph generators
//	mst/         — the algorithms and their options
//	cmd/spanforest — CLI: run, precompute, generate
//
// Quick example:
//
//	edges := []core.Weighted[int]{
//		core.NewWeighted(0, 1, 5),
//		core.NewWeighted(1, 2, 2),
//		core.NewWeighted(0, 2, 4),
//	}
//	forest, err := mst.Kruskal[int](3, edges)
//	// forest = [1—2 (2), 0—2 (4)]
//
// Any edge type implementing core.Edge works, so callers can carry their
// own payloads through every algorithm.
//
//	go get github.com/katalvlaran/spanforest
package spanforest
