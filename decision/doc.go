// Package decision precomputes, for every simple graph on a handful of
// vertices, a decision tree that finds its minimum spanning forest with the
// fewest possible edge comparisons, and answers MSF queries with it.
//
// A graph structure is the set of vertex pairs that carry an edge. For a
// structure with m edges every one of the m! weight orders is enumerated,
// the MSF of each order is computed, and a tree of pairwise edge
// comparisons of minimal depth is searched that separates orders with
// different forests. Leaves ("buckets") store the forest as a sorted list
// of edge slots.
//
// Edge slots: the pairs (i, j), i < j, are numbered in the order
// (0,1), (0,2), (1,2), (0,3), (1,3), (2,3), ...; slot k of a structure is
// its k-th present pair in that order.
//
// Building is super-exponential in the vertex count and meant to run once,
// ahead of time: Build honours context cancellation, Save and Load persist
// a collection, and Cache shares one build between concurrent callers.
package decision
