// Package disjointset implements a union-find structure over the integers
// 0..n-1 with union by size and full path compression.
//
// A single []int holds the forest: a negative entry marks a root and stores
// the negated size of its set, a non-negative entry is the parent index.
//
// Complexity: New is O(n); Find and Union run in amortized O(α(n)).
package disjointset
