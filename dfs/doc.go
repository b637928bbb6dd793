// Package dfs implements depth-first traversal of an undirected
// core.Adjacency and the connectivity helpers built on it.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, with pre-/post-order hooks, cancellation via
//     context.Context, and forest mode (WithFullTraversal).
//   - Components / Labels: connected components, as vertex lists or as a
//     per-vertex component index.
//   - HasCycle: reports whether an undirected graph is not a forest.
//
// Why:
//   - Contraction needs the components of a partial spanning forest.
//   - Spanning-forest results are validated by checking acyclicity.
//
// Complexity:
//
//   - All operations: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             adjacency pointer is nil
//   - ErrStartVertexNotFound  start vertex outside [0, V)
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
