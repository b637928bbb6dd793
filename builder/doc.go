// Package builder generates deterministic edge lists for tests, benchmarks
// and the command line. Vertices are the integers 0..V-1 and edges are
// core.Weighted[float64].
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        resolve options once, run constructors in order.
//     – Constructor:       appends one component to the graph under construction.
//   - Topologies (one per impl_*.go file):
//     – Cycle, Path, Star, Wheel, Complete, Grid.
//     – RandomSparse:      Erdős–Rényi G(n, p).
//     – RandomConnected:   random spanning tree plus extra random edges.
//   - Configuration primitives:
//     – BuilderOption:     mutates builderConfig before construction.
//     – WithSeed/WithRand: freeze stochastic constructors.
//     – WithDistinctWeights: relabel weights with a shuffled 1..E so every
//     minimum spanning forest is unique by weight alone.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
//     NormalWeightFn, ExponentialWeightFn.
//
// Composition:
//
// Every constructor appends its vertices after the ones already present, so
// BuildGraph(opts, Cycle(6), Path(3)) is the disjoint union of C_6 and P_3
// on vertices 0..8. This is the intended way to build disconnected fixtures.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give the same edges.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with
//     the constructor name.
package builder
