// Package graph provides the structural transformations shared by the
// spanning-forest algorithms: linear-time edge sorting, duplicate removal,
// lightest incident edges, contraction and vertex renaming.
//
// Every transformation returns fresh containers and never mutates its
// input. Functions that create wrapper edges need the weight type spelled
// out, e.g. graph.Contract[float64](...), because Go cannot infer it from
// method sets.
package graph
