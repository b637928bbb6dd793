// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor appends a fresh component; vertex ids never collide.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edge lists.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// Graph is an edge list over the vertices 0..Vertices-1.
type Graph struct {
	Vertices int
	Edges    []core.Weighted[float64]
}

// grow reserves n new vertices and returns the first of them.
func (g *Graph) grow(n int) int {
	base := g.Vertices
	g.Vertices += n

	return base
}

// add appends the edge u—v weighted by the configured generator.
func (g *Graph) add(u, v int, cfg builderConfig) {
	g.Edges = append(g.Edges, core.NewWeighted(u, v, cfg.weightFn(cfg.rng)))
}

// Constructor appends a deterministic component to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors (no panics).
//   - Allocate their vertices through g.grow so composed components stay disjoint.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors in order to an empty graph. Any constructor error is wrapped
// with the context "BuildGraph: %w" and returned immediately.
//
// With WithDistinctWeights the weights of the finished graph are replaced
// by a permutation of 1..E, shuffled with the configured RNG when present.
//
// Complexity: Σ cost of each constructor, plus O(E) for distinct weights.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := &Graph{}

	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.distinct {
		relabel(g, cfg)
	}

	return g, nil
}

// relabel gives every edge a distinct weight from 1..E.
func relabel(g *Graph, cfg builderConfig) {
	ranks := make([]int, len(g.Edges))
	for i := range ranks {
		ranks[i] = i + 1
	}
	if cfg.rng != nil {
		cfg.rng.Shuffle(len(ranks), func(i, j int) { ranks[i], ranks[j] = ranks[j], ranks[i] })
	}
	for i, e := range g.Edges {
		g.Edges[i] = core.NewWeighted(e.From(), e.To(), float64(ranks[i]))
	}
}

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
// Complexity: O(n).
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n ≥ 2).
// Complexity: O(n).
//func Path(n int) Constructor

// Star builds a star whose first vertex is the center (n ≥ 2).
// Complexity: O(n).
//func Star(n int) Constructor

// Wheel builds a wheel W_n = C_{n-1} plus a hub as its last vertex (n ≥ 4).
// Complexity: O(n).
//func Wheel(n int) Constructor

// Complete builds the complete simple graph K_n (n ≥ 1).
// Complexity: O(n²).
//func Complete(n int) Constructor

// Grid builds an R×C 4-neighborhood grid, vertex r*C+c at row r, column c.
// Complexity: O(R*C).
//func Grid(rows, cols int) Constructor

// RandomSparse builds an Erdős–Rényi graph G(n, p).
// Complexity: O(n²) Bernoulli trials.
//func RandomSparse(n int, p float64) Constructor

// RandomConnected builds a random spanning tree on n vertices plus extra
// random non-loop edges.
// Complexity: O(n + extra).
//func RandomConnected(n, extra int) Constructor
