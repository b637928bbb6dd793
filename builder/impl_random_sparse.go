// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable edge-trial order: i asc, then j asc.
//   - One Bernoulli draw per pair, then one weight draw per kept pair.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		// RNG is only required for true stochastic sampling.
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Sample pairs in a stable order.
		base := g.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					g.add(base+i, base+j, cfg)
				}
			}
		}

		return nil
	}
}
