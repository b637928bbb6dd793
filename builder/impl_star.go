// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The first appended vertex is the center; leaves follow in order.
//   • Emits spokes center—leaf by increasing leaf index.

package builder

import "fmt"

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		center := g.grow(n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			g.add(center, leaf, cfg)
		}

		return nil
	}
}
