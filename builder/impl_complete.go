// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every pair i<j exactly once, i asc then j asc.
//
// Complexity: O(n²) edges.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		base := g.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.add(base+i, base+j, cfg)
			}
		}

		return nil
	}
}
