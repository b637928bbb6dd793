// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends vertices base..base+n-1.
//   • Emits edges in stable order i—(i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		base := g.grow(n)
		for i := 0; i < n; i++ {
			g.add(base+i, base+(i+1)%n, cfg)
		}

		return nil
	}
}
