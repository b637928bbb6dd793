// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i—i+1 for i=0..n-2.

package builder

import "fmt"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		base := g.grow(n)
		for i := 0; i+1 < n; i++ {
			g.add(base+i, base+i+1, cfg)
		}

		return nil
	}
}
