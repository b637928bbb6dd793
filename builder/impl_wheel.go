// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim C_{n-1} on the first n-1 appended vertices, hub last.
//   • Emits the rim edges first, then spokes hub—rim by increasing rim index.

package builder

import "fmt"

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ plus a hub.
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		// Rim first, reusing Cycle on the same (g, cfg).
		base := g.Vertices
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}
		hub := g.grow(1)
		for i := 0; i < n-1; i++ {
			g.add(hub, base+i, cfg)
		}

		return nil
	}
}
