// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, extra).
//
// Canonical model:
//   - Random recursive tree: vertex i>0 attaches to a uniform vertex in [0, i).
//   - Then extra edges between uniform distinct endpoints; parallel edges
//     may occur.
//
// Contract:
//   - n ≥ 1 and extra ≥ 0 (else ErrTooFewVertices).
//   - extra > 0 needs n ≥ 2 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).

package builder

import "fmt"

// RandomConnected returns a Constructor that builds a connected random
// graph with n-1+extra edges.
func RandomConnected(n, extra int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinRandomNodes || extra < 0 || (extra > 0 && n < 2) {
			return fmt.Errorf("%s: n=%d, extra=%d: %w", MethodRandomConnected, n, extra, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomConnected, ErrNeedRandSource)
		}

		base := g.grow(n)
		// 1) Spanning tree.
		for i := 1; i < n; i++ {
			g.add(base+cfg.rng.Intn(i), base+i, cfg)
		}
		// 2) Extra edges, skipping self-loops.
		for k := 0; k < extra; {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			g.add(base+u, base+v, cfg)
			k++
		}

		return nil
	}
}
