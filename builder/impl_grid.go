// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex base + r*cols + c sits at row r, column c (row-major).
//   • For each cell in row-major order: right neighbour first, then down.
//
// Complexity: O(rows*cols).

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		base := g.grow(rows * cols)
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					g.add(at(r, c), at(r, c+1), cfg)
				}
				if r+1 < rows {
					g.add(at(r, c), at(r+1, c), cfg)
				}
			}
		}

		return nil
	}
}
