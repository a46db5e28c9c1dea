// SPDX-License-Identifier: MIT
// Package: misp/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Row-major ids r*cols + c (relative).
//   - For each cell in row-major order: right edge first, then bottom edge.
//
// Complexity: O(R·C) nodes + O(2·R·C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misp/graph"
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base := addNodes(b, rows*cols)
		id := func(r, c int) int { return base + r*cols + c }

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				// Right neighbor (r, c+1).
				if c+1 < cols {
					if err := b.AddEdge(id(r, c), id(r, c+1)); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodGrid, id(r, c), id(r, c+1), err)
					}
				}
				// Bottom neighbor (r+1, c).
				if r+1 < rows {
					if err := b.AddEdge(id(r, c), id(r+1, c)); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodGrid, id(r, c), id(r+1, c), err)
					}
				}
			}
		}

		return nil
	}
}
