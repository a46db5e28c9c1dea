// SPDX-License-Identifier: MIT
// Package: misp/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Edges for every i<j, i ascending then j ascending.
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misp/graph"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		base := addNodes(b, n)

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := b.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodComplete, base+i, base+j, err)
				}
			}
		}

		return nil
	}
}
