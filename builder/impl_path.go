// SPDX-License-Identifier: MIT
// Package: misp/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Nodes base..base+n-1; edges (i, i+1) in ascending i.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misp/graph"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		base := addNodes(b, n)

		// Chain consecutive nodes in ascending order.
		for i := 0; i+1 < n; i++ {
			if err := b.AddEdge(base+i, base+i+1); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodPath, base+i, base+i+1, err)
			}
		}

		return nil
	}
}
