// SPDX-License-Identifier: MIT
// Package: misp/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges (i, (i+1) mod n) for i ascending; the closing edge (n-1, 0) is last.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misp/graph"
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		base := addNodes(b, n)

		var u, v int
		for i := 0; i < n; i++ {
			u, v = base+i, base+(i+1)%n
			if err := b.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodCycle, u, v, err)
			}
		}

		return nil
	}
}
