// SPDX-License-Identifier: MIT
// Package: misp/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Hub is relative id 0; rim nodes 1..n-1 form a cycle C_{n-1}.
//   - Emission order: rim edges first (as Cycle), then spokes hub → rim.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misp/graph"
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		hub := addNodes(b, n)
		rim := n - 1

		var u, v int
		// 1) Rim cycle.
		for i := 0; i < rim; i++ {
			u, v = hub+1+i, hub+1+(i+1)%rim
			if err := b.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodWheel, u, v, err)
			}
		}
		// 2) Spokes.
		for i := 0; i < rim; i++ {
			v = hub + 1 + i
			if err := b.AddEdge(hub, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodWheel, hub, v, err)
			}
		}

		return nil
	}
}
