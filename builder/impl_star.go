// SPDX-License-Identifier: MIT
// Package: misp/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The center is the first node added (relative id 0); leaves follow.
//   - Spokes are emitted center → leaf in ascending leaf order.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misp/graph"
)

// Star returns a Constructor that builds a star with one center of degree
// n-1 and n-1 leaves of degree 1.
func Star(n int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		center := addNodes(b, n)

		for leaf := center + 1; leaf < center+n; leaf++ {
			if err := b.AddEdge(center, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodStar, center, leaf, err)
			}
		}

		return nil
	}
}
