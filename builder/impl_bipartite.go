// SPDX-License-Identifier: MIT
// Package: misp/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side relative ids 0..n1-1, right side n1..n1+n2-1.
//   - Edges left-major: for each left i asc, for each right j asc.
//
// Complexity: O(n1+n2) nodes + O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misp/graph"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *graph.Builder, _ builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
				MethodCompleteBipartite, MinPartition, n1, n2, ErrTooFewVertices)
		}
		left := addNodes(b, n1+n2)
		right := left + n1

		var i, j int
		for i = 0; i < n1; i++ {
			for j = 0; j < n2; j++ {
				if err := b.AddEdge(left+i, right+j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodCompleteBipartite, left+i, right+j, err)
				}
			}
		}

		return nil
	}
}
