// SPDX-License-Identifier: MIT
// Package: misp/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently
//     with probability p. No loops, no duplicate edges.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource); the edge
//     sets for p ∈ {0,1} are deterministic and need no RNG.
//
// Complexity: O(n) nodes + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: i asc, then j asc (j > i). Fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misp/graph"
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		// 1) Validate parameters early (zero side effects on invalid input).
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		stochastic := p > MinProbability && p < MaxProbability
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Nodes first, then trials in stable order.
		base := addNodes(b, n)
		if p == MinProbability {
			return nil
		}

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if stochastic && cfg.rng.Float64() >= p {
					continue
				}
				if err := b.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodRandomSparse, base+i, base+j, err)
				}
			}
		}

		return nil
	}
}
