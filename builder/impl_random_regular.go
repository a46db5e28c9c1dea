// SPDX-License-Identifier: MIT
// Package: misp/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • Simple d-regular graph via stub matching with bounded reshuffles. A
//     pairing is validated (no loops, no duplicate pairs) before any edge is
//     added; an invalid pairing triggers another shuffle.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng required (else ErrNeedRandSource).
//   • ErrConstructFailed after maxStubMatchingAttempts invalid pairings.
//
// Complexity:
//   • ~O(n·d) per attempt; attempts are constant-bounded.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misp/graph"
)

// RandomRegular returns a Constructor that builds a random d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		// 1) Parameter validation: n≥1, 0≤d<n, parity.
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomRegular, n, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		// 2) Stubs: node i repeated d times, i ascending.
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		// 3) Shuffle until the pairing is simple, then apply it.
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}

			base := addNodes(b, n)
			for i := 0; i < len(stubs); i += 2 {
				u, v := base+stubs[i], base+stubs[i+1]
				if err := b.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodRandomRegular, u, v, err)
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs contain no loop and
// no repeated unordered pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
