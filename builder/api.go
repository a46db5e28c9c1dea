// SPDX-License-Identifier: MIT
// Package: misp/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates an empty
//     graph.Builder, resolves cfg, runs cons in order, freezes the result.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misp/graph"
)

// Constructor appends nodes and edges to b using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before adding anything and return sentinel errors.
//   - Number their nodes from b.Order() upward (fresh nodes only).
//   - Emit edges in a stable, documented order.
type Constructor func(b *graph.Builder, cfg builderConfig) error

// BuildGraph creates a graph by applying all constructors in order to an
// empty graph.Builder. Any constructor error is wrapped as "BuildGraph: %w"
// and returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor + O(N + E) to freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	b, _ := graph.NewBuilder(0) // n=0 never fails
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}

// MustBuild is BuildGraph for tests and examples; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *graph.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// addNodes appends n isolated nodes and returns the id of the first one.
func addNodes(b *graph.Builder, n int) int {
	base := b.Order()
	for i := 0; i < n; i++ {
		b.AddNode()
	}

	return base
}
