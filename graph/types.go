package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNegativeOrder indicates a negative node count.
	ErrNegativeOrder = errors.New("graph: node count must be non-negative")

	// ErrNodeOutOfRange indicates a node id outside [0,N).
	ErrNodeOutOfRange = errors.New("graph: node id out of range")
)

// Edge is an undirected pair of node ids.
type Edge struct {
	U int
	V int
}

// Graph is an immutable undirected graph over nodes 0..N-1.
//
// adj[u] lists the neighbors of u in insertion order. Lists are never
// modified after construction; Neighbors hands out the backing slice
// capped to its length, so callers must treat it as read-only.
type Graph struct {
	adj   [][]int // node -> neighbors, insertion order
	edges int     // number of AddEdge calls, duplicates included
}
