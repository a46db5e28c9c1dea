// Package graph defines the immutable undirected Graph consumed by the
// independent-set heuristics, plus a Builder for assembling one edge by edge.
//
// What:
//
//   - Graph: N nodes with integer ids in [0,N) and one adjacency list per node.
//     Every edge {u,v} is recorded symmetrically (v in u's list, u in v's list).
//     Duplicate edges are kept as given; a self-loop u–u appears twice in u's list.
//   - Builder: mutable staging area (AddNode / AddEdge) that freezes into a Graph.
//   - Components: connected components by breadth-first search, for reporting.
//
// Why immutable:
//
//	A Graph is built once and then shared read-only by any number of heuristic
//	runs, including concurrent ones. Nothing in this package mutates a Graph
//	after Build/New returns, so no locks are needed on the read path.
//
// Complexity:
//
//   - New / Build:  O(N + E)
//   - Neighbors:    O(1) (returns a read-only view)
//   - HasEdge:      O(min(deg(u), deg(v)))
//   - Components:   O(N + E)
//
// Errors:
//
//   - ErrNegativeOrder    if N < 0.
//   - ErrNodeOutOfRange   if an edge endpoint is outside [0,N).
package graph
