package graph

import "fmt"

// Builder accumulates nodes and edges and freezes them into a Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	adj   [][]int
	edges int
}

// NewBuilder returns a Builder pre-populated with n isolated nodes.
func NewBuilder(n int) (*Builder, error) {
	if n < 0 {
		return nil, fmt.Errorf("graph: n=%d: %w", n, ErrNegativeOrder)
	}

	return &Builder{adj: make([][]int, n)}, nil
}

// AddNode appends an isolated node and returns its id.
func (b *Builder) AddNode() int {
	b.adj = append(b.adj, nil)

	return len(b.adj) - 1
}

// Order returns the current node count.
func (b *Builder) Order() int { return len(b.adj) }

// AddEdge records the undirected edge {u,v}: v is appended to u's list and
// u to v's list. A loop (u == v) is appended twice to u's list.
func (b *Builder) AddEdge(u, v int) error {
	n := len(b.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("graph: edge (%d,%d) with N=%d: %w", u, v, n, ErrNodeOutOfRange)
	}
	b.adj[u] = append(b.adj[u], v)
	b.adj[v] = append(b.adj[v], u)
	b.edges++

	return nil
}

// Build freezes the current state into a Graph. The Builder may keep being
// used afterwards; later mutations do not affect the returned Graph.
func (b *Builder) Build() *Graph {
	adj := make([][]int, len(b.adj))
	for u, nbs := range b.adj {
		if len(nbs) == 0 {
			continue
		}
		adj[u] = append(make([]int, 0, len(nbs)), nbs...)
	}

	return &Graph{adj: adj, edges: b.edges}
}
