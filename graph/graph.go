package graph

import "fmt"

// New builds a Graph with n nodes from the given edge list.
// Edges are inserted in slice order, so neighbor lists are deterministic.
//
// Errors: ErrNegativeOrder, ErrNodeOutOfRange (wrapped with the edge index).
// Complexity: O(n + len(edges)).
func New(n int, edges []Edge) (*Graph, error) {
	b, err := NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = b.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("graph: edge #%d: %w", i, err)
		}
	}

	return b.Build(), nil
}

// MustNew is New for fixtures and examples; it panics on error.
func MustNew(n int, edges []Edge) *Graph {
	g, err := New(n, edges)
	if err != nil {
		panic(err)
	}

	return g
}

// Order returns the number of nodes N. A nil Graph has order 0.
func (g *Graph) Order() int {
	if g == nil {
		return 0
	}

	return len(g.adj)
}

// Size returns the number of edges added, duplicates and loops included.
func (g *Graph) Size() int {
	if g == nil {
		return 0
	}

	return g.edges
}

// Neighbors returns the adjacency list of u in insertion order.
// The slice is shared with the Graph and must not be modified.
// The caller guarantees 0 <= u < Order().
func (g *Graph) Neighbors(u int) []int {
	nbs := g.adj[u]

	return nbs[:len(nbs):len(nbs)]
}

// Degree returns the length of u's adjacency list (loops count twice).
func (g *Graph) Degree(u int) int {
	return len(g.adj[u])
}

// Contains reports whether u is a valid node id.
func (g *Graph) Contains(u int) bool {
	return u >= 0 && u < g.Order()
}

// HasEdge reports whether u and v are adjacent. Out-of-range ids yield false.
// Complexity: O(min(deg(u), deg(v))).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.Contains(u) || !g.Contains(v) {
		return false
	}
	// Scan the shorter list.
	a, b := u, v
	if len(g.adj[a]) > len(g.adj[b]) {
		a, b = b, a
	}
	for _, w := range g.adj[a] {
		if w == b {
			return true
		}
	}

	return false
}

// Edges reconstructs the edge list with u <= v, ordered by u then by the
// position of v in u's adjacency list. Duplicates are preserved; each loop
// is reported once.
// Complexity: O(N + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.Size())
	var (
		u, v  int
		loops bool // every loop occupies two slots in adj[u]
	)
	for u = 0; u < g.Order(); u++ {
		loops = false
		for _, v = range g.adj[u] {
			switch {
			case v > u:
				out = append(out, Edge{U: u, V: v})
			case v == u:
				if loops {
					out = append(out, Edge{U: u, V: u})
				}
				loops = !loops
			}
		}
	}

	return out
}
