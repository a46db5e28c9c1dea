package degree

import (
	"fmt"

	"github.com/katalvlaran/misp/graph"
)

// Tracker holds the mutable per-node state of one heuristic run.
type Tracker struct {
	g      *graph.Graph
	policy Policy

	status []Status // node -> lifecycle tag
	deg    []int    // node -> current degree; 0 unless Active
	active int      // number of Active nodes

	// left is scratch space for the Incremental policy: nodes that left
	// Active during the current SelectAndRemove.
	left []int
}

// New returns a Tracker in which every node of g is Active with degree
// equal to the length of its adjacency list.
//
// Complexity: O(N).
func New(g *graph.Graph, opts ...Option) (*Tracker, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	t := &Tracker{
		g:      g,
		policy: o.Policy,
		status: make([]Status, n), // zero value is Active
		deg:    make([]int, n),
		active: n,
	}
	for u := 0; u < n; u++ {
		t.deg[u] = g.Degree(u)
	}

	return t, nil
}

// Order returns the number of tracked nodes.
func (t *Tracker) Order() int { return len(t.status) }

// Policy returns the update policy in effect.
func (t *Tracker) Policy() Policy { return t.policy }

// ActiveCount returns how many nodes are still Active.
func (t *Tracker) ActiveCount() int { return t.active }

// Active reports whether u is Active. The caller guarantees u is in range.
func (t *Tracker) Active(u int) bool { return t.status[u] == Active }

// Degree returns u's current degree and whether u is Active.
// For Blocked or Removed nodes it returns (0, false).
func (t *Tracker) Degree(u int) (int, bool) {
	if t.status[u] != Active {
		return 0, false
	}

	return t.deg[u], true
}

// State returns the tagged state of u.
func (t *Tracker) State(u int) State {
	return State{Status: t.status[u], Degree: t.deg[u]}
}

// Snapshot copies the state of every node, indexed by node id.
func (t *Tracker) Snapshot() []State {
	out := make([]State, len(t.status))
	for u := range t.status {
		out[u] = t.State(u)
	}

	return out
}

// SelectAndRemove moves u to Removed, blocks its Active neighbors and
// refreshes the remaining Active degrees according to the policy.
//
// Errors: ErrNodeOutOfRange, ErrNotActive. On error nothing changes.
//
// Complexity: FullRescan O(N + E); Incremental O(Σ deg over nodes that
// left Active in this step).
func (t *Tracker) SelectAndRemove(u int) error {
	if u < 0 || u >= len(t.status) {
		return fmt.Errorf("degree: SelectAndRemove(%d) with N=%d: %w", u, len(t.status), ErrNodeOutOfRange)
	}
	if t.status[u] != Active {
		return fmt.Errorf("degree: SelectAndRemove(%d) in state %s: %w", u, t.status[u], ErrNotActive)
	}

	// 1) The chosen node leaves the pool.
	t.status[u] = Removed
	t.deg[u] = 0
	t.active--
	t.left = append(t.left[:0], u)

	// 2) Block Active neighbors; Blocked/Removed ones stay as they are.
	for _, v := range t.g.Neighbors(u) {
		if t.status[v] != Active {
			continue
		}
		t.status[v] = Blocked
		t.deg[v] = 0
		t.active--
		t.left = append(t.left, v)
	}

	// 3) Refresh degrees.
	if t.policy == Incremental {
		t.decrementNeighbors()
	} else {
		t.rescan()
	}

	return nil
}

// rescan discounts, for every Active node, all of its neighbors that are no
// longer Active. The discount stacks on top of earlier rescans.
func (t *Tracker) rescan() {
	var dec int
	for i := range t.status {
		if t.status[i] != Active {
			continue
		}
		dec = 0
		for _, v := range t.g.Neighbors(i) {
			if t.status[v] != Active {
				dec++
			}
		}
		t.deg[i] -= dec
		if t.deg[i] < 0 {
			t.deg[i] = 0
		}
	}
}

// decrementNeighbors charges one unit per adjacency entry to every Active
// neighbor of the nodes collected in t.left.
func (t *Tracker) decrementNeighbors() {
	for _, x := range t.left {
		for _, v := range t.g.Neighbors(x) {
			if t.status[v] == Active && t.deg[v] > 0 {
				t.deg[v]--
			}
		}
	}
}
