package mis

import (
	"fmt"

	"github.com/katalvlaran/misp/degree"
)

// pool is a fixed-capacity buffer of the smallest-degree Active nodes,
// sorted by degree ascending. Insertion uses a strict "<", so among equal
// degrees the node offered first (the lowest id in an ascending scan) stays
// ahead. Slots beyond n are empty.
type pool struct {
	nodes []int
	degs  []int
	n     int // filled slots
}

func newPool(capacity int) *pool {
	return &pool{
		nodes: make([]int, capacity),
		degs:  make([]int, capacity),
	}
}

func (p *pool) reset() { p.n = 0 }

// offer inserts (node, deg) if it beats some filled slot or a free slot
// remains. The tail entry falls off when the pool is full.
// Complexity: O(capacity).
func (p *pool) offer(node, deg int) {
	capacity := len(p.nodes)
	j := 0
	for j < p.n && p.degs[j] <= deg {
		j++
	}
	if j >= capacity {
		return
	}
	last := p.n
	if last == capacity {
		last-- // drop the tail
	}
	for m := last; m > j; m-- {
		p.nodes[m] = p.nodes[m-1]
		p.degs[m] = p.degs[m-1]
	}
	p.nodes[j] = node
	p.degs[j] = deg
	if p.n < capacity {
		p.n++
	}
}

// fill rebuilds the pool from every Active node of t in ascending id order.
func (p *pool) fill(t *degree.Tracker) {
	p.reset()
	for u := 0; u < t.Order(); u++ {
		if d, ok := t.Degree(u); ok {
			p.offer(u, d)
		}
	}
}

// filled returns the occupied prefix of the pool.
func (p *pool) filled() []int { return p.nodes[:p.n] }

// poolCapacity bounds the buffer by the node count: a pool larger than N
// can never hold more than N nodes.
func poolCapacity(k, n int) int {
	if k > n {
		return n
	}

	return k
}

// Candidates returns the k smallest-degree Active nodes of t, ordered by
// degree ascending with ties broken by ascending id. Fewer than k nodes are
// returned when fewer are Active.
//
// Errors: ErrInvalidK for k <= 0.
func Candidates(t *degree.Tracker, k int) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("mis: Candidates(k=%d): %w", k, ErrInvalidK)
	}
	p := newPool(poolCapacity(k, t.Order()))
	p.fill(t)

	return append([]int(nil), p.filled()...), nil
}
