package mis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/misp/degree"
	"github.com/katalvlaran/misp/graph"
)

// Randomized computes an independent set of g with a diversified greedy
// rule. Every step:
//
//  1. the k smallest-degree Active nodes are collected into a sorted pool
//     (ties: ascending id); fewer than k are used when fewer are Active;
//  2. an empty pool ends the run;
//  3. r is drawn uniformly from [0,1);
//  4. r > epsilon picks a pool member uniformly at random, otherwise the pool
//     head (minimum degree) is taken;
//  5. the chosen node is appended and removed with its neighbors.
//
// With epsilon == 1 the random branch is unreachable and the result equals
// Greedy(g) for every k.
//
// Errors: ErrInvalidK (k <= 0) and ErrInvalidEpsilon (epsilon outside [0,1]
// or NaN), both matching ErrInvalidParameter. Parameters are checked before
// any node is processed.
//
// Complexity: O(S·(N·min(k,N) + N + E)) time, O(N + k) extra space.
func Randomized(g *graph.Graph, epsilon float64, k int, opts ...Option) (Solution, error) {
	// 1) Validate parameters (fail fast, no side effects).
	if k <= 0 {
		return nil, fmt.Errorf("mis: Randomized(k=%d): %w", k, ErrInvalidK)
	}
	if math.IsNaN(epsilon) || epsilon < 0 || epsilon > 1 {
		return nil, fmt.Errorf("mis: Randomized(epsilon=%g): %w", epsilon, ErrInvalidEpsilon)
	}
	o := resolve(opts)

	t, err := degree.New(g, degree.WithPolicy(o.Policy))
	if err != nil {
		return Solution{}, nil
	}
	rng := runRNG(o)
	p := newPool(poolCapacity(k, t.Order()))
	sol := make(Solution, 0, estimateSize(g))

	var (
		r      float64
		idx    int
		chosen int
		d      int
	)
	for {
		// 2) Rebuild the candidate pool from scratch.
		p.fill(t)
		if p.n == 0 {
			break
		}

		// 3-4) Diversify or take the greedy head.
		r = rng.Float64()
		if r > epsilon {
			idx = rng.Intn(p.n)
		} else {
			idx = 0
		}
		chosen, d = p.nodes[idx], p.degs[idx]

		// 5) Record and propagate.
		sol = append(sol, chosen)
		if o.OnSelect != nil {
			o.OnSelect(chosen, d, len(sol)-1)
		}
		_ = t.SelectAndRemove(chosen)
	}

	return sol, nil
}
