package mis

import (
	"github.com/katalvlaran/misp/degree"
	"github.com/katalvlaran/misp/graph"
)

// Greedy computes an independent set of g by repeatedly selecting the Active
// node of minimum current degree. Nodes are scanned in ascending id order and
// the first minimum wins, so ties go to the lowest id.
//
// Only WithUpdatePolicy and WithOnSelect affect Greedy; RNG options are
// ignored. A nil or empty graph yields an empty, non-nil Solution.
//
// Complexity: O(S·(N + E)) time with FullRescan, O(N) extra space.
func Greedy(g *graph.Graph, opts ...Option) Solution {
	o := resolve(opts)

	t, err := degree.New(g, degree.WithPolicy(o.Policy))
	if err != nil {
		// nil graph: nothing to select
		return Solution{}
	}
	sol := make(Solution, 0, estimateSize(g))

	var (
		u, d, best, bestDeg int
		ok                  bool
	)
	for t.ActiveCount() > 0 {
		// 1) Global minimum scan, lowest id on ties.
		best, bestDeg = -1, 0
		for u = 0; u < t.Order(); u++ {
			if d, ok = t.Degree(u); ok && (best < 0 || d < bestDeg) {
				best, bestDeg = u, d
			}
		}

		// 2) Record and propagate.
		sol = append(sol, best)
		if o.OnSelect != nil {
			o.OnSelect(best, bestDeg, len(sol)-1)
		}
		_ = t.SelectAndRemove(best) // best is Active by construction
	}

	return sol
}

// estimateSize is a capacity hint for the solution slice.
func estimateSize(g *graph.Graph) int {
	n := g.Order()
	if n <= 16 {
		return n
	}

	return n / 4
}
