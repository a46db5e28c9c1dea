package validate

import (
	"fmt"

	set "github.com/deckarep/golang-set"

	"github.com/katalvlaran/misp/graph"
)

// Validate reports whether sol is an independent set of g, together with the
// violations found (at most one unless WithExhaustive is given). An empty
// solution is always valid; a nil graph only accepts an empty solution.
func Validate(g *graph.Graph, sol []int, opts ...Option) (bool, []Violation) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(sol) == 0 {
		return true, nil
	}

	// 1) Presence set. The run is single-threaded, so skip the mutex.
	present := set.NewThreadUnsafeSet()
	for _, u := range sol {
		present.Add(u)
	}

	// 2) Scan in solution order.
	var violations []Violation
	for _, u := range sol {
		if !g.Contains(u) {
			violations = append(violations, Violation{Node: u, Neighbor: -1})
			if !o.Exhaustive {
				return false, violations
			}
			continue
		}
		for _, v := range g.Neighbors(u) {
			if !present.Contains(v) {
				continue
			}
			violations = append(violations, Violation{Node: u, Neighbor: v})
			if !o.Exhaustive {
				return false, violations
			}
		}
	}

	return len(violations) == 0, violations
}

// Independent returns nil when sol is independent in g. Otherwise it returns
// ErrNodeOutOfRange or ErrNotIndependent wrapped with the first violation.
func Independent(g *graph.Graph, sol []int) error {
	ok, violations := Validate(g, sol)
	if ok {
		return nil
	}
	v := violations[0]
	if v.Neighbor < 0 {
		return fmt.Errorf("validate: node %d not in [0,%d): %w", v.Node, g.Order(), ErrNodeOutOfRange)
	}

	return fmt.Errorf("validate: nodes %s adjacent: %w", v, ErrNotIndependent)
}
