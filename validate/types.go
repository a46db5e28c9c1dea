package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrNotIndependent indicates two selected nodes are adjacent.
	ErrNotIndependent = errors.New("validate: solution is not independent")

	// ErrNodeOutOfRange indicates a selected id outside [0,N).
	ErrNodeOutOfRange = errors.New("validate: node id out of range")
)

// Violation is one adjacency found inside a solution. Neighbor is -1 when
// Node itself is not a node of the graph.
type Violation struct {
	Node     int
	Neighbor int
}

// String renders the violation as "u-v" or "u(out of range)".
func (v Violation) String() string {
	if v.Neighbor < 0 {
		return fmt.Sprintf("%d(out of range)", v.Node)
	}

	return fmt.Sprintf("%d-%d", v.Node, v.Neighbor)
}

// Options configures Validate.
type Options struct {
	// Exhaustive collects every violation instead of stopping at the first.
	Exhaustive bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions stops at the first violation.
func DefaultOptions() Options {
	return Options{Exhaustive: false}
}

// WithExhaustive requests every violating pair.
func WithExhaustive() Option {
	return func(o *Options) {
		o.Exhaustive = true
	}
}
