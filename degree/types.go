package degree

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Tracker operations.
var (
	// ErrNilGraph indicates that New was given a nil graph.
	ErrNilGraph = errors.New("degree: graph is nil")

	// ErrNodeOutOfRange indicates a node id outside [0,N).
	ErrNodeOutOfRange = errors.New("degree: node id out of range")

	// ErrNotActive indicates SelectAndRemove on a Blocked or Removed node.
	ErrNotActive = errors.New("degree: node is not active")
)

// Status is the lifecycle tag of a node within one run.
type Status uint8

const (
	// Active nodes are eligible for selection.
	Active Status = iota
	// Blocked nodes are adjacent to a selected node.
	Blocked
	// Removed nodes were selected.
	Removed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Blocked:
		return "blocked"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// State is the tagged per-node state. Degree is meaningful only when
// Status == Active and is zero otherwise.
type State struct {
	Status Status
	Degree int
}

// String renders the state as active(3), blocked or removed.
func (s State) String() string {
	if s.Status == Active {
		return fmt.Sprintf("active(%d)", s.Degree)
	}

	return s.Status.String()
}

// Policy selects how degrees are refreshed after a removal.
type Policy uint8

const (
	// FullRescan recomputes every Active degree after each removal (default).
	FullRescan Policy = iota
	// Incremental decrements only the neighbors of nodes that left Active.
	Incremental
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case FullRescan:
		return "full-rescan"
	case Incremental:
		return "incremental"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy maps "full-rescan" / "incremental" back to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "full-rescan", "full", "":
		return FullRescan, nil
	case "incremental":
		return Incremental, nil
	default:
		return FullRescan, fmt.Errorf("degree: unknown policy %q", s)
	}
}

// Option configures a Tracker.
type Option func(*Options)

// Options holds Tracker configuration.
type Options struct {
	// Policy is the degree refresh strategy. Default FullRescan.
	Policy Policy
}

// DefaultOptions returns Options{Policy: FullRescan}.
func DefaultOptions() Options {
	return Options{Policy: FullRescan}
}

// WithPolicy selects the update policy. Unknown values panic.
func WithPolicy(p Policy) Option {
	if p != FullRescan && p != Incremental {
		panic(fmt.Sprintf("degree: WithPolicy(%d): unknown policy", uint8(p)))
	}
	return func(o *Options) {
		o.Policy = p
	}
}
