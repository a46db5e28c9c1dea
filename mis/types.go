package mis

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/misp/degree"
)

var (
	// ErrInvalidParameter is the class of all rejected heuristic parameters.
	ErrInvalidParameter = errors.New("mis: invalid parameter")

	// ErrInvalidK indicates a candidate pool size k <= 0.
	ErrInvalidK = fmt.Errorf("%w: k must be >= 1", ErrInvalidParameter)

	// ErrInvalidEpsilon indicates an epsilon threshold outside [0,1].
	ErrInvalidEpsilon = fmt.Errorf("%w: epsilon must be in [0,1]", ErrInvalidParameter)
)

// Solution lists the selected node ids in selection order.
type Solution []int

// Len returns the number of selected nodes.
func (s Solution) Len() int { return len(s) }

// Contains reports whether u was selected. O(len(s)).
func (s Solution) Contains(u int) bool {
	for _, v := range s {
		if v == u {
			return true
		}
	}

	return false
}

// SelectFunc observes one selection: the chosen node, its degree at the
// moment of choice and the zero-based step index.
type SelectFunc func(node, degree, step int)

// Options configures a heuristic run.
type Options struct {
	// Seed seeds the private generator when Rand is nil. Zero means "draw a
	// seed from OS entropy".
	Seed int64

	// Rand, if non-nil, is used instead of a private generator.
	Rand *rand.Rand

	// Policy is the degree refresh strategy of the run's tracker.
	Policy degree.Policy

	// OnSelect, if non-nil, is called after each node is chosen and before
	// the tracker is updated.
	OnSelect SelectFunc
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns entropy seeding, FullRescan and no hook.
func DefaultOptions() Options {
	return Options{
		Seed:     0,
		Rand:     nil,
		Policy:   degree.FullRescan,
		OnSelect: nil,
	}
}

// WithSeed fixes the seed of the private generator for reproducible runs.
// Seed 0 keeps entropy seeding.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects a generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mis: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithUpdatePolicy selects the tracker policy.
func WithUpdatePolicy(p degree.Policy) Option {
	if p != degree.FullRescan && p != degree.Incremental {
		panic(fmt.Sprintf("mis: WithUpdatePolicy(%d): unknown policy", uint8(p)))
	}
	return func(o *Options) {
		o.Policy = p
	}
}

// WithOnSelect installs a selection observer. Panics on nil.
func WithOnSelect(fn SelectFunc) Option {
	if fn == nil {
		panic("mis: WithOnSelect(nil)")
	}
	return func(o *Options) {
		o.OnSelect = fn
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
