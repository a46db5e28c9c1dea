package options

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/misp/bench"
	"github.com/katalvlaran/misp/builder"
	"github.com/katalvlaran/misp/degree"
	"github.com/katalvlaran/misp/mis"
)

// SolveOptions are the flags of `misp solve`.
type SolveOptions struct {
	Algorithm  string
	Epsilon    float64
	K          int
	Seed       int64
	Policy     string
	Check      bool
	Exhaustive bool
	Quiet      bool
}

// NewSolveOptions returns greedy with full rescan and validation on.
func NewSolveOptions() *SolveOptions {
	return &SolveOptions{
		Algorithm: bench.AlgorithmGreedy,
		Epsilon:   0.9,
		K:         3,
		Policy:    degree.FullRescan.String(),
		Check:     true,
	}
}

// AddFlags binds o to fs.
func (o *SolveOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Algorithm, "algorithm", "a", o.Algorithm, "heuristic: greedy or randomized")
	fs.Float64Var(&o.Epsilon, "epsilon", o.Epsilon, "randomized: probability threshold of the greedy branch, in [0,1]")
	fs.IntVarP(&o.K, "k", "k", o.K, "randomized: candidate pool size")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "randomized: generator seed, 0 draws one from OS entropy")
	fs.StringVar(&o.Policy, "policy", o.Policy, "degree update policy: full-rescan or incremental")
	fs.BoolVar(&o.Check, "validate", o.Check, "check that the result is an independent set")
	fs.BoolVar(&o.Exhaustive, "exhaustive", o.Exhaustive, "report every violating pair when validating")
	fs.BoolVarP(&o.Quiet, "quiet", "q", o.Quiet, "print only the solution size")
}

// Validate returns every problem found in o.
func (o *SolveOptions) Validate() []error {
	var errs []error
	switch o.Algorithm {
	case bench.AlgorithmGreedy:
	case bench.AlgorithmRandomized:
		if o.K < 1 {
			errs = append(errs, fmt.Errorf("--k must be >= 1, got %d", o.K))
		}
		if math.IsNaN(o.Epsilon) || o.Epsilon < 0 || o.Epsilon > 1 {
			errs = append(errs, fmt.Errorf("--epsilon must be in [0,1], got %v", o.Epsilon))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown --algorithm %q", o.Algorithm))
	}
	if _, err := degree.ParsePolicy(o.Policy); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// MisOptions converts o to heuristic options. Call Validate first.
func (o *SolveOptions) MisOptions() []mis.Option {
	p, _ := degree.ParsePolicy(o.Policy)

	return []mis.Option{mis.WithSeed(o.Seed), mis.WithUpdatePolicy(p)}
}

// BenchOptions are the flags of `misp bench`.
type BenchOptions struct {
	// ConfigFile is a YAML bench config; flags set explicitly override it.
	ConfigFile string
	// WriteConfigTo writes the effective config and exits.
	WriteConfigTo string

	Config bench.Config
}

// NewBenchOptions returns options over bench.DefaultConfig.
func NewBenchOptions() *BenchOptions {
	return &BenchOptions{Config: bench.DefaultConfig()}
}

// AddFlags binds o to fs.
func (o *BenchOptions) AddFlags(fs *pflag.FlagSet) {
	c := &o.Config
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "path to a YAML bench config")
	fs.StringVar(&o.WriteConfigTo, "write-config-to", o.WriteConfigTo, "write the effective config to this path and exit")
	fs.StringVar(&c.ListFile, "list", c.ListFile, "file listing graph paths, one per line")
	fs.StringVar(&c.LogFile, "batch-log", c.LogFile, "batch log, default log_<list>.txt next to the list")
	fs.StringVarP(&c.Algorithm, "algorithm", "a", c.Algorithm, "heuristic: greedy or randomized")
	fs.Float64Var(&c.Epsilon, "epsilon", c.Epsilon, "randomized: probability threshold of the greedy branch")
	fs.IntVarP(&c.K, "k", "k", c.K, "randomized: candidate pool size")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "base seed, 0 seeds every run from OS entropy")
	fs.StringVar(&c.Policy, "policy", c.Policy, "degree update policy: full-rescan or incremental")
	fs.IntVar(&c.BatchSize, "batch-size", c.BatchSize, "files averaged per batch")
	fs.StringSliceVar(&c.Labels, "labels", c.Labels, "batch labels in order")
	fs.IntVar(&c.Repeat, "repeat", c.Repeat, "runs per file")
	fs.IntVar(&c.Workers, "workers", c.Workers, "files solved concurrently")
	fs.BoolVar(&c.CheckSolutions, "validate", c.CheckSolutions, "abort when a solution is not independent")
}

// Complete resolves the effective config: defaults, then the config file,
// then every flag the user changed on fs.
func (o *BenchOptions) Complete(fs *pflag.FlagSet) (bench.Config, error) {
	if o.ConfigFile == "" {
		return o.Config, nil
	}
	cfg, err := bench.LoadConfigFile(o.ConfigFile)
	if err != nil {
		return bench.Config{}, err
	}
	flags := o.Config
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "list":
			cfg.ListFile = flags.ListFile
		case "batch-log":
			cfg.LogFile = flags.LogFile
		case "algorithm":
			cfg.Algorithm = flags.Algorithm
		case "epsilon":
			cfg.Epsilon = flags.Epsilon
		case "k":
			cfg.K = flags.K
		case "seed":
			cfg.Seed = flags.Seed
		case "policy":
			cfg.Policy = flags.Policy
		case "batch-size":
			cfg.BatchSize = flags.BatchSize
		case "labels":
			cfg.Labels = flags.Labels
		case "repeat":
			cfg.Repeat = flags.Repeat
		case "workers":
			cfg.Workers = flags.Workers
		case "validate":
			cfg.CheckSolutions = flags.CheckSolutions
		}
	})

	return cfg, nil
}

// Generator names accepted by --type.
const (
	TypePath      = "path"
	TypeCycle     = "cycle"
	TypeStar      = "star"
	TypeWheel     = "wheel"
	TypeComplete  = "complete"
	TypeBipartite = "bipartite"
	TypeGrid      = "grid"
	TypeSparse    = "sparse"
	TypeRegular   = "regular"
)

// GenerateOptions are the flags of `misp generate`.
type GenerateOptions struct {
	Type string
	N    int
	M    int
	P    float64
	D    int
	Seed int64
	Out  string
}

// NewGenerateOptions returns a 100-node G(n, 0.1) written to stdout.
func NewGenerateOptions() *GenerateOptions {
	return &GenerateOptions{Type: TypeSparse, N: 100, M: 1, P: 0.1, D: 3, Seed: 1}
}

// AddFlags binds o to fs.
func (o *GenerateOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Type, "type", "t", o.Type,
		"path, cycle, star, wheel, complete, bipartite, grid, sparse or regular")
	fs.IntVarP(&o.N, "nodes", "n", o.N, "node count (rows for grid, left side for bipartite)")
	fs.IntVarP(&o.M, "m", "m", o.M, "columns for grid, right side for bipartite")
	fs.Float64VarP(&o.P, "probability", "p", o.P, "edge probability for sparse")
	fs.IntVarP(&o.D, "degree", "d", o.D, "degree for regular")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for sparse and regular")
	fs.StringVarP(&o.Out, "output", "o", o.Out, "output file, stdout when empty")
}

// Validate returns every problem found in o. Size limits are checked by
// the constructors themselves.
func (o *GenerateOptions) Validate() []error {
	if _, err := o.Constructor(); err != nil {
		return []error{err}
	}

	return nil
}

// ErrUnknownType indicates an unsupported --type.
var ErrUnknownType = errors.New("unknown graph type")

// Constructor maps o to a builder constructor.
func (o *GenerateOptions) Constructor() (builder.Constructor, error) {
	switch o.Type {
	case TypePath:
		return builder.Path(o.N), nil
	case TypeCycle:
		return builder.Cycle(o.N), nil
	case TypeStar:
		return builder.Star(o.N), nil
	case TypeWheel:
		return builder.Wheel(o.N), nil
	case TypeComplete:
		return builder.Complete(o.N), nil
	case TypeBipartite:
		return builder.CompleteBipartite(o.N, o.M), nil
	case TypeGrid:
		return builder.Grid(o.N, o.M), nil
	case TypeSparse:
		return builder.RandomSparse(o.N, o.P), nil
	case TypeRegular:
		return builder.RandomRegular(o.N, o.D), nil
	default:
		return nil, fmt.Errorf("--type %q: %w", o.Type, ErrUnknownType)
	}
}

// BuilderOptions returns the seeding option for o.
func (o *GenerateOptions) BuilderOptions() []builder.BuilderOption {
	return []builder.BuilderOption{builder.WithSeed(o.Seed)}
}
