package bench

import (
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/misp/degree"
)

const (
	// AlgorithmGreedy selects mis.Greedy.
	AlgorithmGreedy = "greedy"
	// AlgorithmRandomized selects mis.Randomized.
	AlgorithmRandomized = "randomized"

	// DefaultBatchSize is the number of files averaged per batch.
	DefaultBatchSize = 30
)

// DefaultLabels are the edge densities of the reference benchmark suite.
var DefaultLabels = []string{"0.1", "0.2", "0.3", "0.4", "0.5", "0.6", "0.7", "0.8", "0.9"}

// Config describes one benchmark run. Field names double as YAML keys.
type Config struct {
	// ListFile is the file listing graph paths, one per line.
	ListFile string `json:"listFile"`
	// LogFile receives one line per batch. Empty means log_<list file name>.txt
	// next to the list file.
	LogFile string `json:"logFile,omitempty"`

	Algorithm string  `json:"algorithm"`
	Epsilon   float64 `json:"epsilon"`
	K         int     `json:"k"`
	// Seed is the base seed; per-run seeds are derived from it. Zero means
	// entropy seeding for every run.
	Seed   int64  `json:"seed"`
	Policy string `json:"policy"`

	BatchSize int      `json:"batchSize"`
	Labels    []string `json:"labels,omitempty"`
	Repeat    int      `json:"repeat"`
	Workers   int      `json:"workers"`
	// CheckSolutions validates every solution and aborts on the first
	// dependent set.
	CheckSolutions bool `json:"validate"`
}

// DefaultConfig returns the reference settings: greedy, batches of 30
// labelled by density, one run per file, one worker.
func DefaultConfig() Config {
	return Config{
		Algorithm: AlgorithmGreedy,
		Epsilon:   0.9,
		K:         3,
		Policy:    degree.FullRescan.String(),
		BatchSize: DefaultBatchSize,
		Labels:    append([]string(nil), DefaultLabels...),
		Repeat:    1,
		Workers:   1,
	}
}

// Validate returns every problem found in c.
func (c *Config) Validate() []error {
	var errs []error
	if c.ListFile == "" {
		errs = append(errs, fmt.Errorf("list file is required"))
	}
	switch c.Algorithm {
	case AlgorithmGreedy:
	case AlgorithmRandomized:
		if c.K < 1 {
			errs = append(errs, fmt.Errorf("k must be >= 1, got %d", c.K))
		}
		if math.IsNaN(c.Epsilon) || c.Epsilon < 0 || c.Epsilon > 1 {
			errs = append(errs, fmt.Errorf("epsilon must be in [0,1], got %v", c.Epsilon))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown algorithm %q", c.Algorithm))
	}
	if _, err := degree.ParsePolicy(c.Policy); err != nil {
		errs = append(errs, err)
	}
	if c.BatchSize < 1 {
		errs = append(errs, fmt.Errorf("batch size must be >= 1, got %d", c.BatchSize))
	}
	if c.Repeat < 1 {
		errs = append(errs, fmt.Errorf("repeat must be >= 1, got %d", c.Repeat))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be >= 1, got %d", c.Workers))
	}

	return errs
}

// LoadConfigFile reads a YAML (or JSON) config. Keys absent from the file
// keep their DefaultConfig values.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "bench: read config %s", path)
	}

	return LoadConfig(data)
}

// LoadConfig decodes data over DefaultConfig. Unknown keys are rejected.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "bench: decode config")
	}

	return cfg, nil
}

// WriteConfigFile writes c to path as YAML.
func WriteConfigFile(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "bench: encode config")
	}

	return errors.Wrapf(os.WriteFile(path, data, 0o644), "bench: write config %s", path)
}
