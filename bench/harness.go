package bench

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/misp/degree"
	"github.com/katalvlaran/misp/graph"
	"github.com/katalvlaran/misp/graphio"
	"github.com/katalvlaran/misp/mis"
	"github.com/katalvlaran/misp/validate"
)

var (
	// ErrInvalidConfig wraps every Config.Validate failure.
	ErrInvalidConfig = errors.New("bench: invalid config")

	// ErrInvalidSolution indicates a heuristic returned a dependent set.
	ErrInvalidSolution = errors.New("bench: solution is not independent")
)

// Result is the outcome of one graph file, averaged over Repeat runs.
type Result struct {
	Path   string
	Nodes  int
	Edges  int
	Millis float64
	Size   float64
}

// Batch is the average of BatchSize consecutive results.
type Batch struct {
	Index   int
	Label   string
	Files   int
	TimeMed float64
	SizeMed float64
}

// Line renders b in the log file format.
func (b Batch) Line() string {
	return b.Label + " | Time MED: " + formatFloat(b.TimeMed) + " ms | Result MED: " + formatFloat(b.SizeMed)
}

// Report is everything a run produced.
type Report struct {
	Results []Result
	Batches []Batch
	// Leftover counts trailing files that did not fill a batch.
	Leftover int
	LogFile  string
}

// solveFunc runs one heuristic invocation.
type solveFunc func(g *graph.Graph, seed int64) (mis.Solution, error)

// Run executes the benchmark described by cfg.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errors.Wrap(ErrInvalidConfig, utilerrors.NewAggregate(errs).Error())
	}
	solve, err := newSolver(cfg)
	if err != nil {
		return nil, err
	}

	return run(ctx, cfg, solve)
}

// newSolver binds the configured heuristic and its parameters.
func newSolver(cfg Config) (solveFunc, error) {
	policy, err := degree.ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if cfg.Algorithm == AlgorithmGreedy {
		return func(g *graph.Graph, _ int64) (mis.Solution, error) {
			return mis.Greedy(g, mis.WithUpdatePolicy(policy)), nil
		}, nil
	}

	return func(g *graph.Graph, seed int64) (mis.Solution, error) {
		return mis.Randomized(g, cfg.Epsilon, cfg.K, mis.WithSeed(seed), mis.WithUpdatePolicy(policy))
	}, nil
}

func run(ctx context.Context, cfg Config, solve solveFunc) (*Report, error) {
	paths, err := ReadList(cfg.ListFile)
	if err != nil {
		return nil, err
	}
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = DefaultLogFile(cfg.ListFile)
	}
	klog.InfoS("Starting benchmark", "list", cfg.ListFile, "files", len(paths),
		"algorithm", cfg.Algorithm, "batchSize", cfg.BatchSize, "workers", cfg.Workers)

	results, err := runFiles(ctx, cfg, paths, solve)
	if err != nil {
		return nil, err
	}

	rep := &Report{Results: results, LogFile: logFile}
	for b := 0; (b+1)*cfg.BatchSize <= len(results); b++ {
		batch := summarize(b, label(cfg.Labels, b), results[b*cfg.BatchSize:(b+1)*cfg.BatchSize])
		klog.InfoS("Batch complete", "label", batch.Label, "files", batch.Files,
			"timeMedMs", batch.TimeMed, "resultMed", batch.SizeMed)
		if err := AppendLog(logFile, batch); err != nil {
			return nil, err
		}
		rep.Batches = append(rep.Batches, batch)
	}
	rep.Leftover = len(results) % cfg.BatchSize
	if rep.Leftover > 0 {
		klog.V(2).InfoS("Trailing files not averaged", "count", rep.Leftover)
	}

	return rep, nil
}

// runFiles solves every path on an ants pool and returns results in list
// order. The first failure cancels the remaining jobs.
func runFiles(ctx context.Context, cfg Config, paths []string, solve solveFunc) ([]Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool, err := ants.NewPool(cfg.Workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, errors.Wrap(err, "bench: create worker pool")
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
		results  = make([]Result, len(paths))
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := range paths {
		idx := i
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			res, err := runFile(cfg, idx, paths[idx], solve)
			if err != nil {
				fail(err)
				return
			}
			results[idx] = res
			klog.V(3).InfoS("Solved graph", "path", res.Path, "nodes", res.Nodes,
				"timeMs", res.Millis, "size", res.Size)
		})
		if err != nil {
			wg.Done()
			fail(errors.Wrap(err, "bench: submit job"))
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "bench: canceled")
	}

	return results, nil
}

// runFile loads one graph and solves it cfg.Repeat times.
func runFile(cfg Config, idx int, path string, solve solveFunc) (Result, error) {
	g, err := graphio.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	res := Result{Path: path, Nodes: g.Order(), Edges: g.Size()}

	var (
		seed    int64
		elapsed time.Duration
		total   time.Duration
		sizes   int
	)
	for r := 0; r < cfg.Repeat; r++ {
		if cfg.Seed != 0 {
			seed = mis.DeriveSeed(cfg.Seed, uint64(idx*cfg.Repeat+r))
		}
		start := time.Now()
		sol, err := solve(g, seed)
		elapsed = time.Since(start)
		if err != nil {
			return Result{}, errors.Wrapf(err, "bench: %s", path)
		}
		if cfg.CheckSolutions {
			if err := validate.Independent(g, sol); err != nil {
				return Result{}, errors.Wrapf(ErrInvalidSolution, "%s: %v", path, err)
			}
		}
		total += elapsed
		sizes += sol.Len()
	}
	res.Millis = float64(total.Microseconds()) / 1000 / float64(cfg.Repeat)
	res.Size = float64(sizes) / float64(cfg.Repeat)

	return res, nil
}

func summarize(idx int, lbl string, rs []Result) Batch {
	b := Batch{Index: idx, Label: lbl, Files: len(rs)}
	for _, r := range rs {
		b.TimeMed += r.Millis
		b.SizeMed += r.Size
	}
	b.TimeMed /= float64(len(rs))
	b.SizeMed /= float64(len(rs))

	return b
}

func label(labels []string, idx int) string {
	if idx < len(labels) {
		return labels[idx]
	}

	return strconv.Itoa(idx)
}

// formatFloat prints up to six significant digits without trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// ReadList returns the non-blank lines of the list file. Relative entries
// are resolved against the list file's directory.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "bench: open list %s", path)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(dir, line)
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "bench: read list %s", path)
	}

	return out, nil
}

// DefaultLogFile returns log_<base of listFile>.txt in the list's directory.
func DefaultLogFile(listFile string) string {
	return filepath.Join(filepath.Dir(listFile), "log_"+filepath.Base(listFile)+".txt")
}

// AppendLog appends b.Line() to path, creating the file if needed.
func AppendLog(path string, b Batch) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "bench: open log %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "bench: close log %s", path)
		}
	}()
	if _, err = f.WriteString(b.Line() + "\n"); err != nil {
		return errors.Wrapf(err, "bench: write log %s", path)
	}

	return nil
}
