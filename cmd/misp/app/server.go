package app

import (
	goflag "flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/misp/bench"
	"github.com/katalvlaran/misp/builder"
	"github.com/katalvlaran/misp/graph"
	"github.com/katalvlaran/misp/graphio"
	"github.com/katalvlaran/misp/mis"
	"github.com/katalvlaran/misp/validate"

	"github.com/katalvlaran/misp/cmd/misp/app/options"
)

// ComponentName is the binary name.
const ComponentName = "misp"

// NewMispCmd returns the root command with solve, bench and generate.
func NewMispCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   ComponentName,
		Short: "Heuristic maximum independent set solver",
		Long: `misp computes large independent sets of undirected graphs with a
minimum-degree greedy heuristic or its randomized top-k variant, checks the
result, and benchmarks either heuristic over lists of graph files.`,
		SilenceUsage: true,
	}

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(newSolveCmd(), newBenchCmd(), newGenerateCmd())

	return cmd
}

func newSolveCmd() *cobra.Command {
	opts := options.NewSolveOptions()
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Compute an independent set of one graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := opts.Validate(); len(errs) > 0 {
				return utilerrors.NewAggregate(errs)
			}
			return runSolve(cmd.OutOrStdout(), opts, args[0])
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

func runSolve(out io.Writer, opts *options.SolveOptions, path string) error {
	g, err := graphio.ReadFile(path)
	if err != nil {
		return err
	}
	if klogV := klog.V(2); klogV.Enabled() {
		klogV.InfoS("Loaded graph", "path", path, "nodes", g.Order(), "edges", g.Size(),
			"components", len(g.Components()))
	}

	start := time.Now()
	var sol mis.Solution
	if opts.Algorithm == bench.AlgorithmRandomized {
		sol, err = mis.Randomized(g, opts.Epsilon, opts.K, opts.MisOptions()...)
		if err != nil {
			return err
		}
	} else {
		sol = mis.Greedy(g, opts.MisOptions()...)
	}
	elapsed := time.Since(start)
	klog.V(1).InfoS("Solved", "algorithm", opts.Algorithm, "size", sol.Len(), "elapsed", elapsed)

	if opts.Check {
		if err := checkSolution(g, sol, opts.Exhaustive); err != nil {
			return err
		}
	}

	if opts.Quiet {
		_, err = fmt.Fprintln(out, sol.Len())
		return err
	}
	ids := make([]string, len(sol))
	for i, u := range sol {
		ids[i] = strconv.Itoa(u)
	}
	_, err = fmt.Fprintf(out, "size: %d\ntime: %.3f ms\nnodes: %s\n",
		sol.Len(), float64(elapsed.Microseconds())/1000, strings.Join(ids, " "))

	return err
}

func checkSolution(g *graph.Graph, sol mis.Solution, exhaustive bool) error {
	var vopts []validate.Option
	if exhaustive {
		vopts = append(vopts, validate.WithExhaustive())
	}
	ok, violations := validate.Validate(g, sol, vopts...)
	if ok {
		return nil
	}
	for _, v := range violations {
		klog.ErrorS(validate.ErrNotIndependent, "Violation", "pair", v.String())
	}

	return pkgerrors.Wrapf(validate.ErrNotIndependent, "%d violation(s), first %s", len(violations), violations[0])
}

func newBenchCmd() *cobra.Command {
	opts := options.NewBenchOptions()
	cmd := &cobra.Command{
		Use:   "bench [LIST_FILE]",
		Short: "Run a heuristic over a list of graph files and log batch averages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Complete(cmd.Flags())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.ListFile = args[0]
			}
			if opts.WriteConfigTo != "" {
				if err := bench.WriteConfigFile(opts.WriteConfigTo, cfg); err != nil {
					return err
				}
				klog.InfoS("Wrote bench configuration", "path", opts.WriteConfigTo)
				return nil
			}
			return runBench(cmd, cfg)
		},
	}
	opts.AddFlags(cmd.Flags())
	cmd.MarkFlagFilename("config", "yaml", "yml", "json")

	return cmd
}

func runBench(cmd *cobra.Command, cfg bench.Config) error {
	rep, err := bench.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, b := range rep.Batches {
		if _, err := fmt.Fprintln(out, b.Line()); err != nil {
			return err
		}
	}
	klog.InfoS("Benchmark finished", "files", len(rep.Results), "batches", len(rep.Batches),
		"leftover", rep.Leftover, "log", rep.LogFile)

	return nil
}

func newGenerateCmd() *cobra.Command {
	opts := options.NewGenerateOptions()
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph in the edge-list format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if errs := opts.Validate(); len(errs) > 0 {
				return utilerrors.NewAggregate(errs)
			}
			return runGenerate(cmd.OutOrStdout(), opts)
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

func runGenerate(out io.Writer, opts *options.GenerateOptions) error {
	ctor, err := opts.Constructor()
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph(opts.BuilderOptions(), ctor)
	if err != nil {
		return err
	}
	klog.V(1).InfoS("Generated graph", "type", opts.Type, "nodes", g.Order(), "edges", g.Size())

	if opts.Out == "" {
		return graphio.Write(out, g)
	}
	if err := graphio.WriteFile(opts.Out, g); err != nil {
		return err
	}
	klog.InfoS("Wrote graph", "path", opts.Out)

	return nil
}
