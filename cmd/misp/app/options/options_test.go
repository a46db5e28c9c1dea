package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misp/bench"
	"github.com/katalvlaran/misp/builder"
)

func TestSolveOptions_Validate(t *testing.T) {
	o := NewSolveOptions()
	assert.Empty(t, o.Validate())

	o.Algorithm = "randomized"
	o.K = 0
	o.Epsilon = -1
	o.Policy = "lazy"
	assert.Len(t, o.Validate(), 3)

	o = NewSolveOptions()
	o.Algorithm = "exact"
	assert.Len(t, o.Validate(), 1)
}

func TestBenchOptions_Complete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listFile: a.txt\nworkers: 4\nrepeat: 2\n"), 0o644))

	o := NewBenchOptions()
	fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
	o.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", path, "--repeat", "5", "--labels", "x,y"}))

	cfg, err := o.Complete(fs)
	require.NoError(t, err)

	want := bench.DefaultConfig()
	want.ListFile = "a.txt"
	want.Workers = 4
	want.Repeat = 5
	want.Labels = []string{"x", "y"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("effective config (-want +got):\n%s", diff)
	}
}

func TestBenchOptions_NoFile(t *testing.T) {
	o := NewBenchOptions()
	fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
	o.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--list", "l.txt", "-a", "randomized"}))

	cfg, err := o.Complete(fs)
	require.NoError(t, err)
	assert.Equal(t, "l.txt", cfg.ListFile)
	assert.Equal(t, bench.AlgorithmRandomized, cfg.Algorithm)
}

func TestGenerateOptions_Constructor(t *testing.T) {
	for _, typ := range []string{TypePath, TypeCycle, TypeStar, TypeWheel, TypeComplete,
		TypeBipartite, TypeGrid, TypeSparse, TypeRegular} {
		o := NewGenerateOptions()
		o.Type = typ
		o.N = 8
		o.M = 2
		o.D = 2
		ctor, err := o.Constructor()
		require.NoError(t, err, typ)

		_, err = builder.BuildGraph(o.BuilderOptions(), ctor)
		assert.NoError(t, err, typ)
	}

	o := NewGenerateOptions()
	o.Type = "torus"
	assert.ErrorIs(t, o.Validate()[0], ErrUnknownType)
}
