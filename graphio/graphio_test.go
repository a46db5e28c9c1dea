package graphio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misp/builder"
	"github.com/katalvlaran/misp/graph"
	"github.com/katalvlaran/misp/graphio"
)

func TestRead(t *testing.T) {
	in := "4\n0 1\n\n1 2\n  2   3  \n3 3\n0 1\n"
	g, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 5, g.Size())
	assert.Equal(t, []int{1, 1}, g.Neighbors(0))
	assert.Equal(t, []int{2, 3, 3}, g.Neighbors(3))
}

func TestRead_EmptyGraph(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
		line    string
	}{
		{"empty", "", graphio.ErrMalformedHeader, "empty input"},
		{"header word", "abc\n", graphio.ErrMalformedHeader, "line 1"},
		{"negative header", "\n-2\n", graphio.ErrMalformedHeader, "line 2"},
		{"one field", "3\n0 1\n2\n", graphio.ErrMalformedEdge, "line 3"},
		{"three fields", "3\n0 1 2\n", graphio.ErrMalformedEdge, "line 2"},
		{"non numeric", "3\n0 x\n", graphio.ErrMalformedEdge, "line 2"},
		{"out of range", "3\n0 1\n1 3\n", graph.ErrNodeOutOfRange, "line 3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.Read(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	g := builder.MustBuild(
		[]builder.BuilderOption{builder.WithSeed(11)},
		builder.Wheel(6), builder.RandomSparse(12, 0.3),
	)

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g))
	back, err := graphio.Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.Order(), back.Order())
	if diff := cmp.Diff(g.Edges(), back.Edges()); diff != "" {
		t.Fatalf("edges differ after round trip (-want +got):\n%s", diff)
	}
}

func TestFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	g := graph.MustNew(3, []graph.Edge{{U: 0, V: 2}})

	require.NoError(t, graphio.WriteFile(path, g))
	back, err := graphio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())

	_, err = graphio.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestWriteRead_EdgeSetNotAdjacencyOrder(t *testing.T) {
	g := graph.MustNew(3, []graph.Edge{{U: 1, V: 2}, {U: 0, V: 1}})
	require.Equal(t, []int{2, 0}, g.Neighbors(1))

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g))
	back, err := graphio.Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, []int{0, 2}, back.Neighbors(1))
}
