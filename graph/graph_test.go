package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misp/graph"
)

func TestNew_Empty(t *testing.T) {
	g, err := graph.New(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.Empty(t, g.Edges())
	assert.Empty(t, g.Components())
}

func TestNew_NegativeOrder(t *testing.T) {
	g, err := graph.New(-1, nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, graph.ErrNegativeOrder)
}

func TestNew_OutOfRange(t *testing.T) {
	cases := []graph.Edge{{U: 0, V: 3}, {U: -1, V: 0}, {U: 3, V: 3}}
	for _, e := range cases {
		g, err := graph.New(3, []graph.Edge{{U: 0, V: 1}, e})
		assert.Nil(t, g)
		assert.ErrorIs(t, err, graph.ErrNodeOutOfRange, "edge %v", e)
	}
}

func TestNew_SymmetricAdjacency(t *testing.T) {
	g := graph.MustNew(4, []graph.Edge{{0, 1}, {0, 2}, {2, 3}})

	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(1))
	assert.Equal(t, []int{0, 3}, g.Neighbors(2))
	assert.Equal(t, []int{2}, g.Neighbors(3))
	assert.Equal(t, 3, g.Size())
	assert.True(t, g.HasEdge(3, 2))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(1, 7))
}

func TestNew_DuplicatesAndLoopsKept(t *testing.T) {
	g := graph.MustNew(2, []graph.Edge{{0, 1}, {0, 1}, {1, 1}})

	assert.Equal(t, []int{1, 1}, g.Neighbors(0))
	assert.Equal(t, []int{0, 0, 1, 1}, g.Neighbors(1))
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, 4, g.Degree(1))
	assert.Equal(t, 3, g.Size())
	assert.True(t, g.HasEdge(1, 1))
	assert.Equal(t, []graph.Edge{{0, 1}, {0, 1}, {1, 1}}, g.Edges())
}

func TestNeighbors_ReadOnlyView(t *testing.T) {
	g := graph.MustNew(3, []graph.Edge{{0, 1}, {0, 2}})

	nbs := g.Neighbors(0)
	// appending must not leak into the graph's storage
	_ = append(nbs, 99)
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
}

func TestBuilder_BuildIsSnapshot(t *testing.T) {
	b, err := graph.NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1))

	g := b.Build()
	id := b.AddNode()
	require.NoError(t, b.AddEdge(id, 0))

	assert.Equal(t, 2, g.Order())
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, 3, b.Build().Order())
	assert.ErrorIs(t, b.AddEdge(0, 5), graph.ErrNodeOutOfRange)
}

func TestComponents(t *testing.T) {
	g := graph.MustNew(6, []graph.Edge{{3, 4}, {0, 2}, {4, 5}})

	assert.Equal(t, [][]int{{0, 2}, {1}, {3, 4, 5}}, g.Components())
}

func TestNilGraph(t *testing.T) {
	var g *graph.Graph
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.False(t, g.Contains(0))
}
