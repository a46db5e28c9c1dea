package degree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misp/degree"
	"github.com/katalvlaran/misp/graph"
)

// path5 is 0-1-2-3-4.
func path5() *graph.Graph {
	return graph.MustNew(5, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}})
}

// claw plus a disjoint edge: 0 joined to 1,2,3; 1-4 pendant; 5-6 separate.
func clawWithTail() *graph.Graph {
	return graph.MustNew(7, []graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 1, V: 4}, {U: 5, V: 6}})
}

func active(d int) degree.State  { return degree.State{Status: degree.Active, Degree: d} }
func blocked() degree.State      { return degree.State{Status: degree.Blocked} }
func removedState() degree.State { return degree.State{Status: degree.Removed} }

func TestNew_NilGraph(t *testing.T) {
	tr, err := degree.New(nil)
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, degree.ErrNilGraph)
}

func TestNew_InitialDegrees(t *testing.T) {
	tr, err := degree.New(path5())
	require.NoError(t, err)

	assert.Equal(t, 5, tr.Order())
	assert.Equal(t, 5, tr.ActiveCount())
	assert.Equal(t, degree.FullRescan, tr.Policy())
	assert.Equal(t,
		[]degree.State{active(1), active(2), active(2), active(2), active(1)},
		tr.Snapshot())
}

func TestSelectAndRemove_FullRescan_Path(t *testing.T) {
	tr, err := degree.New(path5())
	require.NoError(t, err)

	require.NoError(t, tr.SelectAndRemove(0))
	assert.Equal(t,
		[]degree.State{removedState(), blocked(), active(1), active(2), active(1)},
		tr.Snapshot())
	assert.Equal(t, 3, tr.ActiveCount())

	require.NoError(t, tr.SelectAndRemove(2))
	assert.Equal(t,
		[]degree.State{removedState(), blocked(), removedState(), blocked(), active(0)},
		tr.Snapshot())
	assert.Equal(t, 1, tr.ActiveCount())

	d, ok := tr.Degree(4)
	assert.True(t, ok)
	assert.Equal(t, 0, d)
	_, ok = tr.Degree(3)
	assert.False(t, ok)
}

func TestSelectAndRemove_FullRescan_DiscountStacks(t *testing.T) {
	tr, err := degree.New(clawWithTail())
	require.NoError(t, err)

	require.NoError(t, tr.SelectAndRemove(4)) // blocks 1
	d, _ := tr.Degree(0)
	assert.Equal(t, 2, d)

	// Removing an unrelated node rescans again and discounts 1 a second time.
	require.NoError(t, tr.SelectAndRemove(5))
	d, _ = tr.Degree(0)
	assert.Equal(t, 1, d)
}

func TestSelectAndRemove_Incremental_TrueDegree(t *testing.T) {
	tr, err := degree.New(clawWithTail(), degree.WithPolicy(degree.Incremental))
	require.NoError(t, err)
	assert.Equal(t, degree.Incremental, tr.Policy())

	require.NoError(t, tr.SelectAndRemove(4))
	d, _ := tr.Degree(0)
	assert.Equal(t, 2, d)

	require.NoError(t, tr.SelectAndRemove(5))
	d, _ = tr.Degree(0)
	assert.Equal(t, 2, d)
	assert.Equal(t, blocked(), tr.State(6))
}

func TestSelectAndRemove_Errors(t *testing.T) {
	tr, err := degree.New(path5())
	require.NoError(t, err)

	assert.ErrorIs(t, tr.SelectAndRemove(-1), degree.ErrNodeOutOfRange)
	assert.ErrorIs(t, tr.SelectAndRemove(5), degree.ErrNodeOutOfRange)

	require.NoError(t, tr.SelectAndRemove(1))
	before := tr.Snapshot()
	assert.ErrorIs(t, tr.SelectAndRemove(1), degree.ErrNotActive) // removed
	assert.ErrorIs(t, tr.SelectAndRemove(0), degree.ErrNotActive) // blocked
	assert.Equal(t, before, tr.Snapshot())
}

// TestSelectAndRemove_Monotone drives a tracker to exhaustion and checks
// that no node ever returns to Active and degrees never increase.
func TestSelectAndRemove_Monotone(t *testing.T) {
	g := graph.MustNew(8, []graph.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 6}, {U: 6, V: 7}, {U: 7, V: 3}, {U: 1, V: 1},
	})
	for _, p := range []degree.Policy{degree.FullRescan, degree.Incremental} {
		tr, err := degree.New(g, degree.WithPolicy(p))
		require.NoError(t, err)

		prev := tr.Snapshot()
		for tr.ActiveCount() > 0 {
			next := -1
			for u := 0; u < tr.Order(); u++ {
				if tr.Active(u) {
					next = u
					break
				}
			}
			require.NoError(t, tr.SelectAndRemove(next))

			cur := tr.Snapshot()
			for u := range cur {
				assert.GreaterOrEqual(t, uint8(cur[u].Status), uint8(prev[u].Status), "%s: node %d went back", p, u)
				if cur[u].Status == degree.Active {
					assert.LessOrEqual(t, cur[u].Degree, prev[u].Degree, "%s: node %d degree grew", p, u)
					assert.GreaterOrEqual(t, cur[u].Degree, 0)
				}
			}
			prev = cur
		}
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := degree.ParsePolicy("incremental")
	require.NoError(t, err)
	assert.Equal(t, degree.Incremental, p)

	p, err = degree.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, degree.FullRescan, p)

	_, err = degree.ParsePolicy("lazy")
	assert.Error(t, err)
	assert.Panics(t, func() { degree.WithPolicy(degree.Policy(9)) })
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "active(3)", active(3).String())
	assert.Equal(t, "blocked", blocked().String())
	assert.Equal(t, "removed", removedState().String())
}
