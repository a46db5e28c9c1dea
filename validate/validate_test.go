package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/misp/graph"
	"github.com/katalvlaran/misp/validate"
)

// square is the 4-cycle 0-1-2-3-0.
func square() *graph.Graph {
	return graph.MustNew(4, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}})
}

func TestValidate_Valid(t *testing.T) {
	ok, violations := validate.Validate(square(), []int{0, 2})
	assert.True(t, ok)
	assert.Empty(t, violations)

	ok, _ = validate.Validate(square(), nil)
	assert.True(t, ok)

	ok, _ = validate.Validate(graph.MustNew(0, nil), []int{})
	assert.True(t, ok)
}

func TestValidate_FirstViolation(t *testing.T) {
	ok, violations := validate.Validate(square(), []int{2, 0, 1})
	assert.False(t, ok)
	assert.Equal(t, []validate.Violation{{Node: 2, Neighbor: 1}}, violations)
}

func TestValidate_Exhaustive(t *testing.T) {
	ok, violations := validate.Validate(square(), []int{0, 1, 2}, validate.WithExhaustive())
	assert.False(t, ok)
	assert.Equal(t, []validate.Violation{
		{Node: 0, Neighbor: 1},
		{Node: 1, Neighbor: 0},
		{Node: 1, Neighbor: 2},
		{Node: 2, Neighbor: 1},
	}, violations)
}

func TestValidate_SelfLoopAndDuplicates(t *testing.T) {
	g := graph.MustNew(3, []graph.Edge{{U: 1, V: 1}})

	ok, violations := validate.Validate(g, []int{1})
	assert.False(t, ok)
	assert.Equal(t, []validate.Violation{{Node: 1, Neighbor: 1}}, violations)

	ok, _ = validate.Validate(g, []int{0, 2, 0})
	assert.True(t, ok)
}

func TestValidate_OutOfRange(t *testing.T) {
	ok, violations := validate.Validate(square(), []int{0, 9})
	assert.False(t, ok)
	assert.Equal(t, []validate.Violation{{Node: 9, Neighbor: -1}}, violations)
	assert.Equal(t, "9(out of range)", violations[0].String())
}

func TestIndependent(t *testing.T) {
	assert.NoError(t, validate.Independent(square(), []int{1, 3}))

	err := validate.Independent(square(), []int{1, 2})
	assert.ErrorIs(t, err, validate.ErrNotIndependent)
	assert.Contains(t, err.Error(), "1-2")

	err = validate.Independent(square(), []int{-1})
	assert.ErrorIs(t, err, validate.ErrNodeOutOfRange)
}
