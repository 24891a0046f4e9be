package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcpostman/engine/builder"
	"github.com/arcpostman/engine/components"
)

func TestGrid_InvalidDimensions(t *testing.T) {
	_, err := builder.Grid(0, 3)
	assert.ErrorIs(t, err, builder.ErrInvalidDimensions)
}

func TestGrid_VertexAndEdgeCounts(t *testing.T) {
	g, err := builder.Grid(2, 3)
	require.NoError(t, err)
	assert.Len(t, g.Vertices(), 6)
	assert.Equal(t, 7, g.EdgeCount()) // (2-1)*3 vertical + 2*(3-1) horizontal
	assert.True(t, components.Connected(g))
}

func TestCycle_TooFewVertices(t *testing.T) {
	_, err := builder.Cycle(2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle_EveryVertexHasDegreeTwo(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)
	for _, v := range g.Vertices() {
		assert.Equal(t, 2, g.Degree(v))
	}
}

func TestPath_TooFewVertices(t *testing.T) {
	_, err := builder.Path(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPath_EndpointsHaveDegreeOne(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 1, g.Degree(3))
	assert.Equal(t, 2, g.Degree(1))
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	_, err := builder.RandomSparse(5, 1.5)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomSparse_AlwaysConnected(t *testing.T) {
	g, err := builder.RandomSparse(20, 0.1)
	require.NoError(t, err)
	assert.True(t, components.Connected(g))
	assert.Len(t, g.Vertices(), 20)
}

func TestRandomSparse_DeterministicForFixedSeed(t *testing.T) {
	g1, err := builder.RandomSparse(10, 0.3)
	require.NoError(t, err)
	g2, err := builder.RandomSparse(10, 0.3)
	require.NoError(t, err)
	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount())
}
