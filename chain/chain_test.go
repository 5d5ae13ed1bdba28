package chain_test

import (
	"testing"

	"github.com/flatmedian/flatmedian/chain"
	"github.com/flatmedian/flatmedian/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	verts := []mesh.Vertex{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: 1},
	}
	m, err := mesh.NewMesh(verts, []mesh.Triangle{{A: 0, B: 1, C: 2}, {A: 0, B: 2, C: 3}})
	require.NoError(t, err)

	return m
}

func TestZero(t *testing.T) {
	t.Parallel()
	m := squareMesh(t)

	c1, err := chain.Zero(1, m)
	require.NoError(t, err)
	assert.Equal(t, m.NumEdges(), c1.Len())
	assert.True(t, c1.IsZero())

	c2, err := chain.Zero(2, m)
	require.NoError(t, err)
	assert.Equal(t, m.NumTriangles(), c2.Len())
}

func TestZero_InvalidDimension(t *testing.T) {
	t.Parallel()
	m := squareMesh(t)
	_, err := chain.Zero(3, m)
	assert.ErrorIs(t, err, chain.ErrInvalidDimension)
}

func TestFromCoeffs_DimensionMismatch(t *testing.T) {
	t.Parallel()
	m := squareMesh(t)
	_, err := chain.FromCoeffs(1, m, []float64{1, 2})
	assert.ErrorIs(t, err, chain.ErrDimensionMismatch)
}

func TestFromCoeffs_CopiesStorage(t *testing.T) {
	t.Parallel()
	m := squareMesh(t)
	src := make([]float64, m.NumEdges())
	src[0] = 1
	c, err := chain.FromCoeffs(1, m, src)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, 1.0, c.Coeff[0], "chain must not alias caller's slice")
}

func TestString(t *testing.T) {
	t.Parallel()
	m := squareMesh(t)
	c, err := chain.Zero(1, m)
	require.NoError(t, err)
	c.Coeff[0] = 1
	c.Coeff[1] = -2.5

	s := c.String()
	assert.Contains(t, s, "+ ")
	assert.Contains(t, s, "- 2.5*")
}
