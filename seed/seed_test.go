package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/builder"
	"github.com/katalvlaran/topomirror/core"
	"github.com/katalvlaran/topomirror/mirror"
	"github.com/katalvlaran/topomirror/seed"
)

func TestFaceCenter(t *testing.T) {
	m, err := builder.QuadStrip(1)
	require.NoError(t, err)

	c, ok := seed.FaceCenter(m, 0)
	require.True(t, ok)
	assert.Equal(t, r3.Vec{X: -0.5, Y: 0.5}, c)

	_, ok = seed.FaceCenter(m, 99)
	assert.False(t, ok)
}

func TestFaceUVCenter(t *testing.T) {
	m, err := builder.QuadStrip(2, builder.WithUVGrid())
	require.NoError(t, err)

	c, ok := seed.FaceUVCenter(m, 1)
	require.True(t, ok)
	assert.InDelta(t, 0.375, c.X, 1e-15)
	assert.InDelta(t, 0.5, c.Y, 1e-15)

	bare, err := builder.QuadStrip(1)
	require.NoError(t, err)
	_, ok = seed.FaceUVCenter(bare, 0)
	assert.False(t, ok)
}

func TestSharedVertices(t *testing.T) {
	m, err := builder.QuadStrip(2)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 7}, seed.SharedVertices(m, 1, 2))
	assert.Empty(t, seed.SharedVertices(m, 0, 2))

	c, ok := seed.SharedVertexCenter(m, 1, 2)
	require.True(t, ok)
	assert.Equal(t, r3.Vec{Y: 0.5}, c)

	_, ok = seed.SharedVertexCenter(m, 0, 2)
	assert.False(t, ok)
}

func TestSharedUVs(t *testing.T) {
	m, err := builder.QuadStrip(2, builder.WithUVGrid())
	require.NoError(t, err)

	assert.Equal(t, []int{2, 7}, seed.SharedUVs(m, 1, 2))

	c, ok := seed.SharedUVCenter(m, 1, 2)
	require.True(t, ok)
	assert.Equal(t, r2.Vec{X: 0.5, Y: 0.5}, c)
}

func TestEdgeVector(t *testing.T) {
	m, err := builder.QuadStrip(1)
	require.NoError(t, err)

	e, ok := m.EdgeBetween(1, 4)
	require.True(t, ok)
	v, ok := seed.EdgeVector(m, e)
	require.True(t, ok)
	assert.Equal(t, r3.Vec{Y: 1}, v)

	_, ok = seed.EdgeVector(m, -1)
	assert.False(t, ok)

	// Zero-length edge on a degenerate mesh.
	deg, err := core.NewMesh(
		[]r3.Vec{{}, {}, {X: 1}},
		[][]int{{0, 1, 2}},
	)
	require.NoError(t, err)
	_, ok = seed.EdgeVector(deg, 0)
	assert.False(t, ok)
}

func TestDominantAxis(t *testing.T) {
	assert.Equal(t, mirror.AxisY, seed.DominantAxis(r3.Vec{X: 0.3, Y: -2, Z: 1}))
	assert.Equal(t, mirror.AxisZ, seed.DominantAxis(r3.Vec{Z: -3}))
	// Ties resolve in X, Y, Z order.
	assert.Equal(t, mirror.AxisX, seed.DominantAxis(r3.Vec{X: 1, Y: 1}))
	assert.Equal(t, mirror.AxisX, seed.DominantAxis(r3.Vec{}))
}

func TestUVsHorizontal(t *testing.T) {
	assert.True(t, seed.UVsHorizontal(r2.Vec{}, r2.Vec{X: 1, Y: 0.5}))
	assert.False(t, seed.UVsHorizontal(r2.Vec{X: 0.5}, r2.Vec{X: 0.5, Y: 1}))
}

func TestBasisFromMatrix(t *testing.T) {
	identity := []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	b, err := seed.BasisFromMatrix(identity)
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{X: 1}, b.Right)
	assert.Equal(t, r3.Vec{Y: 1}, b.Up)
	assert.Equal(t, r3.Vec{Z: -1}, b.Forward)

	// Scaled rows come out normalized.
	scaled := []float64{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	}
	b, err = seed.BasisFromMatrix(scaled)
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{X: 1}, b.Right)

	_, err = seed.BasisFromMatrix([]float64{1, 2, 3})
	require.ErrorIs(t, err, seed.ErrMatrix)
}

func TestIntendedAxis(t *testing.T) {
	front := seed.Basis{Right: r3.Vec{X: 1}, Up: r3.Vec{Y: 1}, Forward: r3.Vec{Z: -1}}

	// A vertical seam viewed head-on mirrors left-right.
	axis, positive := seed.IntendedAxis(r3.Vec{Y: 1}, front)
	assert.Equal(t, mirror.AxisX, axis)
	assert.True(t, positive)

	// A horizontal seam mirrors top-bottom.
	axis, positive = seed.IntendedAxis(r3.Vec{X: 1}, front)
	assert.Equal(t, mirror.AxisY, axis)
	assert.True(t, positive)

	// A depth-running seam prefers the up direction.
	axis, _ = seed.IntendedAxis(r3.Vec{Z: 1}, front)
	assert.Equal(t, mirror.AxisY, axis)

	// A camera whose right points down -X reports a negative direction.
	flipped := seed.Basis{Right: r3.Vec{X: -1}, Up: r3.Vec{Y: 1}, Forward: r3.Vec{Z: 1}}
	axis, positive = seed.IntendedAxis(r3.Vec{Y: 1}, flipped)
	assert.Equal(t, mirror.AxisX, axis)
	assert.False(t, positive)
}
