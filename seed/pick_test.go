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
	"github.com/katalvlaran/topomirror/symmetry"
)

// horizontalStrip returns the 4-quad strip and its central seam edge.
func horizontalStrip(t *testing.T, opts ...builder.Option) (*core.Mesh, int) {
	t.Helper()
	m, err := builder.QuadStrip(2, opts...)
	require.NoError(t, err)
	e, ok := m.EdgeBetween(2, 7)
	require.True(t, ok)
	return m, e
}

// stackedQuads returns two quads stacked in Y with a horizontal seam,
// optionally carrying a planar UV layer.
func stackedQuads(t *testing.T, withUVs bool) (*core.Mesh, int) {
	t.Helper()
	points := []r3.Vec{
		{}, {X: 1},
		{Y: 1}, {X: 1, Y: 1},
		{Y: 2}, {X: 1, Y: 2},
	}
	faces := [][]int{{0, 1, 3, 2}, {2, 3, 5, 4}}

	var opts []core.MeshOption
	if withUVs {
		uvs := []r2.Vec{
			{}, {X: 1},
			{Y: 0.5}, {X: 1, Y: 0.5},
			{Y: 1}, {X: 1, Y: 1},
		}
		opts = append(opts, core.WithUVLayer(uvs, faces))
	}
	m, err := core.NewMesh(points, faces, opts...)
	require.NoError(t, err)
	e, ok := m.EdgeBetween(2, 3)
	require.True(t, ok)
	return m, e
}

func TestPickSides_DefaultAxisFromFaceCenters(t *testing.T) {
	m, e := horizontalStrip(t)

	sd, plan, err := seed.PickSides(m, e)
	require.NoError(t, err)
	assert.Equal(t, symmetry.Seed{LeftFace: 1, RightFace: 2, LeftEdge: e, RightEdge: e}, sd)
	assert.Equal(t, mirror.AxisX, plan.Axis)
	assert.Equal(t, r3.Vec{Y: 0.5}, plan.Center)
	assert.False(t, plan.Swapped)
}

func TestPickSides_LeftToRightFalseSwaps(t *testing.T) {
	m, e := horizontalStrip(t)

	sd, plan, err := seed.PickSides(m, e, seed.WithLeftToRight(false))
	require.NoError(t, err)
	assert.Equal(t, 2, sd.LeftFace)
	assert.Equal(t, 1, sd.RightFace)
	assert.True(t, plan.Swapped)
}

func TestPickSides_TopToBottomAlongY(t *testing.T) {
	m, e := stackedQuads(t, false)

	// Default orientation sources the upper face.
	sd, plan, err := seed.PickSides(m, e)
	require.NoError(t, err)
	assert.Equal(t, mirror.AxisY, plan.Axis)
	assert.Equal(t, 1, sd.LeftFace)
	assert.Equal(t, 0, sd.RightFace)
	assert.True(t, plan.Swapped)
	assert.Equal(t, r3.Vec{X: 0.5, Y: 1}, plan.Center)

	sd, plan, err = seed.PickSides(m, e, seed.WithTopToBottom(false))
	require.NoError(t, err)
	assert.Equal(t, 0, sd.LeftFace)
	assert.False(t, plan.Swapped)
}

func TestPickSides_CameraBasis(t *testing.T) {
	m, e := horizontalStrip(t)
	front := seed.Basis{Right: r3.Vec{X: 1}, Up: r3.Vec{Y: 1}, Forward: r3.Vec{Z: -1}}

	sd, plan, err := seed.PickSides(m, e, seed.WithBasis(front))
	require.NoError(t, err)
	assert.Equal(t, mirror.AxisX, plan.Axis)
	assert.Equal(t, 1, sd.LeftFace)

	// Looking from behind flips the visual left.
	back := seed.Basis{Right: r3.Vec{X: -1}, Up: r3.Vec{Y: 1}, Forward: r3.Vec{Z: 1}}
	sd, plan, err = seed.PickSides(m, e, seed.WithBasis(back))
	require.NoError(t, err)
	assert.Equal(t, 2, sd.LeftFace)
	assert.True(t, plan.Swapped)
}

func TestPickSides_ExplicitAxis(t *testing.T) {
	m, e := horizontalStrip(t)

	_, plan, err := seed.PickSides(m, e, seed.WithAxis(mirror.AxisZ))
	require.NoError(t, err)
	assert.Equal(t, mirror.AxisZ, plan.Axis)

	_, _, err = seed.PickSides(m, e, seed.WithAxis(mirror.Axis(9)))
	require.ErrorIs(t, err, seed.ErrOptionViolation)
}

func TestPickSides_Validation(t *testing.T) {
	m, _ := horizontalStrip(t)

	_, _, err := seed.PickSides(nil, 0)
	require.ErrorIs(t, err, seed.ErrMeshNil)

	boundary, ok := m.EdgeBetween(0, 1)
	require.True(t, ok)
	_, _, err = seed.PickSides(m, boundary)
	require.ErrorIs(t, err, seed.ErrNotManifold)
}

func TestPickSidesUV_Default(t *testing.T) {
	m, e := horizontalStrip(t, builder.WithUVGrid())

	sd, plan, err := seed.PickSidesUV(m, e)
	require.NoError(t, err)
	assert.Equal(t, symmetry.Seed{LeftFace: 1, RightFace: 2, LeftEdge: e, RightEdge: e}, sd)
	assert.Equal(t, mirror.AxisU, plan.Axis)
	assert.Equal(t, r2.Vec{X: 0.5, Y: 0.5}, plan.Center)
	assert.False(t, plan.Swapped)
}

func TestPickSidesUV_HorizontalSeamMirrorsAlongV(t *testing.T) {
	m, e := stackedQuads(t, true)

	sd, plan, err := seed.PickSidesUV(m, e)
	require.NoError(t, err)
	assert.Equal(t, mirror.AxisV, plan.Axis)
	// Top-to-bottom sources the upper face.
	assert.Equal(t, 1, sd.LeftFace)
	assert.Equal(t, 0, sd.RightFace)
	assert.True(t, plan.Swapped)
	assert.Equal(t, r2.Vec{X: 0.5, Y: 0.5}, plan.Center)
}

func TestPickSidesUV_FlagsAndForcedAxis(t *testing.T) {
	m, e := horizontalStrip(t, builder.WithUVGrid())

	sd, plan, err := seed.PickSidesUV(m, e, seed.WithLeftToRight(false))
	require.NoError(t, err)
	assert.Equal(t, 2, sd.LeftFace)
	assert.True(t, plan.Swapped)

	_, plan, err = seed.PickSidesUV(m, e, seed.WithUVAxis(mirror.AxisV))
	require.NoError(t, err)
	assert.Equal(t, mirror.AxisV, plan.Axis)

	_, _, err = seed.PickSidesUV(m, e, seed.WithUVAxis(mirror.UVAxis(7)))
	require.ErrorIs(t, err, seed.ErrOptionViolation)
}

func TestPickSidesUV_Validation(t *testing.T) {
	bare, e := horizontalStrip(t)
	_, _, err := seed.PickSidesUV(bare, e)
	require.ErrorIs(t, err, seed.ErrNoUVLayer)

	_, _, err = seed.PickSidesUV(nil, 0)
	require.ErrorIs(t, err, seed.ErrMeshNil)

	m, _ := horizontalStrip(t, builder.WithUVGrid())
	boundary, ok := m.EdgeBetween(0, 1)
	require.True(t, ok)
	_, _, err = seed.PickSidesUV(m, boundary)
	require.ErrorIs(t, err, seed.ErrNotManifold)
}

// A fully split UV seam leaves the faces with no shared UVs.
func TestPickSidesUV_SplitSeam(t *testing.T) {
	points := []r3.Vec{
		{X: -1}, {}, {X: 1},
		{X: -1, Y: 1}, {Y: 1}, {X: 1, Y: 1},
	}
	faces := [][]int{{0, 1, 4, 3}, {1, 2, 5, 4}}
	// Face 1 gets detached UV indices at the seam vertices 1 and 4.
	uvs := []r2.Vec{
		{}, {X: 0.5}, {X: 1},
		{Y: 1}, {X: 0.5, Y: 1}, {X: 1, Y: 1},
		{X: 0.6}, {X: 0.6, Y: 1},
	}
	assignments := [][]int{{0, 1, 4, 3}, {6, 2, 5, 7}}
	m, err := core.NewMesh(points, faces, core.WithUVLayer(uvs, assignments))
	require.NoError(t, err)

	e, ok := m.EdgeBetween(1, 4)
	require.True(t, ok)
	_, _, err = seed.PickSidesUV(m, e)
	require.ErrorIs(t, err, seed.ErrUVSeed)
}
