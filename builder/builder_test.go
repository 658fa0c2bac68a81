package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/builder"
	"github.com/katalvlaran/topomirror/symmetry"
)

func TestQuadStrip_Topology(t *testing.T) {
	m, err := builder.QuadStrip(2)
	require.NoError(t, err)

	assert.Equal(t, 10, m.NumVertices())
	assert.Equal(t, 4, m.NumFaces())
	assert.Equal(t, 13, m.NumEdges())

	// Seam on the x=0 column: bottom vertex n, top vertex 3n+1.
	seam, ok := m.EdgeBetween(2, 7)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, m.EdgeAdjacentFaces(seam))
	assert.Equal(t, r3.Vec{}, m.Points()[2])
}

// The strip is symmetric by construction, so traversal from its seam
// must succeed and split the faces evenly.
func TestQuadStrip_TraversesSymmetrically(t *testing.T) {
	m, err := builder.QuadStrip(3)
	require.NoError(t, err)

	seam, ok := m.EdgeBetween(3, 10)
	require.True(t, ok)
	res, err := symmetry.Traverse(m, symmetry.Seed{LeftFace: 2, RightFace: 3, LeftEdge: seam, RightEdge: seam})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Left.Len())
	assert.Equal(t, 3, res.Right.Len())
}

func TestQuadStrip_ScaleOffset(t *testing.T) {
	m, err := builder.QuadStrip(1, builder.WithScale(2), builder.WithOffset(r3.Vec{X: 1, Y: 1, Z: 1}))
	require.NoError(t, err)

	// Bottom-left corner: (-1, 0, 0) scaled then translated.
	assert.Equal(t, r3.Vec{X: -1, Y: 1, Z: 1}, m.Points()[0])
	// Top-right corner: (1, 1, 0) scaled then translated.
	assert.Equal(t, r3.Vec{X: 3, Y: 3, Z: 1}, m.Points()[5])
}

func TestQuadStrip_UVGrid(t *testing.T) {
	m, err := builder.QuadStrip(1, builder.WithUVGrid())
	require.NoError(t, err)

	require.True(t, m.HasUVs())
	assert.Equal(t, m.NumVertices(), m.NumUVs())

	// Shared index per vertex: both quads resolve vertex 1 to uv 1.
	uv, ok := m.FaceVertexUV(0, 1)
	require.True(t, ok)
	assert.Equal(t, 1, uv)
	uv, ok = m.FaceVertexUV(1, 1)
	require.True(t, ok)
	assert.Equal(t, 1, uv)
	assert.InDelta(t, 0.5, m.UVs()[uv].X, 1e-15)
}

func TestPlane_Topology(t *testing.T) {
	m, err := builder.Plane(2, 2)
	require.NoError(t, err)

	assert.Equal(t, 9, m.NumVertices())
	assert.Equal(t, 4, m.NumFaces())
	assert.Equal(t, 12, m.NumEdges())
	// Center node of a 2x2 grid sits on the origin.
	assert.Equal(t, r3.Vec{}, m.Points()[4])
}

func TestCube_ClosedManifold(t *testing.T) {
	m, err := builder.Cube()
	require.NoError(t, err)

	require.Equal(t, 8, m.NumVertices())
	require.Equal(t, 6, m.NumFaces())
	require.Equal(t, 12, m.NumEdges())
	for e := 0; e < m.NumEdges(); e++ {
		assert.Len(t, m.EdgeAdjacentFaces(e), 2, "edge %d", e)
	}
}

// A closed cube is symmetric about the plane through any vertical edge
// pair; the faces straddling the plane pair with themselves.
func TestCube_TraversesAcrossEdge(t *testing.T) {
	m, err := builder.Cube()
	require.NoError(t, err)

	seam, ok := m.EdgeBetween(1, 5)
	require.True(t, ok)
	adj := m.EdgeAdjacentFaces(seam)
	require.Len(t, adj, 2)

	res, err := symmetry.Traverse(m, symmetry.Seed{LeftFace: adj[0], RightFace: adj[1], LeftEdge: seam, RightEdge: seam})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 5, 0}, res.Left.Faces())
	assert.Equal(t, []int{3, 1, 4, 0}, res.Right.Faces())
}

func TestSizeValidation(t *testing.T) {
	_, err := builder.QuadStrip(0)
	require.ErrorIs(t, err, builder.ErrSize)
	_, err = builder.Plane(0, 1)
	require.ErrorIs(t, err, builder.ErrSize)
	_, err = builder.Plane(1, 0)
	require.ErrorIs(t, err, builder.ErrSize)
}

func TestOptionValidation(t *testing.T) {
	_, err := builder.QuadStrip(1, builder.WithScale(0))
	require.ErrorIs(t, err, builder.ErrOption)
	_, err = builder.Plane(1, 1, builder.WithScale(-3))
	require.ErrorIs(t, err, builder.ErrOption)
	_, err = builder.Cube(builder.WithUVGrid())
	require.ErrorIs(t, err, builder.ErrOption)
}
