package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/core"
	"github.com/katalvlaran/topomirror/mapping"
	"github.com/katalvlaran/topomirror/mirror"
	"github.com/katalvlaran/topomirror/snapshot"
	"github.com/katalvlaran/topomirror/symmetry"
)

func quadPair(t *testing.T) *core.Mesh {
	t.Helper()
	points := []r3.Vec{
		{X: -1}, {X: 0}, {X: 1},
		{X: -1, Y: 2}, {X: 0, Y: 2}, {X: 1, Y: 2},
	}
	faces := [][]int{{0, 1, 4, 3}, {1, 2, 5, 4}}
	uvs := []r2.Vec{{}, {X: 0.5}, {X: 1}, {Y: 1}, {X: 0.5, Y: 1}, {X: 1, Y: 1}}
	m, err := core.NewMesh(points, faces, core.WithUVLayer(uvs, faces))
	require.NoError(t, err)
	return m
}

func TestTake_Restore_RoundTrip(t *testing.T) {
	m := quadPair(t)
	snap, err := snapshot.Take(m)
	require.NoError(t, err)
	require.Equal(t, 6, snap.NumPoints())
	require.Equal(t, 6, snap.NumUVs())

	// Mutate both buffers directly, the way hosts do.
	m.Points()[0] = r3.Vec{X: 9, Y: 9, Z: 9}
	m.UVs()[5] = r2.Vec{X: 0.123}
	m.Commit()

	require.NoError(t, snap.Restore(m))
	require.Equal(t, r3.Vec{X: -1}, m.Points()[0])
	require.Equal(t, r2.Vec{X: 1, Y: 1}, m.UVs()[5])
	require.Equal(t, 2, m.Revision())
}

// Restore is the undo for a full mirror application.
func TestRestore_UndoesMirror(t *testing.T) {
	m := quadPair(t)
	original := append([]r3.Vec(nil), m.Points()...)

	snap, err := snapshot.Take(m)
	require.NoError(t, err)

	seam, ok := m.EdgeBetween(1, 4)
	require.True(t, ok)
	res, err := symmetry.Traverse(m, symmetry.Seed{LeftFace: 0, RightFace: 1, LeftEdge: seam, RightEdge: seam})
	require.NoError(t, err)
	cm, err := mapping.Build(m, mapping.VertexSpace, res.Left, res.Right)
	require.NoError(t, err)

	// Skew the source side, mirror (the skew propagates), then undo.
	m.Points()[0] = r3.Vec{X: -4, Y: 4}
	require.NoError(t, mirror.Apply(m, cm, r3.Vec{}, mirror.ModeMirror, mirror.AxisX))
	require.NotEqual(t, original, m.Points())

	require.NoError(t, snap.Restore(m))
	require.Equal(t, original, m.Points())
}

func TestRestore_ShapeMismatch(t *testing.T) {
	snap, err := snapshot.Take(quadPair(t))
	require.NoError(t, err)

	other, err := core.NewMesh(
		[]r3.Vec{{}, {X: 1}, {X: 1, Y: 1}},
		[][]int{{0, 1, 2}},
	)
	require.NoError(t, err)

	err = snap.Restore(other)
	require.ErrorIs(t, err, snapshot.ErrShape)
	require.Equal(t, 0, other.Revision())
}

func TestNilMesh(t *testing.T) {
	_, err := snapshot.Take(nil)
	require.ErrorIs(t, err, snapshot.ErrMeshNil)

	snap, err := snapshot.Take(quadPair(t))
	require.NoError(t, err)
	require.ErrorIs(t, snap.Restore(nil), snapshot.ErrMeshNil)
}
