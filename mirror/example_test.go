package mirror_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/core"
	"github.com/katalvlaran/topomirror/mapping"
	"github.com/katalvlaran/topomirror/mirror"
	"github.com/katalvlaran/topomirror/symmetry"
)

// ExampleApply runs the full pipeline on a lopsided quad strip: traverse
// from the central seam, map vertices, then make the right side an exact
// reflection of the left.
func ExampleApply() {
	points := []r3.Vec{
		{X: -2, Y: 1}, {X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1.2, Y: 0.9}, {X: 2.4, Y: 1.1},
		{X: -2, Y: 3}, {X: -1, Y: 3}, {X: 0, Y: 3}, {X: 0.8, Y: 3.2}, {X: 1.9, Y: 2.8},
	}
	faces := [][]int{{0, 1, 6, 5}, {1, 2, 7, 6}, {2, 3, 8, 7}, {3, 4, 9, 8}}
	m, _ := core.NewMesh(points, faces)

	seam, _ := m.EdgeBetween(2, 7)
	res, _ := symmetry.Traverse(m, symmetry.Seed{LeftFace: 1, RightFace: 2, LeftEdge: seam, RightEdge: seam})
	cm, _ := mapping.Build(m, mapping.VertexSpace, res.Left, res.Right)

	_ = mirror.Apply(m, cm, r3.Vec{}, mirror.ModeMirror, mirror.AxisX)

	pts := m.Points()
	fmt.Printf("v4: (%g, %g)\n", pts[4].X, pts[4].Y)
	fmt.Printf("v8: (%g, %g)\n", pts[8].X, pts[8].Y)
	// Output:
	// v4: (2, 1)
	// v8: (1, 3)
}
