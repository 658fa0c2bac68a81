package symmetry_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/core"
	"github.com/katalvlaran/topomirror/symmetry"
)

// longStrip builds a strip of 2n quads with the seam in the middle.
func longStrip(b *testing.B, n int) (*core.Mesh, symmetry.Seed) {
	b.Helper()
	cols := 2*n + 1
	pts := make([]r3.Vec, 0, 2*cols)
	for _, y := range []float64{0, 1} {
		for x := 0; x < cols; x++ {
			pts = append(pts, r3.Vec{X: float64(x - n), Y: y})
		}
	}
	faces := make([][]int, 0, 2*n)
	for x := 0; x < cols-1; x++ {
		faces = append(faces, []int{x, x + 1, cols + x + 1, cols + x})
	}
	m, err := core.NewMesh(pts, faces)
	if err != nil {
		b.Fatal(err)
	}
	seam, ok := m.EdgeBetween(n, cols+n)
	if !ok {
		b.Fatal("seam edge missing")
	}
	return m, symmetry.Seed{
		LeftFace: n - 1, RightFace: n, LeftEdge: seam, RightEdge: seam,
	}
}

func BenchmarkTraverse_Strip128(b *testing.B) {
	m, seed := longStrip(b, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := symmetry.Traverse(m, seed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTraverse_Strip1024(b *testing.B) {
	m, seed := longStrip(b, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := symmetry.Traverse(m, seed); err != nil {
			b.Fatal(err)
		}
	}
}
