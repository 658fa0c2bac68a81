// Synthetic, symmetric-by-construction mesh generators. Tests, examples
// and the CLI gen command use them as deterministic fixtures.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/core"
)

// QuadStrip builds a single row of 2n quads along X, two vertex rows at
// y=0 and y=1, spanning x in [-n, n]. The central column sits on x=0, so
// the seam edge joins bottom vertex n to top vertex 3n+1 (look it up with
// EdgeBetween). n >= 1.
func QuadStrip(n int, opts ...Option) (*core.Mesh, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: half-width %d", ErrSize, n)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	cols := 2*n + 1
	points := make([]r3.Vec, 0, 2*cols)
	for row := 0; row < 2; row++ {
		for i := 0; i < cols; i++ {
			points = append(points, o.place(r3.Vec{X: float64(i - n), Y: float64(row)}))
		}
	}
	faces := make([][]int, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		faces = append(faces, []int{i, i + 1, cols + i + 1, cols + i})
	}

	if !o.uvGrid {
		return core.NewMesh(points, faces)
	}
	uvs := make([]r2.Vec, 0, len(points))
	for row := 0; row < 2; row++ {
		for i := 0; i < cols; i++ {
			uvs = append(uvs, r2.Vec{X: float64(i) / float64(cols-1), Y: float64(row)})
		}
	}
	return core.NewMesh(points, faces, core.WithUVLayer(uvs, faces))
}

// Plane builds an nx by ny quad grid centered on the origin in the XY
// plane, one vertex per grid node, row-major from the bottom-left.
// nx, ny >= 1.
func Plane(nx, ny int, opts ...Option) (*core.Mesh, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrSize, nx, ny)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	cols, rows := nx+1, ny+1
	points := make([]r3.Vec, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for i := 0; i < cols; i++ {
			points = append(points, o.place(r3.Vec{
				X: float64(i) - float64(nx)/2,
				Y: float64(r) - float64(ny)/2,
			}))
		}
	}
	faces := make([][]int, 0, nx*ny)
	for r := 0; r < ny; r++ {
		for i := 0; i < nx; i++ {
			a := r*cols + i
			faces = append(faces, []int{a, a + 1, a + cols + 1, a + cols})
		}
	}

	if !o.uvGrid {
		return core.NewMesh(points, faces)
	}
	uvs := make([]r2.Vec, 0, len(points))
	for r := 0; r < rows; r++ {
		for i := 0; i < cols; i++ {
			uvs = append(uvs, r2.Vec{
				X: float64(i) / float64(nx),
				Y: float64(r) / float64(ny),
			})
		}
	}
	return core.NewMesh(points, faces, core.WithUVLayer(uvs, faces))
}

// Cube builds a closed unit cube centered on the origin: 8 vertices,
// 6 quads with outward winding, 12 edges each shared by exactly two
// faces. A UV grid needs a flat sheet, so combining Cube with
// WithUVGrid is an option violation.
func Cube(opts ...Option) (*core.Mesh, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if o.uvGrid {
		return nil, errOption("cube has no planar sheet for a UV grid")
	}

	corners := []r3.Vec{
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
	}
	points := make([]r3.Vec, len(corners))
	for i, c := range corners {
		points[i] = o.place(c)
	}
	faces := [][]int{
		{0, 3, 2, 1}, // bottom, outward -z
		{4, 5, 6, 7}, // top, outward +z
		{0, 1, 5, 4}, // front, outward -y
		{1, 2, 6, 5}, // right, outward +x
		{2, 3, 7, 6}, // back, outward +y
		{3, 0, 4, 7}, // left, outward -x
	}
	return core.NewMesh(points, faces)
}

func resolve(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// place maps a unit-space coordinate to its final position.
func (o options) place(base r3.Vec) r3.Vec {
	return r3.Add(r3.Scale(o.scale, base), o.offset)
}
