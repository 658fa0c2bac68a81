// Package seed derives mirror setup from a selected seam edge: which side
// is the source, which axis to mirror along, and where the mirror plane
// sits. These are front-end heuristics; the engines take their output as
// plain arguments.
package seed

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/core"
	"github.com/katalvlaran/topomirror/mirror"
	"github.com/katalvlaran/topomirror/winding"
)

// FaceCenter returns the mean position of the face's vertices.
// ok is false for an out-of-range face.
func FaceCenter(m core.MeshQuery, face int) (r3.Vec, bool) {
	verts := faceVertices(m, face)
	if len(verts) == 0 {
		return r3.Vec{}, false
	}
	points := m.Points()
	var sum r3.Vec
	for _, v := range verts {
		sum = r3.Add(sum, points[v])
	}
	return r3.Scale(1/float64(len(verts)), sum), true
}

// FaceUVCenter returns the mean UV coordinate of the face's assigned
// corners. Unassigned corners are skipped; ok is false when the face is
// out of range or no corner has a UV.
func FaceUVCenter(m core.MeshQuery, face int) (r2.Vec, bool) {
	verts := faceVertices(m, face)
	if len(verts) == 0 {
		return r2.Vec{}, false
	}
	uvs := m.UVs()
	var sum r2.Vec
	n := 0
	for _, v := range verts {
		uv, ok := m.FaceVertexUV(face, v)
		if !ok {
			continue
		}
		sum = r2.Add(sum, uvs[uv])
		n++
	}
	if n == 0 {
		return r2.Vec{}, false
	}
	return r2.Scale(1/float64(n), sum), true
}

// SharedVertices returns the vertices two faces have in common, in the
// first face's loop order.
func SharedVertices(m core.MeshQuery, f1, f2 int) []int {
	in2 := make(map[int]struct{})
	for _, v := range faceVertices(m, f2) {
		in2[v] = struct{}{}
	}
	var shared []int
	for _, v := range faceVertices(m, f1) {
		if _, ok := in2[v]; ok {
			shared = append(shared, v)
		}
	}
	return shared
}

// SharedVertexCenter returns the mean position of the vertices two faces
// share. ok is false when they share none.
func SharedVertexCenter(m core.MeshQuery, f1, f2 int) (r3.Vec, bool) {
	shared := SharedVertices(m, f1, f2)
	if len(shared) == 0 {
		return r3.Vec{}, false
	}
	points := m.Points()
	var sum r3.Vec
	for _, v := range shared {
		sum = r3.Add(sum, points[v])
	}
	return r3.Scale(1/float64(len(shared)), sum), true
}

// SharedUVs returns the UV indices two faces have in common, in the first
// face's loop order.
func SharedUVs(m core.MeshQuery, f1, f2 int) []int {
	in2 := make(map[int]struct{})
	for _, v := range faceVertices(m, f2) {
		if uv, ok := m.FaceVertexUV(f2, v); ok {
			in2[uv] = struct{}{}
		}
	}
	var shared []int
	for _, v := range faceVertices(m, f1) {
		uv, ok := m.FaceVertexUV(f1, v)
		if !ok {
			continue
		}
		if _, ok := in2[uv]; ok {
			shared = append(shared, uv)
		}
	}
	return shared
}

// SharedUVCenter returns the mean coordinate of the UVs two faces share.
// ok is false when they share none.
func SharedUVCenter(m core.MeshQuery, f1, f2 int) (r2.Vec, bool) {
	shared := SharedUVs(m, f1, f2)
	if len(shared) == 0 {
		return r2.Vec{}, false
	}
	uvs := m.UVs()
	var sum r2.Vec
	for _, uv := range shared {
		sum = r2.Add(sum, uvs[uv])
	}
	return r2.Scale(1/float64(len(shared)), sum), true
}

// EdgeVector returns the edge's normalized direction in its first-seen
// orientation. ok is false for an out-of-range or zero-length edge.
func EdgeVector(m core.MeshQuery, edge int) (r3.Vec, bool) {
	a, b := m.EdgeVertices(edge)
	if a < 0 || b < 0 {
		return r3.Vec{}, false
	}
	points := m.Points()
	v := r3.Sub(points[b], points[a])
	if r3.Norm(v) == 0 {
		return r3.Vec{}, false
	}
	return r3.Unit(v), true
}

// DominantAxis returns the axis of the vector's largest absolute
// component; ties resolve in X, Y, Z order.
func DominantAxis(v r3.Vec) mirror.Axis {
	axis := mirror.AxisX
	best := math.Abs(v.X)
	if math.Abs(v.Y) > best {
		axis, best = mirror.AxisY, math.Abs(v.Y)
	}
	if math.Abs(v.Z) > best {
		axis = mirror.AxisZ
	}
	return axis
}

// UVsHorizontal reports whether two UV coordinates are separated more
// along U than along V, marking a horizontally running seam.
func UVsHorizontal(a, b r2.Vec) bool {
	return math.Abs(a.X-b.X) > math.Abs(a.Y-b.Y)
}

// BasisFromMatrix extracts a camera basis from a flattened row-major 4x4
// world matrix: right from row 0, up from row 1, forward as the negated
// row 2 (cameras look down their local -Z). All three are normalized.
func BasisFromMatrix(vals []float64) (Basis, error) {
	if len(vals) != 16 {
		return Basis{}, ErrMatrix
	}
	return Basis{
		Right:   unit(r3.Vec{X: vals[0], Y: vals[1], Z: vals[2]}),
		Up:      unit(r3.Vec{X: vals[4], Y: vals[5], Z: vals[6]}),
		Forward: unit(r3.Vec{X: -vals[8], Y: -vals[9], Z: -vals[10]}),
	}, nil
}

// IntendedAxis picks the world mirror axis for a seam edge viewed through
// the given camera: the dominant axis of whichever screen direction
// (right or up) runs across the edge rather than along it. positive
// reports the chosen basis vector's sign on that axis, so callers can
// flip side order when the camera looks from the other half-space.
func IntendedAxis(edgeDir r3.Vec, b Basis) (axis mirror.Axis, positive bool) {
	edge := unit(edgeDir)
	right := unit(b.Right)
	up := unit(b.Up)

	var chosen r3.Vec
	switch DominantAxis(edge) {
	case DominantAxis(right):
		chosen = up
	case DominantAxis(up):
		chosen = right
	default:
		if math.Abs(r3.Dot(right, edge)) < math.Abs(r3.Dot(up, edge)) {
			chosen = right
		} else {
			chosen = up
		}
	}

	axis = DominantAxis(chosen)
	return axis, axisComponent(chosen, axis) >= 0
}

// faceVertices resolves a face's vertex loop through the winding engine,
// since MeshQuery exposes edges only.
func faceVertices(m core.MeshQuery, face int) []int {
	edges := m.FaceEdges(face)
	if len(edges) == 0 {
		return nil
	}
	return winding.OrderedFaceVertices(m, edges)
}

func axisComponent(v r3.Vec, axis mirror.Axis) float64 {
	switch axis {
	case mirror.AxisX:
		return v.X
	case mirror.AxisY:
		return v.Y
	default:
		return v.Z
	}
}

func unit(v r3.Vec) r3.Vec {
	if r3.Norm(v) == 0 {
		return v
	}
	return r3.Unit(v)
}
