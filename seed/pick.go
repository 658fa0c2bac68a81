// PickSides and PickSidesUV: the prepare step that turns a selected seam
// edge into a traversal seed plus a mirror plan.

package seed

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/core"
	"github.com/katalvlaran/topomirror/mirror"
	"github.com/katalvlaran/topomirror/symmetry"
)

// PickSides resolves a vertex-space mirror setup from a seam edge.
//
//  1. The seam must border exactly two faces; they become the candidate
//     sides in adjacency order.
//  2. Mirror axis: forced via WithAxis, derived from a WithBasis camera
//     (IntendedAxis over the edge direction), or, without either, the
//     dominant axis of the offset between the two face centers.
//  3. Side order: the source takes the lesser coordinate along the axis
//     for left-to-right, the greater for top-to-bottom (Y axis); a
//     negative camera direction flips the order once more.
//  4. Center: mean position of the faces' shared vertices.
//
// Both seed edges are the seam. Returns ErrMeshNil, ErrNotManifold or
// ErrOptionViolation.
func PickSides(m core.MeshQuery, seamEdge int, opts ...Option) (symmetry.Seed, VertexPlan, error) {
	if m == nil {
		return symmetry.Seed{}, VertexPlan{}, ErrMeshNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return symmetry.Seed{}, VertexPlan{}, o.err
	}

	adj := m.EdgeAdjacentFaces(seamEdge)
	if len(adj) != 2 {
		return symmetry.Seed{}, VertexPlan{}, fmt.Errorf("%w: edge %d borders %d face(s)",
			ErrNotManifold, seamEdge, len(adj))
	}
	a, b := adj[0], adj[1]
	ca, _ := FaceCenter(m, a)
	cb, _ := FaceCenter(m, b)

	var plan VertexPlan
	positive := true
	switch {
	case o.axis != nil:
		plan.Axis = *o.axis
	case o.basis != nil:
		dir, _ := EdgeVector(m, seamEdge)
		plan.Axis, positive = IntendedAxis(dir, *o.basis)
	default:
		plan.Axis = DominantAxis(r3.Sub(cb, ca))
	}

	// Normalize to lesser-coordinate-first, then orient.
	if axisComponent(ca, plan.Axis) > axisComponent(cb, plan.Axis) {
		a, b = b, a
	}
	if plan.Axis == mirror.AxisY {
		if o.topToBottom {
			a, b = b, a
		}
	} else if !o.leftToRight {
		a, b = b, a
	}
	if !positive {
		a, b = b, a
	}
	plan.Swapped = a != adj[0]

	center, ok := SharedVertexCenter(m, a, b)
	if !ok {
		return symmetry.Seed{}, VertexPlan{}, fmt.Errorf("%w: faces %d and %d share no vertex",
			ErrNotManifold, a, b)
	}
	plan.Center = center

	return symmetry.Seed{LeftFace: a, RightFace: b, LeftEdge: seamEdge, RightEdge: seamEdge}, plan, nil
}

// PickSidesUV resolves a UV-space mirror setup from a seam edge.
//
//  1. The mesh needs a UV layer, the seam exactly two adjacent faces, and
//     the faces exactly two shared UVs (the seam's endpoints in UV space).
//  2. Mirror axis: forced via WithUVAxis, or derived from the seam's UV
//     orientation: a horizontally running seam mirrors along V, a
//     vertically running one along U.
//  3. Side order: the faces' UV centers are compared along the axis; the
//     source side is the lesser U for left-to-right or the greater V for
//     top-to-bottom.
//  4. Center: mean of the two shared UV coordinates.
//
// Both seed edges are the seam. Returns ErrMeshNil, ErrNoUVLayer,
// ErrNotManifold, ErrUVSeed or ErrOptionViolation.
func PickSidesUV(m core.MeshQuery, seamEdge int, opts ...Option) (symmetry.Seed, UVPlan, error) {
	if m == nil {
		return symmetry.Seed{}, UVPlan{}, ErrMeshNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return symmetry.Seed{}, UVPlan{}, o.err
	}
	if len(m.UVs()) == 0 {
		return symmetry.Seed{}, UVPlan{}, ErrNoUVLayer
	}

	adj := m.EdgeAdjacentFaces(seamEdge)
	if len(adj) != 2 {
		return symmetry.Seed{}, UVPlan{}, fmt.Errorf("%w: edge %d borders %d face(s)",
			ErrNotManifold, seamEdge, len(adj))
	}
	a, b := adj[0], adj[1]

	shared := SharedUVs(m, a, b)
	if len(shared) != 2 {
		return symmetry.Seed{}, UVPlan{}, fmt.Errorf("%w: faces %d and %d share %d",
			ErrUVSeed, a, b, len(shared))
	}

	var plan UVPlan
	uvs := m.UVs()
	switch {
	case o.uvAxis != nil:
		plan.Axis = *o.uvAxis
	case UVsHorizontal(uvs[shared[0]], uvs[shared[1]]):
		plan.Axis = mirror.AxisV
	default:
		plan.Axis = mirror.AxisU
	}

	ca, okA := FaceUVCenter(m, a)
	cb, okB := FaceUVCenter(m, b)
	if okA && okB {
		var sorted, want bool
		if plan.Axis == mirror.AxisU {
			sorted = ca.X < cb.X
			want = o.leftToRight
		} else {
			sorted = ca.Y > cb.Y
			want = o.topToBottom
		}
		if sorted != want {
			a, b = b, a
		}
	}
	plan.Swapped = a != adj[0]

	center, _ := SharedUVCenter(m, a, b)
	plan.Center = center

	return symmetry.Seed{LeftFace: a, RightFace: b, LeftEdge: seamEdge, RightEdge: seamEdge}, plan, nil
}
