// Package mapping turns the two visited maps of a successful traversal into
// a component correspondence: vertex → vertex or UV → UV.
package mapping

import (
	"fmt"

	"github.com/katalvlaran/topomirror/core"
	"github.com/katalvlaran/topomirror/symmetry"
	"github.com/katalvlaran/topomirror/winding"
)

// Build walks the left and right visited maps in lockstep by insertion
// order, resolves each face pair to ordered component sequences through the
// winding engine (left forward, right reversed, both anchored at their
// entry edges), and zips the sequences position-by-position into one
// insertion-ordered mapping.
//
// A component touched by several faces is inserted several times; it keeps
// its first position and converges to the latest value. In UVSpace,
// unassigned corners shrink a face's sequence, so zipping truncates to the
// shorter side; the skipped positions go unmapped.
//
// Returns ErrMeshNil, ErrVisitedNil, ErrVisitedLenMismatch, ErrSpace or
// ErrNoUVLayer. The mesh is never mutated.
func Build(m core.MeshQuery, space Space, left, right *symmetry.VisitedMap) (*ComponentMapping, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	if left == nil || right == nil {
		return nil, ErrVisitedNil
	}
	if space != VertexSpace && space != UVSpace {
		return nil, fmt.Errorf("%w: %d", ErrSpace, int(space))
	}
	if space == UVSpace && len(m.UVs()) == 0 {
		return nil, ErrNoUVLayer
	}
	if left.Len() != right.Len() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrVisitedLenMismatch, left.Len(), right.Len())
	}

	cm := newComponentMapping()
	for i := 0; i < left.Len(); i++ {
		lf, le := left.At(i)
		rf, re := right.At(i)

		// 1. Anchor both faces' loops at their entry edges, right reversed.
		leftEdges := winding.OrderedFaceEdges(m, lf, le, false)
		rightEdges := winding.OrderedFaceEdges(m, rf, re, true)

		// 2. Resolve to the requested component space.
		var leftComp, rightComp []int
		if space == VertexSpace {
			leftComp = winding.OrderedFaceVertices(m, leftEdges)
			rightComp = winding.OrderedFaceVertices(m, rightEdges)
		} else {
			leftComp = winding.OrderedFaceUVs(m, lf, leftEdges)
			rightComp = winding.OrderedFaceUVs(m, rf, rightEdges)
		}

		// 3. Zip matching positions into the mapping.
		n := min(len(leftComp), len(rightComp))
		for j := 0; j < n; j++ {
			cm.set(leftComp[j], rightComp[j])
		}
	}
	return cm, nil
}
