// Package winding turns a face's native edge loop into a canonical cyclic
// order anchored at a chosen entry edge, optionally reversed, and derives
// the matching vertex and UV sequences.
package winding

import (
	"github.com/katalvlaran/topomirror/core"
)

// OrderedFaceEdges returns the face's edge loop rotated to begin at
// startEdge. With reverse, the first element stays fixed and the remainder
// is reversed, which preserves the entry edge while inverting the walk
// direction around the face.
//
// Returns an empty slice when startEdge is not part of the face or the face
// is unknown, signalling a face/edge mismatch to the caller.
func OrderedFaceEdges(m core.MeshQuery, face, startEdge int, reverse bool) []int {
	loop := m.FaceEdges(face)

	// 1. Locate the entry edge inside the native loop.
	start := -1
	for i, e := range loop {
		if e == startEdge {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	// 2. Rotate so the loop begins at the entry edge.
	n := len(loop)
	ordered := make([]int, 0, n)
	ordered = append(ordered, loop[start:]...)
	ordered = append(ordered, loop[:start]...)

	// 3. Optionally reverse everything after the fixed entry edge.
	if reverse {
		for i, j := 1, n-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}
	return ordered
}

// OrderedFaceVertices derives the vertex sequence matching an ordered edge
// loop: position i holds the "leading" vertex of edge i, the endpoint not
// shared with edge i+1 (cyclic). If both endpoints are shared (degenerate
// loop), the first shared endpoint is used instead. The result always has
// exactly one vertex per edge.
func OrderedFaceVertices(m core.MeshQuery, orderedEdges []int) []int {
	n := len(orderedEdges)
	if n == 0 {
		return nil
	}
	verts := make([]int, 0, n)
	for i, e := range orderedEdges {
		a, b := m.EdgeVertices(e)
		na, nb := m.EdgeVertices(orderedEdges[(i+1)%n])
		switch {
		case a != na && a != nb:
			verts = append(verts, a)
		case b != na && b != nb:
			verts = append(verts, b)
		default:
			verts = append(verts, a)
		}
	}
	return verts
}

// OrderedFaceUVs resolves the ordered vertex sequence of a face to UV
// indices in the active layer. Vertices without a UV assignment are
// silently skipped, so the result may be shorter than the edge loop.
func OrderedFaceUVs(m core.MeshQuery, face int, orderedEdges []int) []int {
	verts := OrderedFaceVertices(m, orderedEdges)
	if verts == nil {
		return nil
	}
	uvs := make([]int, 0, len(verts))
	for _, v := range verts {
		if uv, ok := m.FaceVertexUV(face, v); ok {
			uvs = append(uvs, uv)
		}
	}
	return uvs
}
