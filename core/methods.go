// Read accessors and the commit primitive for Mesh.
// All methods are O(1) unless noted; none allocate on the query path.

package core

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// NumVertices returns the size of the point buffer.
func (m *Mesh) NumVertices() int { return len(m.points) }

// NumEdges returns the number of derived edges.
func (m *Mesh) NumEdges() int { return len(m.edges) }

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// NumUVs returns the size of the UV buffer (0 without a UV layer).
func (m *Mesh) NumUVs() int { return len(m.uvs) }

// HasUVs reports whether a UV layer is attached.
func (m *Mesh) HasUVs() bool { return m.faceUVs != nil }

// FaceVertices returns the face's vertex loop in native winding order,
// or nil for an out-of-range face. The slice is live; do not mutate.
func (m *Mesh) FaceVertices(face int) []int {
	if face < 0 || face >= len(m.faces) {
		return nil
	}
	return m.faces[face]
}

// FaceEdges returns the face's edge IDs in native winding order,
// or nil for an out-of-range face. The slice is live; do not mutate.
func (m *Mesh) FaceEdges(face int) []int {
	if face < 0 || face >= len(m.faceEdges) {
		return nil
	}
	return m.faceEdges[face]
}

// EdgeVertices returns the edge's endpoint vertex IDs in first-seen
// orientation, or (-1, -1) for an out-of-range edge.
func (m *Mesh) EdgeVertices(edge int) (int, int) {
	if edge < 0 || edge >= len(m.edges) {
		return -1, -1
	}
	return m.edges[edge][0], m.edges[edge][1]
}

// EdgeAdjacentFaces returns the faces bordering the edge in face-ID order,
// or nil for an out-of-range edge. The slice is live; do not mutate.
func (m *Mesh) EdgeAdjacentFaces(edge int) []int {
	if edge < 0 || edge >= len(m.edgeFaces) {
		return nil
	}
	return m.edgeFaces[edge]
}

// EdgeBetween looks up the edge joining two vertices, in either order.
func (m *Mesh) EdgeBetween(a, b int) (int, bool) {
	id, ok := m.edgeIndex[canonicalPair(a, b)]
	return id, ok
}

// FaceVertexUV resolves a vertex of the face to its UV index in the active
// layer. O(arity of the face).
func (m *Mesh) FaceVertexUV(face, vertex int) (int, bool) {
	if m.faceUVs == nil || face < 0 || face >= len(m.faces) {
		return -1, false
	}
	for corner, v := range m.faces[face] {
		if v == vertex {
			uv := m.faceUVs[face][corner]
			if uv < 0 {
				return -1, false
			}
			return uv, true
		}
	}
	return -1, false
}

// Points exposes the live vertex position buffer.
func (m *Mesh) Points() []r3.Vec { return m.points }

// UVs exposes the live UV coordinate buffer.
func (m *Mesh) UVs() []r2.Vec { return m.uvs }

// Commit marks the surface dirty after in-place buffer mutation.
func (m *Mesh) Commit() { m.revision++ }

// Revision returns the number of commits applied so far. Fresh meshes
// start at 0; hosts use the counter to notice pending recomputation.
func (m *Mesh) Revision() int { return m.revision }
