// Deep-copy support for Mesh.

package core

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Clone returns a deep copy of the mesh: buffers, loops, edge tables and the
// UV layer are all duplicated, so mutations on the clone never leak back.
// The revision counter restarts at 0.
//
// Complexity: O(V + E + F·arity).
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		points:    append([]r3.Vec(nil), m.points...),
		faces:     cloneLoops(m.faces),
		edges:     append([][2]int(nil), m.edges...),
		faceEdges: cloneLoops(m.faceEdges),
		edgeFaces: cloneLoops(m.edgeFaces),
		edgeIndex: make(map[[2]int]int, len(m.edgeIndex)),
	}
	for k, v := range m.edgeIndex {
		c.edgeIndex[k] = v
	}
	if m.faceUVs != nil {
		c.uvs = append([]r2.Vec(nil), m.uvs...)
		c.faceUVs = cloneLoops(m.faceUVs)
	}
	return c
}

// cloneLoops deep-copies a slice of int slices.
func cloneLoops(src [][]int) [][]int {
	if src == nil {
		return nil
	}
	dst := make([][]int, len(src))
	for i, loop := range src {
		dst[i] = append([]int(nil), loop...)
	}
	return dst
}
