// Package core defines the central Mesh type and the narrow MeshQuery
// surface consumed by the winding, symmetry, mapping and mirror engines.
//
// This file declares MeshQuery, Mesh, MeshOption, sentinel errors,
// and the NewMesh constructor with its validation rules.
package core

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for mesh construction.
var (
	// ErrNoFaces indicates a mesh was constructed without any face.
	ErrNoFaces = errors.New("core: mesh has no faces")

	// ErrFaceTooSmall indicates a face loop with fewer than 3 vertices.
	ErrFaceTooSmall = errors.New("core: face needs at least 3 vertices")

	// ErrVertexRange indicates a face referencing a vertex outside the point buffer.
	ErrVertexRange = errors.New("core: face references vertex out of range")

	// ErrDegenerateFace indicates a face loop visiting the same vertex twice.
	ErrDegenerateFace = errors.New("core: face repeats a vertex")

	// ErrUVShape indicates UV assignments whose shape does not match the face loops.
	ErrUVShape = errors.New("core: UV assignments do not match face loops")

	// ErrUVRange indicates a face corner referencing a UV outside the UV buffer.
	ErrUVRange = errors.New("core: face references UV out of range")
)

// MeshQuery is the read/write surface the symmetry algorithms need from a
// host mesh. Implementations must keep all returned slices stable for the
// lifetime of one discover-then-transform invocation.
//
// Index conventions: faces, edges, vertices and UVs are dense int IDs;
// -1 is the universal "absent" sentinel.
type MeshQuery interface {
	// FaceEdges returns the face's edge IDs in native winding order.
	// Edge i of the loop connects corner i to corner i+1 (cyclic).
	// Returns nil for an out-of-range face.
	FaceEdges(face int) []int

	// EdgeVertices returns the edge's two endpoint vertex IDs,
	// or (-1, -1) for an out-of-range edge.
	EdgeVertices(edge int) (int, int)

	// EdgeAdjacentFaces returns the faces bordering the edge: 0, 1 or 2
	// entries on a manifold-with-boundary mesh. Traversal requires
	// exactly 2 to cross an edge.
	EdgeAdjacentFaces(edge int) []int

	// FaceVertexUV resolves a vertex of the given face to its UV index in
	// the active UV layer. ok is false when the face does not contain the
	// vertex, when the corner has no UV assigned, or without a UV layer.
	FaceVertexUV(face, vertex int) (uv int, ok bool)

	// Points exposes the live vertex position buffer. Callers mutate it
	// in place and must Commit afterwards.
	Points() []r3.Vec

	// UVs exposes the live UV coordinate buffer; empty without a UV layer.
	UVs() []r2.Vec

	// Commit flushes buffer mutations and marks the surface dirty.
	Commit()
}

// Mesh is the in-memory MeshQuery implementation: an indexed polygon mesh
// with an optional single UV layer. Edge IDs and adjacency are derived once
// at construction and never change; only the point/UV buffers are mutable.
//
// Mesh is not safe for concurrent use. The discover-then-transform sequence
// is a single synchronous call per mesh.
type Mesh struct {
	points []r3.Vec
	faces  [][]int // vertex loops, native winding order

	uvs     []r2.Vec
	faceUVs [][]int // per face, per corner: UV index or -1; nil without a layer

	edges     [][2]int // endpoint vertex IDs, first-seen order
	faceEdges [][]int  // per face: edge IDs, native winding order
	edgeFaces [][]int  // per edge: adjacent face IDs, face-ID order

	edgeIndex map[[2]int]int // canonical (lo,hi) vertex pair -> edge ID

	revision int // bumped by Commit
}

// compile-time conformance check
var _ MeshQuery = (*Mesh)(nil)

// MeshOption configures optional Mesh features at construction time.
type MeshOption func(*meshConfig)

type meshConfig struct {
	uvs     []r2.Vec
	faceUVs [][]int
	hasUV   bool
}

// WithUVLayer attaches a single UV layer: coords is the UV coordinate
// buffer, assignments[face][corner] is the UV index of that corner
// (aligned with the face's vertex loop), with -1 marking an unassigned
// corner. Shape and ranges are validated by NewMesh.
func WithUVLayer(coords []r2.Vec, assignments [][]int) MeshOption {
	return func(c *meshConfig) {
		c.uvs = coords
		c.faceUVs = assignments
		c.hasUV = true
	}
}

// NewMesh builds a Mesh from a point buffer and per-face vertex loops,
// deriving the edge table and face adjacency.
//
//  1. Validate every face loop (arity, vertex range, no repeats).
//  2. Assign edge IDs in first-seen order over canonical vertex pairs.
//  3. Record per-face edge loops and per-edge face adjacency.
//  4. Validate and attach the UV layer, if configured.
//
// Returns ErrNoFaces, ErrFaceTooSmall, ErrVertexRange, ErrDegenerateFace,
// ErrUVShape or ErrUVRange on invalid input.
func NewMesh(points []r3.Vec, faces [][]int, opts ...MeshOption) (*Mesh, error) {
	var cfg meshConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(faces) == 0 {
		return nil, ErrNoFaces
	}

	m := &Mesh{
		points:    points,
		faces:     faces,
		faceEdges: make([][]int, len(faces)),
		edgeIndex: make(map[[2]int]int),
	}

	// 1-3. Validate loops and derive the edge tables.
	for f, loop := range faces {
		if len(loop) < 3 {
			return nil, ErrFaceTooSmall
		}
		seen := make(map[int]struct{}, len(loop))
		for _, v := range loop {
			if v < 0 || v >= len(points) {
				return nil, ErrVertexRange
			}
			if _, dup := seen[v]; dup {
				return nil, ErrDegenerateFace
			}
			seen[v] = struct{}{}
		}

		loopEdges := make([]int, len(loop))
		for i := range loop {
			a, b := loop[i], loop[(i+1)%len(loop)]
			loopEdges[i] = m.internEdge(a, b, f)
		}
		m.faceEdges[f] = loopEdges
	}

	// 4. Attach the UV layer.
	if cfg.hasUV {
		if len(cfg.faceUVs) != len(faces) {
			return nil, ErrUVShape
		}
		for f, corners := range cfg.faceUVs {
			if len(corners) != len(faces[f]) {
				return nil, ErrUVShape
			}
			for _, uv := range corners {
				if uv < -1 || uv >= len(cfg.uvs) {
					return nil, ErrUVRange
				}
			}
		}
		m.uvs = cfg.uvs
		m.faceUVs = cfg.faceUVs
	}

	return m, nil
}

// internEdge returns the edge ID for the vertex pair (a, b), allocating a
// fresh ID on first sight, and records face f as adjacent to it.
func (m *Mesh) internEdge(a, b, f int) int {
	key := canonicalPair(a, b)
	id, ok := m.edgeIndex[key]
	if !ok {
		id = len(m.edges)
		m.edgeIndex[key] = id
		m.edges = append(m.edges, [2]int{a, b})
		m.edgeFaces = append(m.edgeFaces, nil)
	}
	m.edgeFaces[id] = append(m.edgeFaces[id], f)
	return id
}

// canonicalPair orders a vertex pair so (a,b) and (b,a) intern identically.
func canonicalPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
