// Package winding provides the face-winding primitives shared by the
// symmetry traversal and the component mapping builder.
//
// What
//
//   - OrderedFaceEdges: rotate a face's native edge loop to begin at an
//     entry edge; optionally keep the entry fixed and reverse the rest.
//   - OrderedFaceVertices: the "leading" vertex per loop position (the
//     endpoint not shared with the next edge), one vertex per edge.
//   - OrderedFaceUVs: the same positions resolved to UV indices in the
//     active layer, silently skipping unassigned vertices.
//
// Why
//
//	Two faces meeting across a seam enumerate their loops with opposite
//	winding. Anchoring both loops at the shared edge and reversing one of
//	them makes the sequences correspond position-by-position, which is the
//	property the dual traversal and the mapping builder are built on.
//
// Determinism
//
//	Results depend only on the mesh's native loop order and the entry edge;
//	no map iteration is involved. The degenerate leading-vertex fallback
//	picks the first endpoint, so even malformed loops order stably.
//
// Complexity
//
//	All operations are O(arity) per face with a single allocation.
//
// Errors
//
//	No error values: a face/edge mismatch yields an empty edge loop, and
//	missing UV assignments are skipped. Callers decide whether either
//	condition is fatal.
package winding
