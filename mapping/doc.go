// Package mapping builds the vertex-to-vertex or UV-to-UV correspondence
// out of a completed dual traversal.
//
// What
//
//   - Build consumes the two insertion-ordered visited maps, pairs face i
//     of the left side with face i of the right side, and zips their
//     winding-ordered component sequences into one ComponentMapping.
//   - ComponentMapping preserves insertion order, lets repeated insertions
//     converge to the newest value, and answers IsFixed for seam-resident
//     components (key == value).
//
// Why
//
//	Once traversal is done, insertion order is the only correlation left
//	between the two sides; iterating anything unordered here would pair
//	arbitrary faces. The same goes for the mapping itself: the mirror
//	engine applies pairs sequentially, so the order must be reproducible.
//
// Spaces
//
//   - VertexSpace: positions resolve through OrderedFaceVertices.
//   - UVSpace: positions resolve through OrderedFaceUVs; corners without a
//     UV assignment are skipped, so a face's two sequences may differ in
//     length and zipping truncates to the shorter one. A mesh without a UV
//     layer is rejected with ErrNoUVLayer.
//
// Complexity (P = visited face pairs, a = max face arity)
//
//   - Time:   O(P · a²), the a² being per-corner UV resolution; a in practice.
//   - Memory: O(distinct components).
//
// Errors
//
//   - ErrMeshNil             if the mesh is nil.
//   - ErrVisitedNil          if either visited map is nil.
//   - ErrVisitedLenMismatch  if the maps cannot be iterated in lockstep.
//   - ErrSpace               for an unknown Space value.
//   - ErrNoUVLayer           for UVSpace without a UV layer.
package mapping
