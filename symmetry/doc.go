// Package symmetry discovers bilateral topological symmetry on a polygon
// mesh: a dual synchronized breadth-first traversal over the face-adjacency
// graph, anchored at a user-chosen seam edge.
//
// What
//
//   - Traverse walks two BFS frontiers at once, one per side of the seam,
//     dequeuing exactly one face from each side per step.
//   - The left side enumerates each face's neighbors in forward winding
//     order from its entry edge; the right side enumerates reversed.
//     Matching loop positions then reference mirror-image neighbors.
//   - Pairs are recorded only when neither face was visited on either side;
//     a face may be its own partner (it straddles the seam).
//   - Returns a Result with two insertion-ordered VisitedMaps, aligned
//     pair-by-pair, or an explicit error. Never a partial result.
//
// Why
//
//	Finding "the other side" of a mesh without markup is a correspondence
//	problem: any asymmetry must be detected, not papered over. Keeping the
//	two frontiers in strict lockstep means every divergence (neighbor
//	counts, queue lengths) is caught the moment it appears and surfaces as
//	ErrAsymmetric instead of a wrong mapping.
//
// UV seams
//
//	With WithUVConnectivity, a neighbor across an edge is accepted only if
//	both faces carry identical UV indices at the edge's endpoint vertices.
//	UV-space mirroring must not cross a texture discontinuity, so the walk
//	treats seams as walls.
//
// Determinism
//
//	Neighbor enumeration follows the winding order anchored at the entry
//	edge; no set or map iteration order is involved. The same mesh and seed
//	always produce the same VisitedMaps.
//
// Complexity (F = faces reached, a = max face arity)
//
//   - Time:   O(F · a) edge-loop work, each face visited at most once.
//   - Memory: O(F) for the two queues and visited maps.
//
// Options
//
//   - DefaultOptions(): background Context, vertex connectivity, no face
//     limit, no-op pair hook.
//   - WithContext(ctx):      set a custom context for cancellation.
//   - WithUVConnectivity():  stop at UV seams (required for UV mapping).
//   - WithMaxFaces(n):       cap visited faces per side (n > 0).
//   - WithOnPair(fn):        observe each recorded pair in order.
//
// Errors
//
//   - ErrMeshNil          if the mesh is nil.
//   - ErrSeedNotManifold  if a seed edge does not border exactly two faces.
//   - ErrSeedFace         if a seed face does not border its seed edge.
//   - ErrAsymmetric       if the sides desynchronize at any step.
//   - ErrFaceLimit        if WithMaxFaces is exceeded.
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - Context cancellation errors from ctx.Done().
package symmetry
