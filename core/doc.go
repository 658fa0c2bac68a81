// Package core provides the indexed polygon-mesh data structure and the
// narrow MeshQuery interface consumed by the symmetry engines.
//
// What
//
//   - Mesh: points, per-face vertex loops in native winding order, a derived
//     edge table (edge = canonical vertex pair, IDs in first-seen order),
//     per-face edge loops, per-edge face adjacency, and an optional single
//     UV layer (coordinate buffer + per-corner UV indices).
//   - MeshQuery: the seven operations the algorithms need (FaceEdges,
//     EdgeVertices, EdgeAdjacentFaces, FaceVertexUV, Points, UVs, Commit).
//     Hosts with their own mesh representation implement it instead of
//     converting to Mesh.
//   - Construction validates every face loop (arity ≥ 3, vertex range,
//     no repeated vertex) and the UV layer's shape before anything is built.
//
// Why
//
//   - The symmetry discovery algorithms only consume adjacency and ordered
//     loops; binding them to a full host geometry API would drag in far more
//     surface than they use.
//   - Deriving edges from canonical vertex pairs makes adjacency exact and
//     deterministic: the same input always yields the same edge IDs.
//
// Mutation model
//
//	Points() and UVs() expose the live buffers. Callers mutate them in place,
//	in full, then call Commit() once; Commit bumps Revision(), which hosts
//	watch to schedule surface recomputation. Topology (faces, edges,
//	adjacency) is immutable after construction.
//
// Complexity (V = vertices, E = edges, F = faces)
//
//   - NewMesh: O(V + F·arity) time and space.
//   - All queries: O(1), except FaceVertexUV which is O(arity).
//   - Clone: O(V + E + F·arity).
//
// Errors
//
//   - ErrNoFaces         mesh constructed with an empty face list.
//   - ErrFaceTooSmall    face loop shorter than 3 vertices.
//   - ErrVertexRange     face references a vertex outside the point buffer.
//   - ErrDegenerateFace  face loop repeats a vertex.
//   - ErrUVShape         UV assignments misshaped against the face loops.
//   - ErrUVRange         corner references a UV outside the UV buffer.
package core
