// Package topomirror restores bilateral symmetry on polygon meshes by
// walking topology, not positions: pick a seam edge and the library
// mirrors one side of the mesh onto the other, vertex by paired vertex.
//
// 🚀 What is topomirror?
//
//	A mesh-processing toolkit built around a dual breadth-first walk:
//		• Core primitives: vertices, first-seen edge IDs, faces, UV layers
//		• Winding: ordered edge loops and per-face vertex extraction
//		• Symmetry: the lockstep walk outward from a seam edge
//		• Mapping: insertion-ordered source→destination component pairs
//		• Mirror: MIRROR, FLIP and AVERAGE transforms in vertex or UV space
//		• Seed: side/axis/center selection, optionally camera-aware
//		• I/O: Wavefront OBJ import/export with UV round-tripping
//
// ✨ Why choose topomirror?
//
//   - Topology-first – symmetry survives drifted, deformed geometry
//   - All-or-nothing – transforms validate fully before touching a buffer
//   - Deterministic – identical input always pairs identical components
//   - Extensible – hooks (OnPair…) observe the walk without changing it
//
// Under the hood, everything is organized under small subpackages:
//
//	core/     — Mesh, MeshQuery, topology tables & revision tracking
//	winding/  — edge-loop rotation and ordered vertex/UV extraction
//	symmetry/ — the dual BFS over face pairs
//	mapping/  — zipped component mappings (vertex or UV space)
//	mirror/   — the three transforms + axis/center math
//	seed/     — seam-side policy: axis, orientation, centers
//	snapshot/ — undo buffers for points and UVs
//	builder/  — symmetric test shapes (strip, plane, cube)
//	objfile/  — OBJ parse/write
//
// Quick ASCII example:
//
//	5───6───7───8───9
//	│ L │ L ║ R │ R │
//	0───1───2───3───4
//
//	a quad strip whose seam ║ splits faces into left and right halves.
//
// Dive into examples/ for full pipeline walkthroughs, or cmd/topomirror
// for the command-line front end.
//
//	go get github.com/katalvlaran/topomirror
package topomirror
