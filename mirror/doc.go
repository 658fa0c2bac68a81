// Package mirror rewrites mesh geometry so that mapped component pairs
// become exact reflections about an axis-aligned plane.
//
// What:
//
//   - Apply: transform the point buffer over a vertex-space mapping along
//     AxisX, AxisY or AxisZ through a 3D center.
//   - ApplyUV: transform the UV buffer over a UV-space mapping along AxisU
//     or AxisV through a 2D center.
//
// Three modes:
//
//   - ModeMirror: the source side is authoritative; each target component
//     becomes the source reflected through the plane. Idempotent.
//   - ModeFlip: both sides pass through the plane and trade places.
//     Applying it twice restores the original geometry.
//   - ModeAverage: both sides move to the mean of their signed distances
//     from the plane, and the remaining coordinates meet at the pairwise
//     midpoint. The result is symmetric and stable under re-application.
//
// A component mapped to itself sits on the seam: all three modes pin its
// plane coordinate to the center and leave the other coordinates alone.
//
// Mutation model:
//
// The mapping is validated against the buffer before any math runs, and
// the transform operates on a scratch copy. A failed call leaves the mesh
// byte-for-byte untouched; a successful call rewrites the buffer and
// commits exactly once. Pairs apply sequentially in mapping order, so a
// later pair reads the coordinates an earlier pair already wrote.
//
// Complexity: O(k) time and O(n) scratch space for k mapped pairs over a
// buffer of n components.
//
// Errors: ErrMeshNil, ErrMappingNil, ErrMode, ErrAxis, ErrComponentRange,
// ErrNoUVLayer.
package mirror
