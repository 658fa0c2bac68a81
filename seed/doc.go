// Package seed turns a selected seam edge into everything the engines
// need: a traversal seed with the sides in the intended order, the mirror
// axis, and the mirror plane's reference center.
//
// What
//
//   - PickSides: vertex-space prepare step. Axis from an explicit option,
//     a camera basis, or the face-center offset; sides ordered by world
//     position; center from the faces' shared vertices.
//   - PickSidesUV: UV-space prepare step. Requires exactly two shared UVs
//     across the seam; axis from the seam's UV orientation; sides ordered
//     by UV centers; center from the shared UV pair.
//   - Standalone helpers the prepare steps are built from: FaceCenter,
//     FaceUVCenter, SharedVertices/SharedUVs and their centers,
//     EdgeVector, DominantAxis, UVsHorizontal, BasisFromMatrix,
//     IntendedAxis.
//
// Why
//
// Side selection is front-end policy, not engine semantics: the traversal
// accepts any valid seed. Keeping the heuristics in one package lets
// interactive hosts and the CLI share them without re-deriving the rules.
//
// Orientation
//
// WithLeftToRight(true) sources the side with the lesser coordinate along
// the mirror axis; WithTopToBottom(true) sources the upper side when the
// axis is Y (world) or V (UV). Both default to true. A camera basis whose
// chosen direction points negative flips the order once more, so the
// visual left matches the user's left.
//
// Errors: ErrMeshNil, ErrNotManifold, ErrUVSeed, ErrNoUVLayer, ErrMatrix,
// ErrOptionViolation.
package seed
