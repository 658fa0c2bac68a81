// Package builder generates small deterministic meshes that are symmetric
// by construction, for tests, examples and the CLI gen command.
//
// What
//
//   - QuadStrip(n): 2n quads in a row along X with the seam column on x=0.
//   - Plane(nx, ny): an nx by ny quad grid centered on the origin.
//   - Cube(): a closed unit cube of 6 quads.
//
// Determinism
//
// The same shape with the same options always produces identical vertex,
// face and edge numbering, so fixtures can assert on concrete IDs.
//
// Options
//
//   - WithScale(s): multiply all coordinates, s > 0.
//   - WithOffset(v): translate after scaling.
//   - WithUVGrid(): attach a planar unit-square UV layer with one shared
//     UV index per vertex. Flat sheets only; Cube rejects it.
//
// Errors
//
//   - ErrSize: a dimension below its minimum.
//   - ErrOption: an invalid option value or an option the shape cannot
//     honor.
package builder
