// Package seed provides option and error definitions plus the plan types
// returned by the side-selection helpers.
package seed

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/mirror"
)

// Sentinel errors for seed selection.
var (
	// ErrMeshNil is returned if a nil mesh is passed.
	ErrMeshNil = errors.New("seed: mesh is nil")

	// ErrNotManifold is returned when the seam edge does not border
	// exactly two faces, or the chosen faces share no components.
	ErrNotManifold = errors.New("seed: seam edge must border exactly two faces")

	// ErrUVSeed is returned when the two seed faces do not share exactly
	// two UVs, the precondition for a UV-space mirror.
	ErrUVSeed = errors.New("seed: seed faces must share exactly two UVs")

	// ErrNoUVLayer is returned when UV-space selection runs on a mesh
	// without a UV layer.
	ErrNoUVLayer = errors.New("seed: mesh has no UV layer")

	// ErrMatrix is returned for a world matrix that is not 16 values.
	ErrMatrix = errors.New("seed: world matrix needs 16 values")

	// ErrOptionViolation is returned when an option carries an invalid value.
	ErrOptionViolation = errors.New("seed: option violation")
)

// Basis is a camera's world-space orientation. Forward points where the
// camera looks.
type Basis struct {
	Right   r3.Vec
	Up      r3.Vec
	Forward r3.Vec
}

// VertexPlan is the vertex-space mirror setup PickSides settled on.
type VertexPlan struct {
	// Axis is the world axis to mirror along.
	Axis mirror.Axis

	// Center is the mirror plane reference point, the mean of the seed
	// faces' shared vertex positions.
	Center r3.Vec

	// Swapped reports that the sides were reordered against the seam
	// edge's native adjacency order.
	Swapped bool
}

// UVPlan is the UV-space mirror setup PickSidesUV settled on.
type UVPlan struct {
	// Axis is the UV axis to mirror along.
	Axis mirror.UVAxis

	// Center is the mean of the two shared UV coordinates.
	Center r2.Vec

	// Swapped reports that the sides were reordered against the seam
	// edge's native adjacency order.
	Swapped bool
}

// Option tunes side selection.
type Option func(*PickOptions)

// PickOptions collects the resolved selection settings.
type PickOptions struct {
	basis  *Basis
	axis   *mirror.Axis
	uvAxis *mirror.UVAxis

	leftToRight bool
	topToBottom bool

	err error
}

// DefaultOptions returns the baseline settings: no camera, no forced axis,
// left-to-right and top-to-bottom orientation.
func DefaultOptions() PickOptions {
	return PickOptions{leftToRight: true, topToBottom: true}
}

// WithBasis supplies a camera basis; PickSides derives the mirror axis
// and its orientation from it.
func WithBasis(b Basis) Option {
	return func(o *PickOptions) { o.basis = &b }
}

// WithAxis forces the world mirror axis instead of deriving one.
func WithAxis(a mirror.Axis) Option {
	return func(o *PickOptions) {
		if a < mirror.AxisX || a > mirror.AxisZ {
			o.err = ErrOptionViolation
			return
		}
		o.axis = &a
	}
}

// WithUVAxis forces the UV mirror axis instead of deriving one from the
// seam orientation.
func WithUVAxis(a mirror.UVAxis) Option {
	return func(o *PickOptions) {
		if a < mirror.AxisU || a > mirror.AxisV {
			o.err = ErrOptionViolation
			return
		}
		o.uvAxis = &a
	}
}

// WithLeftToRight sets the horizontal orientation: true sources the side
// with the lesser coordinate along the mirror axis. Default true.
func WithLeftToRight(v bool) Option {
	return func(o *PickOptions) { o.leftToRight = v }
}

// WithTopToBottom sets the vertical orientation: true sources the upper
// side when mirroring along Y or V. Default true.
func WithTopToBottom(v bool) Option {
	return func(o *PickOptions) { o.topToBottom = v }
}
