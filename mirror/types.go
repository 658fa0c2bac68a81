// Package mirror provides the mode and axis selectors plus error
// definitions for the transform engine.
package mirror

import "errors"

//go:generate go tool stringer -type=Mode -output=mode_string.go
//go:generate go tool stringer -type=Axis -output=axis_string.go
//go:generate go tool stringer -type=UVAxis -output=uvaxis_string.go

// Mode selects the numeric operation applied to each mapped pair.
// The set is closed: every switch over Mode handles all three.
type Mode int

const (
	// ModeMirror reflects the source onto the destination: the source side
	// stays put, the destination side is overwritten.
	ModeMirror Mode = iota

	// ModeFlip swaps the two sides through the mirror plane. Applying it
	// twice restores the original state.
	ModeFlip

	// ModeAverage symmetrizes both sides around the plane at their mean
	// distance, averaging the remaining components.
	ModeAverage
)

// Axis selects the reflection axis for vertex-space transforms.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// UVAxis selects the reflection axis for UV-space transforms.
type UVAxis int

const (
	AxisU UVAxis = iota
	AxisV
)

// Sentinel errors for transform application.
var (
	// ErrMeshNil is returned if a nil mesh is passed.
	ErrMeshNil = errors.New("mirror: mesh is nil")

	// ErrMappingNil is returned if a nil component mapping is passed.
	ErrMappingNil = errors.New("mirror: component mapping is nil")

	// ErrMode is returned for a Mode outside the closed set.
	ErrMode = errors.New("mirror: unknown mirror mode")

	// ErrAxis is returned for an axis that is not valid in this space.
	ErrAxis = errors.New("mirror: axis not valid for this space")

	// ErrComponentRange is returned when the mapping references a
	// component outside the target buffer. Nothing is mutated.
	ErrComponentRange = errors.New("mirror: mapped component outside buffer")

	// ErrNoUVLayer is returned when ApplyUV runs on a mesh without UVs.
	ErrNoUVLayer = errors.New("mirror: mesh has no UV layer")
)
