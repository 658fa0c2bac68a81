// Package mirror applies the MIRROR / FLIP / AVERAGE transforms to the
// component pairs discovered by traversal and mapping, reflecting them
// about an axis-aligned plane through a reference center.
package mirror

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/core"
	"github.com/katalvlaran/topomirror/mapping"
)

// Apply runs the selected mode over every mapped vertex pair along the
// chosen world axis, then commits the point buffer.
//
// The whole mapping is validated against the buffer before anything is
// computed, and all math happens on a scratch copy: on error the mesh is
// untouched, on success the buffer is rewritten in full and Commit fires
// exactly once. Pairs are applied sequentially in mapping order, each pair
// reading the results of the previous ones.
//
// Returns ErrMeshNil, ErrMappingNil, ErrMode, ErrAxis or ErrComponentRange.
func Apply(m core.MeshQuery, cm *mapping.ComponentMapping, center r3.Vec, mode Mode, axis Axis) error {
	if m == nil {
		return ErrMeshNil
	}
	if cm == nil {
		return ErrMappingNil
	}
	if err := validateMode(mode); err != nil {
		return err
	}
	if axis < AxisX || axis > AxisZ {
		return fmt.Errorf("%w: %d", ErrAxis, int(axis))
	}

	points := m.Points()
	if err := validateRange(cm, len(points)); err != nil {
		return err
	}

	work := append([]r3.Vec(nil), points...)
	applyPairs(work, cm, center, mode, int(axis))

	copy(points, work)
	m.Commit()
	return nil
}

// ApplyUV is Apply for the UV layer: the same modes along a UV axis with a
// 2D center. UV pairs run through the shared transform core embedded in 3D
// with the third component pinned at zero.
//
// Returns ErrNoUVLayer on a mesh without UVs, otherwise the same errors as
// Apply.
func ApplyUV(m core.MeshQuery, cm *mapping.ComponentMapping, center r2.Vec, mode Mode, axis UVAxis) error {
	if m == nil {
		return ErrMeshNil
	}
	if cm == nil {
		return ErrMappingNil
	}
	if err := validateMode(mode); err != nil {
		return err
	}
	if axis < AxisU || axis > AxisV {
		return fmt.Errorf("%w: %d", ErrAxis, int(axis))
	}

	uvs := m.UVs()
	if len(uvs) == 0 {
		return ErrNoUVLayer
	}
	if err := validateRange(cm, len(uvs)); err != nil {
		return err
	}

	work := make([]r3.Vec, len(uvs))
	for i, uv := range uvs {
		work[i] = r3.Vec{X: uv.X, Y: uv.Y}
	}
	applyPairs(work, cm, r3.Vec{X: center.X, Y: center.Y}, mode, int(axis))

	for i, v := range work {
		uvs[i] = r2.Vec{X: v.X, Y: v.Y}
	}
	m.Commit()
	return nil
}

func validateMode(mode Mode) error {
	switch mode {
	case ModeMirror, ModeFlip, ModeAverage:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrMode, int(mode))
	}
}

// validateRange rejects any mapped component outside [0, size).
func validateRange(cm *mapping.ComponentMapping, size int) error {
	for i := 0; i < cm.Len(); i++ {
		src, dst := cm.At(i)
		if src < 0 || src >= size {
			return fmt.Errorf("%w: source %d, buffer size %d", ErrComponentRange, src, size)
		}
		if dst < 0 || dst >= size {
			return fmt.Errorf("%w: target %d, buffer size %d", ErrComponentRange, dst, size)
		}
	}
	return nil
}

// applyPairs transforms the scratch buffer pair-by-pair in mapping order.
func applyPairs(buf []r3.Vec, cm *mapping.ComponentMapping, center r3.Vec, mode Mode, axis int) {
	for i := 0; i < cm.Len(); i++ {
		src, dst := cm.At(i)
		if src == dst {
			applySelf(&buf[src], center, axis)
			continue
		}
		applyPair(&buf[src], &buf[dst], center, mode, axis)
	}
}

// applyPair reflects one (a, b) pair about the plane component[axis] == c.
func applyPair(a, b *r3.Vec, center r3.Vec, mode Mode, axis int) {
	c := component(center, axis)
	switch mode {
	case ModeMirror:
		// b becomes a reflected: a's position with the axis flipped.
		nb := *a
		setComponent(&nb, axis, c+(c-component(*a, axis)))
		*b = nb

	case ModeFlip:
		// Both sides swap through the plane simultaneously.
		oldA := *a
		na := *b
		setComponent(&na, axis, c-(component(*b, axis)-c))
		nb := oldA
		setComponent(&nb, axis, c-(component(oldA, axis)-c))
		*a, *b = na, nb

	case ModeAverage:
		// Both sides settle at the mean signed distance, sign preserved
		// per side; the remaining components meet in the middle.
		distA := component(*a, axis) - c
		distB := c - component(*b, axis)
		avg := (distA + distB) / 2
		mean := r3.Scale(0.5, r3.Add(*a, *b))
		na, nb := mean, mean
		setComponent(&na, axis, c+avg)
		setComponent(&nb, axis, c-avg)
		*a, *b = na, nb
	}
}

// applySelf handles a seam-resident component (its own partner): every
// mode pins the axis to the plane and leaves the rest alone. ModeAverage's
// self-average degenerates to the same identity.
func applySelf(v *r3.Vec, center r3.Vec, axis int) {
	setComponent(v, axis, component(center, axis))
}

func component(v r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setComponent(v *r3.Vec, axis int, val float64) {
	switch axis {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
}
