// Package mapping provides the component space selector, error definitions
// and the insertion-ordered mapping type produced by Build.
package mapping

import "errors"

//go:generate go tool stringer -type=Space -output=space_string.go

// Space selects which components a mapping correlates.
type Space int

const (
	// VertexSpace maps vertex IDs to vertex IDs.
	VertexSpace Space = iota

	// UVSpace maps UV indices to UV indices in the active layer.
	UVSpace
)

// Sentinel errors for mapping construction.
var (
	// ErrMeshNil is returned if a nil mesh is passed.
	ErrMeshNil = errors.New("mapping: mesh is nil")

	// ErrVisitedNil is returned if either visited map is nil.
	ErrVisitedNil = errors.New("mapping: visited map is nil")

	// ErrVisitedLenMismatch is returned when the two visited maps differ
	// in length and therefore cannot be iterated in lockstep.
	ErrVisitedLenMismatch = errors.New("mapping: visited maps differ in length")

	// ErrSpace is returned for an unknown component space.
	ErrSpace = errors.New("mapping: unknown component space")

	// ErrNoUVLayer is returned when UVSpace is requested on a mesh
	// without a UV layer.
	ErrNoUVLayer = errors.New("mapping: mesh has no UV layer")
)

// ComponentMapping is an insertion-ordered source → target component map.
// A key keeps the position of its first insertion; re-inserting it only
// updates the value (last writer wins). A key mapping to itself denotes a
// component on the mirror seam.
type ComponentMapping struct {
	keys []int
	vals map[int]int
}

func newComponentMapping() *ComponentMapping {
	return &ComponentMapping{vals: make(map[int]int)}
}

// set inserts or updates a pair, preserving first-insertion order.
func (cm *ComponentMapping) set(src, dst int) {
	if _, ok := cm.vals[src]; !ok {
		cm.keys = append(cm.keys, src)
	}
	cm.vals[src] = dst
}

// Len returns the number of distinct source components.
func (cm *ComponentMapping) Len() int { return len(cm.keys) }

// Get returns the target of a source component.
func (cm *ComponentMapping) Get(src int) (int, bool) {
	dst, ok := cm.vals[src]
	return dst, ok
}

// At returns the i-th pair in insertion order.
func (cm *ComponentMapping) At(i int) (src, dst int) {
	src = cm.keys[i]
	return src, cm.vals[src]
}

// Keys returns the source components in insertion order.
// The slice is live; do not mutate.
func (cm *ComponentMapping) Keys() []int { return cm.keys }

// IsFixed reports whether the source component maps to itself,
// marking a seam-resident component.
func (cm *ComponentMapping) IsFixed(src int) bool {
	dst, ok := cm.vals[src]
	return ok && dst == src
}
