// Package symmetry provides tunable options, error definitions and result
// types for the dual synchronized traversal over a mesh's face-adjacency
// graph.
package symmetry

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrMeshNil is returned if a nil mesh is passed.
	ErrMeshNil = errors.New("symmetry: mesh is nil")

	// ErrSeedNotManifold is returned when a seed edge does not border
	// exactly two faces.
	ErrSeedNotManifold = errors.New("symmetry: seed edge is not two-manifold")

	// ErrSeedFace is returned when a seed face does not border its seed edge.
	ErrSeedFace = errors.New("symmetry: seed face does not border seed edge")

	// ErrAsymmetric is returned when the two sides desynchronize: the mesh
	// holds no topological symmetry across the given seed.
	ErrAsymmetric = errors.New("symmetry: sides desynchronized, no symmetry from this seed")

	// ErrFaceLimit is returned when WithMaxFaces is exceeded.
	ErrFaceLimit = errors.New("symmetry: visited face limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("symmetry: invalid option supplied")
)

// Seed anchors the traversal: two faces meeting the mirror plane and the
// edge each side enters through. Both edges are typically the same seam
// edge, approached from opposite faces.
type Seed struct {
	LeftFace  int
	RightFace int
	LeftEdge  int
	RightEdge int
}

// Entry is one traversal step: a face and the edge it was reached through.
type Entry struct {
	Face int
	Edge int
}

// Option configures traversal behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Traverse is invoked.
type Option func(*TraverseOptions)

// TraverseOptions holds parameters and callbacks to customize traversal.
type TraverseOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// UVConnectivity stops the walk at UV seams: a neighbor is only
	// accepted when both endpoint vertices of the shared edge carry the
	// same UV indices on both faces.
	UVConnectivity bool

	// MaxFaces, if > 0, caps the number of faces visited per side.
	// A value of 0 explicitly disables the limit.
	MaxFaces int

	// OnPair is called for every recorded left/right pair, the seed pair
	// included, in traversal order.
	OnPair func(left, right Entry)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a TraverseOptions with sane defaults:
//   - context.Background()
//   - vertex-space connectivity (UV seams ignored)
//   - no face limit (MaxFaces == 0)
//   - no-op OnPair hook.
func DefaultOptions() TraverseOptions {
	return TraverseOptions{
		Ctx:            context.Background(),
		UVConnectivity: false,
		MaxFaces:       0,
		OnPair:         func(Entry, Entry) {},
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *TraverseOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithUVConnectivity makes the traversal respect UV seams, as required
// before building a UV-space component mapping.
func WithUVConnectivity() Option {
	return func(o *TraverseOptions) {
		o.UVConnectivity = true
	}
}

// WithMaxFaces caps the number of faces visited per side.
//
//	n > 0: abort with ErrFaceLimit when a side would exceed n faces
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxFaces(n int) Option {
	return func(o *TraverseOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxFaces cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MaxFaces = 0
		default:
			o.MaxFaces = n
		}
	}
}

// WithOnPair registers a callback observing each recorded pair.
func WithOnPair(fn func(left, right Entry)) Option {
	return func(o *TraverseOptions) {
		if fn != nil {
			o.OnPair = fn
		}
	}
}

// VisitedMap is an insertion-ordered face → entry-edge record built by one
// side of the dual traversal. Insertion order is traversal order; it is the
// only correlation between the left and right results, so iteration must
// happen through At, never through an unordered map.
type VisitedMap struct {
	faces []int
	edges []int
	index map[int]int // face -> position in faces/edges
}

func newVisitedMap() *VisitedMap {
	return &VisitedMap{index: make(map[int]int)}
}

// record appends a face with its entry edge. Faces are recorded at most
// once per traversal, so positions never move.
func (vm *VisitedMap) record(face, edge int) {
	vm.index[face] = len(vm.faces)
	vm.faces = append(vm.faces, face)
	vm.edges = append(vm.edges, edge)
}

// Len returns the number of visited faces.
func (vm *VisitedMap) Len() int { return len(vm.faces) }

// Has reports whether the face was visited on this side.
func (vm *VisitedMap) Has(face int) bool {
	_, ok := vm.index[face]
	return ok
}

// EdgeOf returns the edge through which the face was first reached.
func (vm *VisitedMap) EdgeOf(face int) (int, bool) {
	i, ok := vm.index[face]
	if !ok {
		return -1, false
	}
	return vm.edges[i], true
}

// At returns the i-th visited face and its entry edge, in traversal order.
func (vm *VisitedMap) At(i int) (face, edge int) {
	return vm.faces[i], vm.edges[i]
}

// Faces returns the visited faces in traversal order.
// The slice is live; do not mutate.
func (vm *VisitedMap) Faces() []int { return vm.faces }

// Result holds the outcome of a successful traversal: one VisitedMap per
// side, equal in length, aligned pair-by-pair by insertion order.
type Result struct {
	Left  *VisitedMap
	Right *VisitedMap
}
