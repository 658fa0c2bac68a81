// Package symmetry implements the dual synchronized breadth-first traversal
// that discovers bilateral topological symmetry across a seam edge,
// producing two aligned face → entry-edge maps or an explicit failure.
package symmetry

import (
	"context"
	"fmt"

	"github.com/katalvlaran/topomirror/core"
	"github.com/katalvlaran/topomirror/winding"
)

// walker encapsulates mutable traversal state for both sides.
type walker struct {
	mesh core.MeshQuery
	opts TraverseOptions
	ctx  context.Context

	leftQueue  []Entry
	rightQueue []Entry

	left  *VisitedMap
	right *VisitedMap
}

// Traverse runs the dual synchronized BFS from the given seed, applying any
// number of functional Options.
//
// The left side walks each face's edge loop forward from its entry edge;
// the right side walks it reversed. Enumerating neighbors at matching loop
// positions is what makes the two frontiers visit mirror-image faces in
// lockstep. Any divergence (adjacency counts, queue lengths) means the mesh
// is not symmetric about the seed and aborts with ErrAsymmetric.
//
// Returns ErrMeshNil, ErrSeedNotManifold or ErrSeedFace for invalid input,
// ErrOptionViolation for bad options, ErrAsymmetric when no symmetry
// exists, ErrFaceLimit when WithMaxFaces is exceeded, or the context's
// error on cancellation. On error the result is always nil; there is no
// partial traversal output.
func Traverse(m core.MeshQuery, seed Seed, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate both seeds before any traversal state exists.
	if err := validateSeedSide(m, seed.LeftFace, seed.LeftEdge); err != nil {
		return nil, err
	}
	if err := validateSeedSide(m, seed.RightFace, seed.RightEdge); err != nil {
		return nil, err
	}

	w := &walker{
		mesh:  m,
		opts:  o,
		ctx:   o.Ctx,
		left:  newVisitedMap(),
		right: newVisitedMap(),
	}

	// Seed both sides as the first recorded pair.
	first := Entry{Face: seed.LeftFace, Edge: seed.LeftEdge}
	second := Entry{Face: seed.RightFace, Edge: seed.RightEdge}
	if err := w.record(first, second); err != nil {
		return nil, err
	}

	if err := w.loop(); err != nil {
		return nil, err
	}
	return &Result{Left: w.left, Right: w.right}, nil
}

// validateSeedSide checks the seed preconditions for one side: the edge
// must border exactly two faces, one of which is the seed face.
func validateSeedSide(m core.MeshQuery, face, edge int) error {
	adj := m.EdgeAdjacentFaces(edge)
	if len(adj) != 2 {
		return fmt.Errorf("%w: edge %d borders %d face(s)", ErrSeedNotManifold, edge, len(adj))
	}
	for _, f := range adj {
		if f == face {
			return nil
		}
	}
	return fmt.Errorf("%w: face %d, edge %d", ErrSeedFace, face, edge)
}

// loop processes both queues in lockstep until exhaustion, divergence,
// error, or cancellation.
func (w *walker) loop() error {
	for len(w.leftQueue) > 0 && len(w.rightQueue) > 0 {
		// cancellation check (once per step)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		l := w.dequeueLeft()
		r := w.dequeueRight()
		if err := w.expand(l, r); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) dequeueLeft() Entry {
	e := w.leftQueue[0]
	w.leftQueue = w.leftQueue[1:]
	return e
}

func (w *walker) dequeueRight() Entry {
	e := w.rightQueue[0]
	w.rightQueue = w.rightQueue[1:]
	return e
}

// expand enumerates both entries' neighbors in corresponding winding order,
// pairs them by position, and records every pair not yet seen on either
// side. Count or queue divergence means the sides stopped mirroring.
func (w *walker) expand(l, r Entry) error {
	leftAdj := w.adjacentFaces(l, false)
	rightAdj := w.adjacentFaces(r, true)

	// 1. Cardinality check: matching positions require matching counts.
	if len(leftAdj) != len(rightAdj) {
		return fmt.Errorf("%w: %d vs %d neighbors at faces %d/%d",
			ErrAsymmetric, len(leftAdj), len(rightAdj), l.Face, r.Face)
	}

	// 2. Pair by position; record only pairs unseen on both sides.
	for i := range leftAdj {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		la, ra := leftAdj[i], rightAdj[i]
		if w.seen(la.Face) || w.seen(ra.Face) {
			continue
		}
		if err := w.record(la, ra); err != nil {
			return err
		}
	}

	// 3. Sync check: paired recording keeps the queues equal; divergence
	// here means asymmetric branching slipped past the per-step counts.
	if len(w.leftQueue) != len(w.rightQueue) {
		return fmt.Errorf("%w: queue lengths %d vs %d after faces %d/%d",
			ErrAsymmetric, len(w.leftQueue), len(w.rightQueue), l.Face, r.Face)
	}
	return nil
}

// adjacentFaces walks the entry's edge loop (entry edge included, so the
// partner face across the seam is enumerated too) and collects the other
// face over each edge, honoring the UV-continuity filter when enabled.
// Neighbor order is the winding order, which is what keeps left and right
// positions aligned.
func (w *walker) adjacentFaces(e Entry, reverse bool) []Entry {
	ordered := winding.OrderedFaceEdges(w.mesh, e.Face, e.Edge, reverse)
	out := make([]Entry, 0, len(ordered))
	for _, edge := range ordered {
		for _, f := range w.mesh.EdgeAdjacentFaces(edge) {
			if f == e.Face {
				continue
			}
			if w.opts.UVConnectivity && !w.uvConnected(e.Face, f, edge) {
				continue
			}
			out = append(out, Entry{Face: f, Edge: edge})
		}
	}
	return out
}

// uvConnected reports whether two faces share the same UV indices at both
// endpoints of their shared edge. A mismatch marks a UV seam.
func (w *walker) uvConnected(cur, candidate, edge int) bool {
	a, b := w.mesh.EdgeVertices(edge)
	return uvID(w.mesh, cur, a) == uvID(w.mesh, candidate, a) &&
		uvID(w.mesh, cur, b) == uvID(w.mesh, candidate, b)
}

// uvID resolves a face's UV index at a vertex, -1 when absent.
func uvID(m core.MeshQuery, face, vertex int) int {
	uv, ok := m.FaceVertexUV(face, vertex)
	if !ok {
		return -1
	}
	return uv
}

// record stores a pair into both visited maps, fires OnPair, and enqueues
// both entries for expansion. Enforces the per-side face limit.
func (w *walker) record(l, r Entry) error {
	if w.opts.MaxFaces > 0 && w.left.Len()+1 > w.opts.MaxFaces {
		return fmt.Errorf("%w: limit %d", ErrFaceLimit, w.opts.MaxFaces)
	}
	w.left.record(l.Face, l.Edge)
	w.right.record(r.Face, r.Edge)
	w.opts.OnPair(l, r)
	w.leftQueue = append(w.leftQueue, l)
	w.rightQueue = append(w.rightQueue, r)
	return nil
}

// seen reports whether the face was already visited on either side.
// Checking both sides prevents double-mapping a seam-straddling face.
func (w *walker) seen(face int) bool {
	return w.left.Has(face) || w.right.Has(face)
}
