// Package snapshot captures a mesh's mutable buffers and restores them
// later, giving hosts a one-call undo for mirror operations.
package snapshot

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/core"
)

var (
	// ErrMeshNil is returned if a nil mesh is passed.
	ErrMeshNil = errors.New("snapshot: mesh is nil")

	// ErrShape is returned when the mesh's buffer sizes no longer match
	// the snapshot, so the copy would be misaligned.
	ErrShape = errors.New("snapshot: buffer sizes differ from snapshot")
)

// Snapshot holds deep copies of a mesh's point and UV buffers taken at a
// single moment. It stays valid independently of later mesh mutations.
type Snapshot struct {
	points []r3.Vec
	uvs    []r2.Vec
}

// Take copies both mutable buffers out of the mesh.
func Take(m core.MeshQuery) (*Snapshot, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	return &Snapshot{
		points: append([]r3.Vec(nil), m.Points()...),
		uvs:    append([]r2.Vec(nil), m.UVs()...),
	}, nil
}

// NumPoints returns the size of the captured point buffer.
func (s *Snapshot) NumPoints() int { return len(s.points) }

// NumUVs returns the size of the captured UV buffer.
func (s *Snapshot) NumUVs() int { return len(s.uvs) }

// Restore copies the captured buffers back into the mesh and commits once.
// The mesh must still have the buffer sizes it had at Take time; topology
// edits in between make the snapshot unusable.
func (s *Snapshot) Restore(m core.MeshQuery) error {
	if m == nil {
		return ErrMeshNil
	}
	points, uvs := m.Points(), m.UVs()
	if len(points) != len(s.points) || len(uvs) != len(s.uvs) {
		return fmt.Errorf("%w: points %d vs %d, uvs %d vs %d",
			ErrShape, len(points), len(s.points), len(uvs), len(s.uvs))
	}
	copy(points, s.points)
	copy(uvs, s.uvs)
	m.Commit()
	return nil
}
