// Package objfile reads and writes Wavefront OBJ geometry as core meshes,
// carrying the UV layer through vt directives when present.
package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/core"
)

var (
	// ErrSyntax is returned for malformed OBJ input, wrapped with the
	// offending line number.
	ErrSyntax = errors.New("objfile: malformed OBJ")

	// ErrMeshNil is returned if a nil mesh is passed to Write or Save.
	ErrMeshNil = errors.New("objfile: mesh is nil")
)

// faceRec is one f directive before index resolution: 1-based vertex and
// UV indices, 0 marking a corner without a UV reference.
type faceRec struct {
	line  int
	verts []int
	uvs   []int
}

// Parse reads OBJ geometry from r and builds a mesh.
//
// Supported directives: v (position), vt (UV), vn (validated, then
// discarded) and f with corners in any of the forms v, v/vt, v/vt/vn and
// v//vn. 1-based indices are compensated; relative (negative) indices are
// not supported. Comments and unknown directives are skipped. A UV layer
// is attached whenever the file defines vt coordinates.
//
// Lexical and index problems return ErrSyntax with the line number;
// structural problems surface the core constructor's sentinel unchanged.
func Parse(r io.Reader) (*core.Mesh, error) {
	var (
		points []r3.Vec
		uvs    []r2.Vec
		recs   []faceRec
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, syntaxErr(line, err)
			}
			points = append(points, v)
		case "vt":
			uv, err := parseVec2(fields[1:])
			if err != nil {
				return nil, syntaxErr(line, err)
			}
			uvs = append(uvs, uv)
		case "vn":
			if _, err := parseVec3(fields[1:]); err != nil {
				return nil, syntaxErr(line, err)
			}
		case "f":
			rec, err := parseFace(fields[1:])
			if err != nil {
				return nil, syntaxErr(line, err)
			}
			rec.line = line
			recs = append(recs, rec)
		default:
			// grouping, materials and smoothing are irrelevant here
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	// Resolve 1-based indices against the final buffers.
	faces := make([][]int, len(recs))
	assignments := make([][]int, len(recs))
	for i, rec := range recs {
		for j, v := range rec.verts {
			if v < 1 || v > len(points) {
				return nil, fmt.Errorf("%w: line %d: vertex index %d out of range [1, %d]",
					ErrSyntax, rec.line, v, len(points))
			}
			rec.verts[j] = v - 1
		}
		faces[i] = rec.verts

		for j, t := range rec.uvs {
			if t == 0 {
				rec.uvs[j] = -1
				continue
			}
			if t < 1 || t > len(uvs) {
				return nil, fmt.Errorf("%w: line %d: UV index %d out of range [1, %d]",
					ErrSyntax, rec.line, t, len(uvs))
			}
			rec.uvs[j] = t - 1
		}
		assignments[i] = rec.uvs
	}

	var opts []core.MeshOption
	if len(uvs) > 0 {
		opts = append(opts, core.WithUVLayer(uvs, assignments))
	}
	return core.NewMesh(points, faces, opts...)
}

// Load reads an OBJ file from disk.
func Load(path string) (*core.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Write emits the mesh as OBJ: v lines, vt lines when a UV layer is
// attached, and f lines with v/vt corners wherever the corner has a UV
// assignment.
func Write(w io.Writer, m *core.Mesh) error {
	if m == nil {
		return ErrMeshNil
	}
	bw := bufio.NewWriter(w)
	for _, p := range m.Points() {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for _, uv := range m.UVs() {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}
	hasUV := m.HasUVs()
	for f := 0; f < m.NumFaces(); f++ {
		bw.WriteString("f")
		for _, v := range m.FaceVertices(f) {
			if hasUV {
				if uv, ok := m.FaceVertexUV(f, v); ok {
					fmt.Fprintf(bw, " %d/%d", v+1, uv+1)
					continue
				}
			}
			fmt.Fprintf(bw, " %d", v+1)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Save writes the mesh to an OBJ file.
func Save(path string, m *core.Mesh) error {
	if m == nil {
		return ErrMeshNil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func syntaxErr(line int, err error) error {
	return fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
}

func parseVec3(fields []string) (r3.Vec, error) {
	if len(fields) < 3 {
		return r3.Vec{}, fmt.Errorf("need 3 coordinates, got %d", len(fields))
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("bad coordinate %q", fields[i])
		}
		out[i] = f
	}
	return r3.Vec{X: out[0], Y: out[1], Z: out[2]}, nil
}

func parseVec2(fields []string) (r2.Vec, error) {
	if len(fields) < 2 {
		return r2.Vec{}, fmt.Errorf("need 2 coordinates, got %d", len(fields))
	}
	var out [2]float64
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return r2.Vec{}, fmt.Errorf("bad coordinate %q", fields[i])
		}
		out[i] = f
	}
	return r2.Vec{X: out[0], Y: out[1]}, nil
}

// parseFace splits f corners into 1-based vertex and UV indices; a corner
// without a UV reference records 0.
func parseFace(fields []string) (faceRec, error) {
	if len(fields) < 3 {
		return faceRec{}, fmt.Errorf("face needs at least 3 corners, got %d", len(fields))
	}
	rec := faceRec{verts: make([]int, len(fields)), uvs: make([]int, len(fields))}
	for i, corner := range fields {
		parts := strings.Split(corner, "/")
		if len(parts) > 3 {
			return faceRec{}, fmt.Errorf("corner %q has too many fields", corner)
		}
		v, err := strconv.Atoi(parts[0])
		if err != nil {
			return faceRec{}, fmt.Errorf("corner %q: bad vertex index", corner)
		}
		rec.verts[i] = v

		if len(parts) > 1 && parts[1] != "" {
			t, err := strconv.Atoi(parts[1])
			if err != nil || t == 0 {
				return faceRec{}, fmt.Errorf("corner %q: bad UV index", corner)
			}
			rec.uvs[i] = t
		}
		if len(parts) == 3 && parts[2] != "" {
			if _, err := strconv.Atoi(parts[2]); err != nil {
				return faceRec{}, fmt.Errorf("corner %q: bad normal index", corner)
			}
		}
	}
	return rec, nil
}
