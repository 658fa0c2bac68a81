package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/topomirror/core"
	"github.com/katalvlaran/topomirror/internal/logger"
	"github.com/katalvlaran/topomirror/mapping"
	"github.com/katalvlaran/topomirror/mirror"
	"github.com/katalvlaran/topomirror/objfile"
	"github.com/katalvlaran/topomirror/seed"
	"github.com/katalvlaran/topomirror/symmetry"
)

var (
	mirrorIn     string
	mirrorOut    string
	mirrorEdge   int
	mirrorVerts  string
	mirrorMode   string
	mirrorSpace  string
	mirrorAxis   string
	mirrorCenter string
	mirrorLTR    bool
	mirrorTTB    bool
	mirrorDump   bool
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Mirror one side of a mesh onto the other across a seam edge",
	Long: `Pick a seam edge (by ID or by its endpoint vertices), walk both adjacent
faces outward in lockstep, pair the discovered components and apply the chosen
transform. The mesh is written unchanged if any stage fails.`,
	RunE: runMirror,
}

func init() {
	rootCmd.AddCommand(mirrorCmd)

	mirrorCmd.Flags().StringVar(&mirrorIn, "in", "", "input OBJ file (required)")
	mirrorCmd.Flags().StringVar(&mirrorOut, "out", "", "output OBJ file (default: stdout)")
	mirrorCmd.Flags().IntVar(&mirrorEdge, "edge", -1, "seam edge ID")
	mirrorCmd.Flags().StringVar(&mirrorVerts, "verts", "", "seam edge endpoints as a,b")
	mirrorCmd.Flags().StringVar(&mirrorMode, "mode", "mirror", "transform mode: mirror|flip|average")
	mirrorCmd.Flags().StringVar(&mirrorSpace, "space", "vertex", "component space: vertex|uv")
	mirrorCmd.Flags().StringVar(&mirrorAxis, "axis", "auto", "mirror axis: x|y|z (vertex), u|v (uv), or auto")
	mirrorCmd.Flags().StringVar(&mirrorCenter, "center", "auto", "mirror center: auto, x,y,z or u,v")
	mirrorCmd.Flags().BoolVar(&mirrorLTR, "left-to-right", true, "keep the lesser side along the axis as the source")
	mirrorCmd.Flags().BoolVar(&mirrorTTB, "top-to-bottom", true, "keep the greater side along Y or V as the source")
	mirrorCmd.Flags().BoolVar(&mirrorDump, "dump", false, "dump traversal and mapping to stderr")

	_ = mirrorCmd.MarkFlagRequired("in")
}

func runMirror(cmd *cobra.Command, args []string) error {
	m, err := objfile.Load(mirrorIn)
	if err != nil {
		return err
	}
	logger.Info("mesh loaded",
		zap.String("path", mirrorIn),
		zap.Int("vertices", m.NumVertices()),
		zap.Int("edges", m.NumEdges()),
		zap.Int("faces", m.NumFaces()))

	seam, err := resolveSeam(m)
	if err != nil {
		return err
	}

	mode, err := parseMode(pick(cmd, "mode", mirrorMode, cfg.Mirror.Mode))
	if err != nil {
		return err
	}
	space := pick(cmd, "space", mirrorSpace, cfg.Mirror.Space)
	axisStr := pick(cmd, "axis", mirrorAxis, cfg.Mirror.Axis)
	ltr := pickBool(cmd, "left-to-right", mirrorLTR, cfg.Mirror.LeftToRight)
	ttb := pickBool(cmd, "top-to-bottom", mirrorTTB, cfg.Mirror.TopToBottom)

	switch space {
	case "vertex":
		err = mirrorVertexSpace(cmd, m, seam, mode, axisStr, ltr, ttb)
	case "uv":
		err = mirrorUVSpace(cmd, m, seam, mode, axisStr, ltr, ttb)
	default:
		err = fmt.Errorf("unknown space %q (want vertex|uv)", space)
	}
	if err != nil {
		return err
	}

	return writeMesh(cmd, m)
}

func mirrorVertexSpace(cmd *cobra.Command, m *core.Mesh, seam int, mode mirror.Mode, axisStr string, ltr, ttb bool) error {
	opts := []seed.Option{seed.WithLeftToRight(ltr), seed.WithTopToBottom(ttb)}
	if axisStr != "auto" {
		axis, err := parseVertexAxis(axisStr)
		if err != nil {
			return err
		}
		opts = append(opts, seed.WithAxis(axis))
	}

	sd, plan, err := seed.PickSides(m, seam, opts...)
	if err != nil {
		return err
	}
	logger.Debug("sides picked",
		zap.Int("leftFace", sd.LeftFace),
		zap.Int("rightFace", sd.RightFace),
		zap.String("axis", plan.Axis.String()),
		zap.Bool("swapped", plan.Swapped))

	res, err := symmetry.Traverse(m, sd)
	if err != nil {
		return err
	}
	cm, err := mapping.Build(m, mapping.VertexSpace, res.Left, res.Right)
	if err != nil {
		return err
	}
	dumpPipeline(cmd, res, cm)

	center := plan.Center
	if mirrorCenter != "auto" {
		center, err = parseCenter3(mirrorCenter)
		if err != nil {
			return err
		}
	}
	if err := mirror.Apply(m, cm, center, mode, plan.Axis); err != nil {
		return err
	}
	logger.Info("mirrored",
		zap.String("space", "vertex"),
		zap.String("mode", mode.String()),
		zap.String("axis", plan.Axis.String()),
		zap.Int("pairs", cm.Len()))
	return nil
}

func mirrorUVSpace(cmd *cobra.Command, m *core.Mesh, seam int, mode mirror.Mode, axisStr string, ltr, ttb bool) error {
	opts := []seed.Option{seed.WithLeftToRight(ltr), seed.WithTopToBottom(ttb)}
	if axisStr != "auto" {
		axis, err := parseUVAxis(axisStr)
		if err != nil {
			return err
		}
		opts = append(opts, seed.WithUVAxis(axis))
	}

	sd, plan, err := seed.PickSidesUV(m, seam, opts...)
	if err != nil {
		return err
	}
	logger.Debug("sides picked",
		zap.Int("leftFace", sd.LeftFace),
		zap.Int("rightFace", sd.RightFace),
		zap.String("axis", plan.Axis.String()),
		zap.Bool("swapped", plan.Swapped))

	res, err := symmetry.Traverse(m, sd, symmetry.WithUVConnectivity())
	if err != nil {
		return err
	}
	cm, err := mapping.Build(m, mapping.UVSpace, res.Left, res.Right)
	if err != nil {
		return err
	}
	dumpPipeline(cmd, res, cm)

	center := plan.Center
	if mirrorCenter != "auto" {
		center, err = parseCenter2(mirrorCenter)
		if err != nil {
			return err
		}
	}
	if err := mirror.ApplyUV(m, cm, center, mode, plan.Axis); err != nil {
		return err
	}
	logger.Info("mirrored",
		zap.String("space", "uv"),
		zap.String("mode", mode.String()),
		zap.String("axis", plan.Axis.String()),
		zap.Int("pairs", cm.Len()))
	return nil
}

// pick returns the flag value when set on the command line, the config
// value otherwise.
func pick(cmd *cobra.Command, name, flagVal, cfgVal string) string {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	if cfgVal != "" {
		return cfgVal
	}
	return flagVal
}

func pickBool(cmd *cobra.Command, name string, flagVal, cfgVal bool) bool {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return cfgVal
}

func resolveSeam(m *core.Mesh) (int, error) {
	switch {
	case mirrorEdge >= 0 && mirrorVerts != "":
		return 0, errors.New("use exactly one of --edge and --verts")
	case mirrorEdge >= 0:
		if mirrorEdge >= m.NumEdges() {
			return 0, fmt.Errorf("edge %d out of range [0, %d)", mirrorEdge, m.NumEdges())
		}
		return mirrorEdge, nil
	case mirrorVerts != "":
		a, b, err := parseVertPair(mirrorVerts)
		if err != nil {
			return 0, err
		}
		e, ok := m.EdgeBetween(a, b)
		if !ok {
			return 0, fmt.Errorf("no edge between vertices %d and %d", a, b)
		}
		return e, nil
	default:
		return 0, errors.New("one of --edge or --verts is required")
	}
}

func dumpPipeline(cmd *cobra.Command, res *symmetry.Result, cm *mapping.ComponentMapping) {
	if !mirrorDump {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), spew.Sdump(res))
	fmt.Fprint(cmd.ErrOrStderr(), spew.Sdump(cm))
}

func writeMesh(cmd *cobra.Command, m *core.Mesh) error {
	if mirrorOut == "" {
		return objfile.Write(cmd.OutOrStdout(), m)
	}
	if err := objfile.Save(mirrorOut, m); err != nil {
		return err
	}
	logger.Info("mesh written", zap.String("path", mirrorOut))
	return nil
}

func parseVertPair(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("--verts wants two vertex IDs as a,b, got %q", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("--verts: bad vertex ID %q", parts[0])
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("--verts: bad vertex ID %q", parts[1])
	}
	return a, b, nil
}

func parseMode(s string) (mirror.Mode, error) {
	switch s {
	case "mirror":
		return mirror.ModeMirror, nil
	case "flip":
		return mirror.ModeFlip, nil
	case "average":
		return mirror.ModeAverage, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want mirror|flip|average)", s)
	}
}

func parseVertexAxis(s string) (mirror.Axis, error) {
	switch s {
	case "x":
		return mirror.AxisX, nil
	case "y":
		return mirror.AxisY, nil
	case "z":
		return mirror.AxisZ, nil
	case "u", "v":
		return 0, fmt.Errorf("axis %q needs --space uv", s)
	default:
		return 0, fmt.Errorf("unknown axis %q (want x|y|z or auto)", s)
	}
}

func parseUVAxis(s string) (mirror.UVAxis, error) {
	switch s {
	case "u":
		return mirror.AxisU, nil
	case "v":
		return mirror.AxisV, nil
	case "x", "y", "z":
		return 0, fmt.Errorf("axis %q needs --space vertex", s)
	default:
		return 0, fmt.Errorf("unknown axis %q (want u|v or auto)", s)
	}
}

func parseCenter3(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("--center wants x,y,z, got %q", s)
	}
	var out [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("--center: bad coordinate %q", p)
		}
		out[i] = f
	}
	return r3.Vec{X: out[0], Y: out[1], Z: out[2]}, nil
}

func parseCenter2(s string) (r2.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return r2.Vec{}, fmt.Errorf("--center wants u,v, got %q", s)
	}
	var out [2]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r2.Vec{}, fmt.Errorf("--center: bad coordinate %q", p)
		}
		out[i] = f
	}
	return r2.Vec{X: out[0], Y: out[1]}, nil
}
