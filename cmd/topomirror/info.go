package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topomirror/objfile"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Print topology statistics for an OBJ mesh",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	m, err := objfile.Load(args[0])
	if err != nil {
		return err
	}

	var boundary, manifold, other int
	for e := 0; e < m.NumEdges(); e++ {
		switch len(m.EdgeAdjacentFaces(e)) {
		case 1:
			boundary++
		case 2:
			manifold++
		default:
			other++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Vertices: %d\n", m.NumVertices())
	fmt.Fprintf(out, "Edges:    %d\n", m.NumEdges())
	fmt.Fprintf(out, "Faces:    %d\n", m.NumFaces())
	fmt.Fprintf(out, "UVs:      %d\n", m.NumUVs())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Boundary edges:     %d\n", boundary)
	fmt.Fprintf(out, "Manifold edges:     %d\n", manifold)
	fmt.Fprintf(out, "Non-manifold edges: %d\n", other)
	return nil
}
