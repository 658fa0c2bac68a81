// Command topomirror loads OBJ meshes, restores bilateral symmetry
// across a seam edge and writes the result back out.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/topomirror/internal/logger"
)

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
