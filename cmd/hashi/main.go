// Command hashi is the menu-equivalent CLI for the Hashiwokakero
// solver: run a batch of puzzle inputs through one or every solver
// backend, validate inputs without solving, or solve inputs and render
// the solutions to PNG images.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hashi",
		Short: "Solve and render Hashiwokakero puzzle batches",
	}

	rootCmd.PersistentFlags().String("input-dir", "Inputs", "directory of input grid files")
	rootCmd.PersistentFlags().String("output-dir", "Outputs", "directory to write solved grids to")
	rootCmd.PersistentFlags().String("visualize-dir", "visualize", "directory to write PNG visualizations to")

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newAllCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newRenderCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
