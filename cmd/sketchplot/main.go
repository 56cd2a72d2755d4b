// sketchplot renders hand-drawn-looking plots (sketchy axes, curves,
// dashed projections) from precise mathematical input, reproducibly from a
// single seed.
package main

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

func execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "sketchplot",
		Short:        "Render hand-drawn vector plots from precise math",
		Long:         `sketchplot draws axes, function curves, parametric curves and point projections in a hand-drawn "liner" style. Every figure is deterministic: the same seed always produces the same strokes.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGalleryCmd())
	root.AddCommand(newDemoCmd())

	return root.ExecuteContext(context.Background())
}
