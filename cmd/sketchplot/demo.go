package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/sketch"
)

func newDemoCmd() *cobra.Command {
	var out string
	var seed int64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the reference demo figure to a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), out, seed)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "demo.png", "output PNG file")
	cmd.Flags().Int64Var(&seed, "seed", 1, "figure seed")
	return cmd
}

// runDemo draws the reference figure: calm axes with open arrowheads, six
// hand-placed ticks, and a sharp-cornered sample polyline.
func runDemo(ctx context.Context, out string, seed int64) error {
	logger := loggerFromContext(ctx)

	r := sketch.NewRaster(960, 540)

	// Axes are calmer than data.
	axisStyle := sketch.StrokeStyle{
		Width: 2.2, Amp: 0.25, Waves: 1.0, Taper: 0.0,
		Color: "#111111", Linecap: "round", Linejoin: "round",
	}
	dataStyle := sketch.StrokeStyle{
		Width: 2.2, Amp: 0.55, Waves: 0.75, Taper: 0.10,
		Color: "#111111", Linecap: "round", Linejoin: "round",
	}

	origin := sketch.Point{X: 130, Y: 420}
	xEnd := sketch.Point{X: 880, Y: 420}
	yEnd := sketch.Point{X: 130, Y: 90}

	sketch.Line(r, origin, xEnd, axisStyle, seed+10, 90)
	sketch.Line(r, origin, yEnd, axisStyle, seed+20, 90)

	sketch.ArrowheadOpen(r, xEnd, sketch.Point{X: 1, Y: 0}, axisStyle, seed+30, 14, 28)
	sketch.ArrowheadOpen(r, yEnd, sketch.Point{X: 0, Y: -1}, axisStyle, seed+40, 14, 28)

	sketch.TicksOnAxis(r, origin, xEnd,
		[]float64{0.15, 0.30, 0.45, 0.60, 0.75, 0.90}, 20, axisStyle, seed+50)

	pts := []sketch.Point{
		{X: 130, Y: 340},
		{X: 240, Y: 300},
		{X: 330, Y: 315},
		{X: 430, Y: 260},
		{X: 540, Y: 285},
		{X: 640, Y: 210},
		{X: 760, Y: 240},
		{X: 880, Y: 160},
	}
	sketch.Polyline(r, pts, dataStyle, seed+100, 34)

	if err := r.SavePNG(out); err != nil {
		return err
	}
	logger.Info("Rendered demo", "file", out, "seed", seed)
	return nil
}
