package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/sketch"
)

func newGalleryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gallery <config.toml>",
		Short: "Render every figure described in a gallery config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd.Context(), args[0])
		},
	}
}

func runGallery(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	if err := sketch.MaybeCreateDir(cfg.OutDir); err != nil {
		return err
	}

	start := time.Now()
	for i := range cfg.Figures {
		fig := &cfg.Figures[i]
		logger.Debug("Rendering figure", "name", fig.Name, "kind", fig.Kind, "seed", fig.Seed)
		if err := renderFigure(fig, cfg.OutDir); err != nil {
			return fmt.Errorf("figure %q: %w", fig.Name, err)
		}
		logger.Info("Rendered figure", "name", fig.Name, "formats", fig.Formats)
	}
	logger.Info("Gallery complete",
		"figures", len(cfg.Figures),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func renderFigure(fig *Figure, outDir string) error {
	c := sketch.NewContext(fig.Width, fig.Height)
	drawFigure(c, fig)

	for _, format := range fig.Formats {
		fname := filepath.Join(outDir, fig.Name+"."+format)
		var err error
		switch format {
		case "svg":
			err = c.WriteSVG(fname)
		case "png":
			err = c.WritePNG(fname)
		case "pdf":
			err = c.WritePDF(fname)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// drawFigure emits the figure's strokes into s. Axes are drawn with a
// calmer style than data; projections get a lighter dashed style.
func drawFigure(s sketch.Sink, fig *Figure) {
	box := fig.box()
	data := fig.dataStyle()
	axis := sketch.StrokeStyle{
		Width: 2.2, Amp: 0.25, Waves: 1.0, Taper: 0.0,
		Color: "#111111", Linecap: "round", Linejoin: "round",
	}
	dashed := sketch.StrokeStyle{
		Width: 1.8, Amp: 0.35, Waves: 0.9, Taper: 0.05,
		Color: "#333333", Linecap: "round", Linejoin: "round",
	}

	sketch.DrawAxes(s, box, axis, fig.Seed, fig.Ticks, true)

	switch fig.Kind {
	case kindAxes:
		// axes only
	case kindFunction:
		pts := sketch.SampleFunc(box, curveFuncs[fig.Curve], fig.Samples)
		sketch.DrawCurve(s, pts, data, fig.Seed+100, 12)
	case kindParametric:
		pts := sketch.SampleParametric(box, paramFuncs[fig.Curve], fig.Samples)
		sketch.DrawCurve(s, pts, data, fig.Seed+100, 12)
	case kindProjection:
		f := curveFuncs[fig.Curve]
		pts := sketch.SampleFunc(box, f, fig.Samples)
		sketch.DrawCurve(s, pts, data, fig.Seed+100, 12)
		sketch.ProjectPoint(s, box, fig.PointX, f(fig.PointX), dashed, fig.Seed+500)
	}
}
