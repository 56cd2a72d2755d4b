// Renders a hand-drawn parabola plot: sketchy axes with gestural
// arrowheads, the curve itself, and dashed projections from one point down
// to both axes.
package main

import (
	"flag"
	"fmt"

	"github.com/scottkirkwood/sketch"
)

const (
	width  = 900.0 // device units
	height = 900.0
	margin = 120.0
)

var seedFlag = flag.String("seed", "", "Hex value for the seed to use")

func main() {
	flag.Parse()
	g, err := sketch.Init(*seedFlag)
	if err != nil {
		fmt.Printf("Unable to set the seed: %v\n", err)
		return
	}

	ctx := sketch.NewContext(width, height)
	draw(ctx, g.GetSeed())

	if err := g.SafeWrite(ctx, "samples/parabola-", ".svg"); err != nil {
		fmt.Printf("Unable to write image: %v\n", err)
	}
}

func draw(s sketch.Sink, seed int64) {
	box := sketch.PlotBox{
		X0: margin, Y0: margin,
		W: width - 2*margin, H: height - 2*margin,
		Xmin: -1.2, Xmax: 4.8,
		Ymin: -2.6, Ymax: 6.4,
	}

	// Axes are calmer than data.
	axisStyle := sketch.StrokeStyle{
		Width: 2.2, Amp: 0.25, Waves: 1.0, Taper: 0.0,
		Color: "#111111", Linecap: "round", Linejoin: "round",
	}
	dataStyle := sketch.StrokeStyle{
		Width: 2.2, Amp: 0.55, Waves: 0.75, Taper: 0.10,
		Color: "#111111", Linecap: "round", Linejoin: "round",
	}
	dashedStyle := sketch.StrokeStyle{
		Width: 1.8, Amp: 0.35, Waves: 0.9, Taper: 0.05,
		Color: "#333333", Linecap: "round", Linejoin: "round",
	}

	f := func(x float64) float64 { return 0.35*(x-1.6)*(x-1.6) - 1.3 }

	sketch.DrawAxes(s, box, axisStyle, seed, 6, true)

	pts := sketch.SampleFunc(box, f, 110)
	sketch.DrawCurve(s, pts, dataStyle, seed+100, 12)

	const px = 3.2
	sketch.ProjectPoint(s, box, px, f(px), dashedStyle, seed+500)
}
