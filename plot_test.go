package sketch

import (
	"math"
	"testing"
)

func TestPlotBoxCorners(t *testing.T) {
	boxes := []PlotBox{
		{X0: 120, Y0: 120, W: 660, H: 660, Xmin: -1.2, Xmax: 4.8, Ymin: -2.6, Ymax: 6.4},
		{X0: 0, Y0: 0, W: 100, H: 50, Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1},
		{X0: -30, Y0: 7, W: 1, H: 999, Xmin: -5, Xmax: -4, Ymin: 100, Ymax: 200},
	}

	for _, b := range boxes {
		// data origin maps to the device bottom-left corner
		if got, want := b.XY(b.Xmin, b.Ymin), (Point{X: b.X0, Y: b.Y0 + b.H}); got != want {
			t.Errorf("XY(xmin, ymin) = %v, want %v", got, want)
		}
		// data top-right maps to the device top-right corner
		if got, want := b.XY(b.Xmax, b.Ymax), (Point{X: b.X0 + b.W, Y: b.Y0}); got != want {
			t.Errorf("XY(xmax, ymax) = %v, want %v", got, want)
		}
	}
}

func TestSampleFuncEndpoints(t *testing.T) {
	b := PlotBox{X0: 10, Y0: 10, W: 200, H: 100, Xmin: -2, Xmax: 2, Ymin: -4, Ymax: 4}
	f := func(x float64) float64 { return x * x }

	pts := SampleFunc(b, f, 21)
	if len(pts) != 21 {
		t.Fatalf("want 21 points, got %d", len(pts))
	}
	if want := b.XY(-2, 4); pts[0] != want {
		t.Errorf("first sample = %v, want %v", pts[0], want)
	}
	if want := b.XY(2, 4); pts[20] != want {
		t.Errorf("last sample = %v, want %v", pts[20], want)
	}
}

func TestSampleParametricEndpoints(t *testing.T) {
	b := PlotBox{X0: 0, Y0: 0, W: 100, H: 100, Xmin: -1, Xmax: 1, Ymin: -1, Ymax: 1}
	g := func(t float64) (float64, float64) {
		return math.Cos(math.Pi * t), math.Sin(math.Pi * t)
	}

	pts := SampleParametric(b, g, 50)
	if len(pts) != 50 {
		t.Fatalf("want 50 points, got %d", len(pts))
	}
	if want := b.XY(1, 0); pts[0] != want {
		t.Errorf("g(0) sample = %v, want %v", pts[0], want)
	}
}

func TestDrawCurveEndToEnd(t *testing.T) {
	b := PlotBox{
		X0: 120, Y0: 120, W: 660, H: 660,
		Xmin: -1.2, Xmax: 4.8, Ymin: -2.6, Ymax: 6.4,
	}
	f := func(x float64) float64 { return 0.35*(x-1.6)*(x-1.6) - 1.3 }

	sty := DefaultStyle()
	sty.Taper = 0.10

	pts := SampleFunc(b, f, 110)
	var buf PathBuf
	DrawCurve(&buf, pts, sty, 100, 12)

	if len(buf.Paths) != 109 {
		t.Fatalf("want 109 strokes, got %d", len(buf.Paths))
	}
	for i, p := range buf.Paths {
		if len(p.Points) != 12 {
			t.Fatalf("stroke %d has %d points, want 12", i, len(p.Points))
		}
	}

	first := buf.Paths[0].Points[0]
	want := b.XY(b.Xmin, f(b.Xmin))
	if math.Abs(first.X-want.X) > 1e-9 || math.Abs(first.Y-want.Y) > 1e-9 {
		t.Errorf("curve starts at %v, want %v", first, want)
	}
}

func TestDrawAxesStrokeCounts(t *testing.T) {
	b := PlotBox{X0: 50, Y0: 50, W: 500, H: 400, Xmin: 0, Xmax: 10, Ymin: 0, Ymax: 10}

	tests := []struct {
		name   string
		ticks  int
		arrows bool
		want   int
	}{
		// 2 axis strokes; each gestural arrowhead is 4 strokes; each
		// axis gets ticks-1 interior ticks.
		{"bare", 0, false, 2},
		{"arrows only", 0, true, 2 + 8},
		{"ticks only", 6, false, 2 + 10},
		{"arrows and ticks", 4, true, 2 + 8 + 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf PathBuf
			DrawAxes(&buf, b, DefaultStyle(), 1, tt.ticks, tt.arrows)
			if got := len(buf.Paths); got != tt.want {
				t.Errorf("DrawAxes emitted %d strokes, want %d", got, tt.want)
			}
		})
	}
}

func TestProjectPointStrokes(t *testing.T) {
	b := PlotBox{X0: 0, Y0: 0, W: 600, H: 600, Xmin: -1, Xmax: 5, Ymin: -3, Ymax: 7}

	var buf PathBuf
	ProjectPoint(&buf, b, 3.2, 1.5, DefaultStyle(), 9)

	// two dashed drops plus a two-stroke crosshair
	if len(buf.Paths) != 4 {
		t.Fatalf("want 4 strokes, got %d", len(buf.Paths))
	}
	if buf.Paths[0].Dash == nil || buf.Paths[1].Dash == nil {
		t.Error("projection drops must be dashed")
	}
	if buf.Paths[2].Dash != nil || buf.Paths[3].Dash != nil {
		t.Error("crosshair strokes must be solid")
	}

	// the vertical drop lands on the bottom axis
	drop := buf.Paths[0].Points
	end := drop[len(drop)-1]
	axisY := b.XY(3.2, b.Ymin).Y
	if math.Abs(end.Y-axisY) > 1.0 {
		t.Errorf("vertical drop ends at y=%.3f, axis at y=%.3f", end.Y, axisY)
	}
}
