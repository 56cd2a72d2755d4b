package sketch

// PlotBox maps a rectangular data window onto a device rectangle at
// (X0, Y0) with size W x H. Device y grows downward, so the data y-axis is
// inverted. Requires Xmax > Xmin, Ymax > Ymin, W > 0, H > 0.
type PlotBox struct {
	X0, Y0 float64
	W, H   float64
	Xmin   float64
	Xmax   float64
	Ymin   float64
	Ymax   float64
}

// XY maps the data point (x, y) into device coordinates.
func (b PlotBox) XY(x, y float64) Point {
	u := (x - b.Xmin) / (b.Xmax - b.Xmin)
	v := (y - b.Ymin) / (b.Ymax - b.Ymin)
	return Point{
		X: b.X0 + u*b.W,
		Y: b.Y0 + (1.0-v)*b.H,
	}
}

// SampleFunc evaluates f at n evenly spaced x values across the box's data
// window and maps each (x, f(x)) into device coordinates. Whatever f does
// on a bad input is the caller's problem; sampling masks nothing.
func SampleFunc(b PlotBox, f func(float64) float64, n int) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		x := Lerp(b.Xmin, b.Xmax, t)
		pts[i] = b.XY(x, f(x))
	}
	return pts
}

// SampleParametric evaluates g at n evenly spaced t in [0,1] and maps each
// resulting data point into device coordinates.
func SampleParametric(b PlotBox, g func(float64) (float64, float64), n int) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		x, y := g(t)
		pts[i] = b.XY(x, y)
	}
	return pts
}

// DrawAxes draws the box's bottom (y=Ymin) and left (x=Xmin) borders as
// axes, with gestural arrowheads at the far ends when arrows is set, and
// ticks-1 evenly spaced interior tick marks per axis (both endpoints
// excluded).
func DrawAxes(s Sink, b PlotBox, sty StrokeStyle, seed int64, ticks int, arrows bool) {
	origin := b.XY(b.Xmin, b.Ymin)
	xEnd := b.XY(b.Xmax, b.Ymin)
	yEnd := b.XY(b.Xmin, b.Ymax)

	Line(s, origin, xEnd, sty, seed+1, 90)
	Line(s, origin, yEnd, sty, seed+2, 90)

	if arrows {
		ArrowheadGesture(s, xEnd, Point{1, 0}, sty, seed+3, 14, 30)
		ArrowheadGesture(s, yEnd, Point{0, -1}, sty, seed+4, 14, 30)
	}

	if ticks > 0 {
		ts := make([]float64, 0, ticks-1)
		for i := 1; i < ticks; i++ {
			ts = append(ts, float64(i)/float64(ticks))
		}
		TicksOnAxis(s, origin, xEnd, ts, 20, sty, seed+10)
		TicksOnAxis(s, origin, yEnd, ts, 20, sty, seed+20)
	}
}

// DrawCurve draws already-mapped device points as a sharp-cornered
// polyline. Many points make many short segments; corners stay honest.
func DrawCurve(s Sink, pts []Point, sty StrokeStyle, seed int64, nPerSeg int) {
	Polyline(s, pts, sty, seed, nPerSeg)
}

// ProjectPoint drops dashed projections from the data point (x, y) down to
// the bottom axis and left to the left axis, plus a small crosshair on the
// point itself; the usual "read the value off the axes" construction.
func ProjectPoint(s Sink, b PlotBox, x, y float64, dashed StrokeStyle, seed int64) {
	p := b.XY(x, y)
	px := b.XY(x, b.Ymin)
	py := b.XY(b.Xmin, y)

	DashedLine(s, p, px, dashed, seed+1, 50, 9, 11)
	DashedLine(s, p, py, dashed, seed+2, 50, 9, 11)

	const r = 5.0
	Line(s, Point{p.X - r, p.Y}, Point{p.X + r, p.Y}, dashed, seed+3, 16)
	Line(s, Point{p.X, p.Y - r}, Point{p.X, p.Y + r}, dashed, seed+4, 16)
}
