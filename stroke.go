package sketch

import (
	"math"
)

// PerturbSegment turns the ideal segment p0->p1 into n points (n >= 2)
// displaced along the segment normal by low-frequency drift. The drift is
// one slow sine wave plus a tiny second harmonic; phase and harmonic weight
// are drawn once per call, so the whole stroke reads as one gesture rather
// than per-sample jitter. Identical inputs give bit-identical output.
//
// A zero-length segment has no normal, so the offsets collapse and the
// result is p0 repeated n times.
func PerturbSegment(p0, p1 Point, sty StrokeStyle, seed int64, n int) []Point {
	return perturb(NewNoise(seed), p0, p1, sty, n)
}

func perturb(rng *Noise, p0, p1 Point, sty StrokeStyle, n int) []Point {
	phase := rng.Uniform(0, 2*math.Pi)
	a2 := rng.Uniform(-0.10, 0.10)

	if p0 == p1 {
		// No direction means no normal and no drift; the interpolation
		// below would also cost an ulp at non-dyadic coordinates. The
		// degenerate segment is the point itself, n times, bit-exact.
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = p0
		}
		return pts
	}

	nx, ny := Normal(p0, p1)
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		bx := Lerp(p0.X, p1.X, t)
		by := Lerp(p0.Y, p1.Y, t)

		off := sty.Amp * taperK(t, sty.Taper) * drift(t, sty.Waves, phase, a2)
		pts[i] = Point{bx + nx*off, by + ny*off}
	}
	return pts
}

// taperK ramps the offset from 0 at the stroke ends to 1 once the
// parametric distance from the nearer end exceeds taper.
func taperK(t, taper float64) float64 {
	if taper <= 0 {
		return 1.0
	}
	edge := math.Min(t, 1.0-t) // 0 at ends, 0.5 at center
	return math.Min(1.0, edge/taper)
}

// drift is the gesture offset at parametric position t: a slow main wave
// and a second harmonic kept tiny to avoid visible oscillation.
func drift(t, waves, phase, a2 float64) float64 {
	return math.Sin(2.0*math.Pi*waves*t+phase) +
		a2*math.Sin(2.0*math.Pi*(2.0*waves)*t+0.7*phase)
}

// Line draws a liner stroke from p0 to p1 with n sample points.
func Line(s Sink, p0, p1 Point, sty StrokeStyle, seed int64, n int) {
	s.Stroke(Path{Points: PerturbSegment(p0, p1, sty, seed, n), Style: sty})
}

// DashedLine is Line with a dash pattern. Dash and gap lengths vary a
// little per call and the dash phase gets a random offset so parallel
// dashed lines don't phase-lock, all from the one seeded stream, so the
// whole stroke is reproducible from seed alone.
func DashedLine(s Sink, p0, p1 Point, sty StrokeStyle, seed int64, n int, dashBase, gapBase float64) {
	rng := NewNoise(seed)

	// tiny variation per line, but not jittery
	dash := dashBase * rng.Uniform(0.85, 1.15)
	gap := gapBase * rng.Uniform(0.85, 1.20)

	pts := perturb(rng, p0, p1, sty, n)

	s.Stroke(Path{
		Points: pts,
		Style:  sty,
		Dash:   &Dash{Len: dash, Gap: gap, Offset: rng.Uniform(0, dash+gap)},
	})
}

// Polyline draws one independent stroke per consecutive pair of points.
// Corners stay sharp: strokes simply meet at the shared endpoint. Each
// segment gets its own stream at seed + i*97. Fewer than two points draws
// nothing.
func Polyline(s Sink, pts []Point, sty StrokeStyle, seed int64, nPerSeg int) {
	if len(pts) < 2 {
		return
	}
	for i := 0; i < len(pts)-1; i++ {
		Line(s, pts[i], pts[i+1], sty, seed+int64(i)*97, nPerSeg)
	}
}
