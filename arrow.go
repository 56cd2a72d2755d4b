package sketch

// ArrowheadOpen draws an open two-stroke arrowhead at tip, pointing along
// dir. Each wing angle gets its own small jitter, so the head is slightly
// asymmetric on purpose.
func ArrowheadOpen(s Sink, tip, dir Point, sty StrokeStyle, seed int64, size, openAngleDeg float64) {
	rng := NewNoise(seed)
	dx, dy := Unit(dir.X, dir.Y)

	a1 := radians(openAngleDeg + rng.Uniform(-4.0, 4.0))
	lx, ly := rotate(dx, dy, +a1)

	a2 := radians(openAngleDeg + rng.Uniform(-6.0, 6.0))
	rx, ry := rotate(dx, dy, -a2)

	pL := Point{tip.X - lx*size, tip.Y - ly*size}
	pR := Point{tip.X - rx*size, tip.Y - ry*size}

	Line(s, pL, tip, sty, seed+101, 18)
	Line(s, pR, tip, sty, seed+202, 18)
}

// ArrowheadGesture is the stronger-asymmetry variant: independent angle and
// length per wing, and each wing bends once at a kink near the tip, so it
// is two strokes instead of one.
func ArrowheadGesture(s Sink, tip, dir Point, sty StrokeStyle, seed int64, size, openAngleDeg float64) {
	rng := NewNoise(seed)
	dx, dy := Unit(dir.X, dir.Y)

	angL := radians(openAngleDeg + rng.Uniform(-9.0, 9.0))
	angR := radians(openAngleDeg + rng.Uniform(-12.0, 12.0))
	sizeL := size * rng.Uniform(0.85, 1.15)
	sizeR := size * rng.Uniform(0.75, 1.20)

	lx, ly := rotate(dx, dy, +angL)
	rx, ry := rotate(dx, dy, -angR)

	pL0 := Point{tip.X - lx*sizeL, tip.Y - ly*sizeL}
	pR0 := Point{tip.X - rx*sizeR, tip.Y - ry*sizeR}

	pL1 := kink(rng, pL0, tip, 2.0)
	pR1 := kink(rng, pR0, tip, 2.5)

	Line(s, pL0, pL1, sty, seed+111, 14)
	Line(s, pL1, tip, sty, seed+112, 10)

	Line(s, pR0, pR1, sty, seed+211, 14)
	Line(s, pR1, tip, sty, seed+212, 10)
}

// kink picks a point in the last stretch before the tip, pushed off the
// base->tip line by up to k, so the wing bends near the tip rather than
// along its whole length.
func kink(rng *Noise, p0, tip Point, k float64) Point {
	nx, ny := Normal(p0, tip)
	kk := rng.Uniform(-k, k)
	t := rng.Uniform(0.70, 0.85)
	return Point{
		Lerp(p0.X, tip.X, t) + nx*kk,
		Lerp(p0.Y, tip.Y, t) + ny*kk,
	}
}
