package sketch

// TicksOnAxis draws a short perpendicular stroke at each parametric
// position in ts (each in [0,1]) along the axis p0->p1, reaching half of
// tickLen to each side. Tick i uses the stream at seed + i*31.
func TicksOnAxis(s Sink, p0, p1 Point, ts []float64, tickLen float64, sty StrokeStyle, seed int64) {
	nx, ny := Normal(p0, p1)

	for i, t := range ts {
		x := Lerp(p0.X, p1.X, t)
		y := Lerp(p0.Y, p1.Y, t)

		a := Point{x - nx*tickLen/2.0, y - ny*tickLen/2.0}
		b := Point{x + nx*tickLen/2.0, y + ny*tickLen/2.0}

		Line(s, a, b, sty, seed+int64(i)*31, 12)
	}
}
