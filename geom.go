package sketch

import (
	"math"
)

// Point is an (x, y) pair, in data or device coordinates depending on
// context. Purely a value, no identity.
type Point struct {
	X, Y float64
}

// Unit returns the unit vector of (vx, vy), or (0, 0) for the zero vector.
func Unit(vx, vy float64) (float64, float64) {
	n := math.Hypot(vx, vy)
	if n == 0 {
		return 0, 0
	}
	return vx / n, vy / n
}

// Normal returns the unit normal of the segment p0->p1, i.e. its direction
// rotated +90 degrees. A zero-length segment has no direction, so the
// normal is (0, 0).
func Normal(p0, p1 Point) (float64, float64) {
	ux, uy := Unit(p1.X-p0.X, p1.Y-p0.Y)
	return -uy, ux
}

// rotate rotates (vx, vy) counterclockwise by ang radians.
func rotate(vx, vy, ang float64) (float64, float64) {
	ca, sa := math.Cos(ang), math.Sin(ang)
	return vx*ca - vy*sa, vx*sa + vy*ca
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
