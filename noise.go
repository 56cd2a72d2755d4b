package sketch

import (
	"math/rand"
)

// Noise is a reproducible stream of pseudo-random draws. Every drawing call
// constructs its own stream from an explicit seed, so the same seed always
// replays the same figure and streams from different calls never interact.
type Noise struct {
	rng *rand.Rand
}

// NewNoise returns a stream seeded with seed. Identical seeds yield
// identical draw sequences in the same call order.
func NewNoise(seed int64) *Noise {
	return &Noise{rng: rand.New(rand.NewSource(seed))}
}

// Uniform draws a value uniformly from [lo, hi).
func (n *Noise) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*n.rng.Float64()
}
