package sketch

// StrokeStyle is the liner configuration threaded through every drawing
// call. The key idea: low-frequency drift (gesture), not jitter.
//
// Width is the stroke width in device units. Amp is the maximum normal
// offset. Waves is how many slow waves run along a stroke. Taper (0..0.2)
// is the fraction of the stroke length over which the offset ramps up from
// zero at each end, so strokes attach cleanly to their neighbors.
//
// Nothing is validated; out-of-range values keep the kernel well-defined
// but the output stops looking hand-drawn.
type StrokeStyle struct {
	Width    float64
	Amp      float64
	Waves    float64
	Taper    float64
	Color    string
	Linecap  string
	Linejoin string
}

// DefaultStyle returns the liner defaults.
func DefaultStyle() StrokeStyle {
	return StrokeStyle{
		Width:    2.2,
		Amp:      0.8,
		Waves:    1.2,
		Taper:    0.08,
		Color:    "#111111",
		Linecap:  "round",
		Linejoin: "round",
	}
}

// Dash is a two-value dash pattern plus a phase offset, in device units.
type Dash struct {
	Len    float64
	Gap    float64
	Offset float64
}
