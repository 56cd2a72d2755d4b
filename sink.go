package sketch

// Path is one finished stroke: an ordered run of points drawn as a move-to
// followed by line-tos, stroked with Style and no fill. Dash is nil for
// solid strokes.
type Path struct {
	Points []Point
	Style  StrokeStyle
	Dash   *Dash
}

// Sink consumes finished strokes in drawing order. The engine only appends
// and never reads back, so any implementation that records or serializes
// strokes will do. Context writes vector output, Raster writes PNG, and
// PathBuf just remembers.
type Sink interface {
	Stroke(p Path)
}

// PathBuf is an in-memory Sink recording every stroke it receives.
type PathBuf struct {
	Paths []Path
}

// Stroke implements Sink.
func (b *PathBuf) Stroke(p Path) {
	b.Paths = append(b.Paths, p)
}
