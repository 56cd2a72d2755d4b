package sketch

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// Context is a Sink backed by tdewolff/canvas, with SVG, PDF and PNG
// writers. Strokes arrive in device coordinates (y down); canvas puts its
// origin at the bottom left, so y is flipped on the way in.
type Context struct {
	c      *canvas.Canvas
	ctx    *canvas.Context
	height float64
}

// NewContext returns an empty canvas of width x height device units.
func NewContext(width, height float64) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		height: height,
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// Stroke implements Sink.
func (ctx *Context) Stroke(p Path) {
	if len(p.Points) < 2 {
		return
	}
	ctx.ctx.SetStrokeColor(hexColor(p.Style.Color))
	ctx.ctx.SetStrokeWidth(p.Style.Width)
	ctx.ctx.SetStrokeCapper(capper(p.Style.Linecap))
	ctx.ctx.SetStrokeJoiner(joiner(p.Style.Linejoin))
	if p.Dash != nil {
		ctx.ctx.SetDashes(p.Dash.Offset, p.Dash.Len, p.Dash.Gap)
	} else {
		ctx.ctx.SetDashes(0.0)
	}

	ctx.ctx.MoveTo(p.Points[0].X, ctx.height-p.Points[0].Y)
	for _, q := range p.Points[1:] {
		ctx.ctx.LineTo(q.X, ctx.height-q.Y)
	}
	ctx.ctx.Stroke()
}

// Reset empties the canvas.
func (ctx *Context) Reset() {
	ctx.c.Reset()
}

// WritePNG writes to a PNG file.
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(3.2))
}

// WriteSVG writes to an SVG file.
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file.
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

// hexColor parses "#rgb" or "#rrggbb"; anything unparseable falls back to
// black, matching how browsers treat a broken stroke attribute.
func hexColor(s string) colorful.Color {
	col, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return col
}

func capper(name string) canvas.Capper {
	switch name {
	case "butt":
		return canvas.ButtCap
	case "square":
		return canvas.SquareCap
	default:
		return canvas.RoundCap
	}
}

func joiner(name string) canvas.Joiner {
	switch name {
	case "bevel":
		return canvas.BevelJoin
	case "miter":
		return canvas.MiterJoin
	default:
		return canvas.RoundJoin
	}
}
