package sketch

import (
	"github.com/fogleman/gg"
)

// Raster is a Sink backed by fogleman/gg for quick PNG previews. gg is
// y-down like device space, so points go through unchanged.
type Raster struct {
	ctx *gg.Context
}

// NewRaster returns a white w x h pixel canvas.
func NewRaster(w, h int) *Raster {
	ctx := gg.NewContext(w, h)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()
	return &Raster{ctx: ctx}
}

// Stroke implements Sink.
func (r *Raster) Stroke(p Path) {
	if len(p.Points) < 2 {
		return
	}
	r.ctx.SetColor(hexColor(p.Style.Color))
	r.ctx.SetLineWidth(p.Style.Width)
	r.ctx.SetLineCap(lineCap(p.Style.Linecap))
	r.ctx.SetLineJoin(lineJoin(p.Style.Linejoin))
	if p.Dash != nil {
		r.ctx.SetDash(p.Dash.Len, p.Dash.Gap)
		r.ctx.SetDashOffset(p.Dash.Offset)
	} else {
		r.ctx.SetDash()
		r.ctx.SetDashOffset(0)
	}

	r.ctx.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, q := range p.Points[1:] {
		r.ctx.LineTo(q.X, q.Y)
	}
	r.ctx.Stroke()
}

// SavePNG writes the rendered image to fname.
func (r *Raster) SavePNG(fname string) error {
	return r.ctx.SavePNG(fname)
}

func lineCap(name string) gg.LineCap {
	switch name {
	case "butt":
		return gg.LineCapButt
	case "square":
		return gg.LineCapSquare
	default:
		return gg.LineCapRound
	}
}

func lineJoin(name string) gg.LineJoin {
	// gg has no miter join; bevel is the closest.
	if name == "bevel" || name == "miter" {
		return gg.LineJoinBevel
	}
	return gg.LineJoinRound
}
