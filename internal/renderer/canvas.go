package renderer

import (
	"github.com/Ribelio/Schedule-Poster-Generator/internal/frame"
	"github.com/fogleman/gg"
)

// canvas converts figure units to pixels. Figure coordinates have the
// origin at the bottom-left with y pointing up; pixel coordinates have
// the origin at the top-left with y pointing down.
type canvas struct {
	width  int
	height int
	ppu    float64 // pixels per figure unit, equal to the DPI
}

func newCanvas(figWidth, figHeight float64, dpi int) canvas {
	ppu := float64(dpi)
	return canvas{
		width:  int(figWidth * ppu),
		height: int(figHeight * ppu),
		ppu:    ppu,
	}
}

// x converts a horizontal figure coordinate to pixels.
func (c canvas) x(u float64) float64 { return u * c.ppu }

// y converts a vertical figure coordinate to pixels, flipping the axis.
func (c canvas) y(u float64) float64 { return float64(c.height) - u*c.ppu }

// points converts a font size in points to pixels at the canvas DPI.
func (c canvas) points(pt float64) float64 { return pt * c.ppu / 72.0 }

// layer returns a fresh transparent drawing context the size of the
// canvas.
func (c canvas) layer() *gg.Context {
	return gg.NewContext(c.width, c.height)
}

// tracePolygon adds the polygon to the context's current path, mapping
// each vertex from figure units to pixels.
func (c canvas) tracePolygon(dc *gg.Context, verts []frame.Point) {
	if len(verts) == 0 {
		return
	}
	dc.MoveTo(c.x(verts[0].X), c.y(verts[0].Y))
	for _, v := range verts[1:] {
		dc.LineTo(c.x(v.X), c.y(v.Y))
	}
	dc.ClosePath()
}
