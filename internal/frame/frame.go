// Package frame defines the polygonal frames that hold cover images on
// the poster. A frame couples a shape (parallelogram, rhombus) with the
// shared styling every shape carries: size, spacing, border colour and
// drop shadow. Vertices are produced in figure units with y pointing
// up; the renderer maps them to pixels.
package frame

import "math"

// Point is a 2D point in figure units.
type Point struct {
	X, Y float64
}

// Shape generates the outline polygon of a frame centred at (cx, cy)
// with the given scaled width and height.
type Shape interface {
	Vertices(cx, cy, w, h float64) []Point
}

// The shadow sits slightly right of and below the frame.
const shadowOffset = 0.15

// Frame is a shape plus the styling shared by all shapes.
type Frame struct {
	Shape       Shape
	Width       float64
	Height      float64
	Spacing     float64
	BorderColor string
	ShadowAlpha float64
}

// Options configure the frame factory. Numeric values are taken as
// given, zeros included, so a preset can request zero spacing or a
// shadowless frame; the config loader supplies the defaults for keys
// a preset omits. An empty border colour falls back to white.
type Options struct {
	Width         float64
	Height        float64
	Spacing       float64
	BorderColor   string
	ShadowAlpha   float64
	SkewAngle     float64 // parallelogram only, degrees
	RotationAngle float64 // rhombus only, degrees
}

// FromPreset builds a frame for a shape preset name. Unrecognised names
// fall back to a parallelogram so a typo in a config file still renders
// a poster.
func FromPreset(kind string, opts Options) *Frame {
	if opts.BorderColor == "" {
		opts.BorderColor = "white"
	}

	f := &Frame{
		Width:       opts.Width,
		Height:      opts.Height,
		Spacing:     opts.Spacing,
		BorderColor: opts.BorderColor,
		ShadowAlpha: opts.ShadowAlpha,
	}

	switch kind {
	case "rhombus":
		f.Shape = Rhombus{RotationAngle: opts.RotationAngle}
	default:
		f.Shape = Parallelogram{SkewAngle: opts.SkewAngle}
	}
	return f
}

// Vertices returns the frame outline at the given centre and scaled
// size.
func (f *Frame) Vertices(cx, cy, w, h float64) []Point {
	return f.Shape.Vertices(cx, cy, w, h)
}

// ShadowVertices translates an outline to the drop shadow position.
func ShadowVertices(verts []Point) []Point {
	shadow := make([]Point, len(verts))
	for i, v := range verts {
		shadow[i] = Point{X: v.X + shadowOffset, Y: v.Y - shadowOffset}
	}
	return shadow
}

// BoundingBox returns the width and height of the axis-aligned box
// enclosing the polygon. The renderer sizes cover images off this box
// so skewed and rotated shapes stay fully covered.
func BoundingBox(verts []Point) (w, h float64) {
	if len(verts) == 0 {
		return 0, 0
	}

	minX, maxX := verts[0].X, verts[0].X
	minY, maxY := verts[0].Y, verts[0].Y
	for _, v := range verts[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return maxX - minX, maxY - minY
}
