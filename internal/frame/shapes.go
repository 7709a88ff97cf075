package frame

import "math"

// Parallelogram leans the frame by a skew angle: the top edge shifts
// right and the bottom edge shifts left of centre (for a positive
// angle).
type Parallelogram struct {
	SkewAngle float64 // degrees, positive leans right
}

// Vertices returns the four corners in order: bottom-left,
// bottom-right, top-right, top-left.
func (p Parallelogram) Vertices(cx, cy, w, h float64) []Point {
	halfW := w / 2
	halfH := h / 2
	skew := halfH * math.Tan(p.SkewAngle*math.Pi/180)

	return []Point{
		{X: cx - halfW - skew, Y: cy - halfH},
		{X: cx + halfW - skew, Y: cy - halfH},
		{X: cx + halfW + skew, Y: cy + halfH},
		{X: cx - halfW + skew, Y: cy + halfH},
	}
}

// Rhombus is a diamond with optional rotation about its centre.
type Rhombus struct {
	RotationAngle float64 // degrees, 0 = diamond pointing up
}

// Vertices returns the four corners in order: top, right, bottom, left
// (before rotation).
func (r Rhombus) Vertices(cx, cy, w, h float64) []Point {
	halfW := w / 2
	halfH := h / 2

	verts := []Point{
		{X: cx, Y: cy + halfH},
		{X: cx + halfW, Y: cy},
		{X: cx, Y: cy - halfH},
		{X: cx - halfW, Y: cy},
	}

	if r.RotationAngle == 0 {
		return verts
	}

	rad := r.RotationAngle * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	for i, v := range verts {
		dx, dy := v.X-cx, v.Y-cy
		verts[i] = Point{
			X: cx + dx*cos - dy*sin,
			Y: cy + dx*sin + dy*cos,
		}
	}
	return verts
}
