package frame

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func pointsAlmostEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !almostEqual(a[i].X, b[i].X) || !almostEqual(a[i].Y, b[i].Y) {
			return false
		}
	}
	return true
}

// TestParallelogramVertices verifies the skew geometry: the top edge
// shifts right and the bottom edge left by halfHeight*tan(skew), and a
// zero skew degenerates to a rectangle.
func TestParallelogramVertices(t *testing.T) {
	t.Run("zero skew is a rectangle", func(t *testing.T) {
		got := Parallelogram{SkewAngle: 0}.Vertices(0, 0, 4, 2)
		want := []Point{
			{X: -2, Y: -1},
			{X: 2, Y: -1},
			{X: 2, Y: 1},
			{X: -2, Y: 1},
		}
		if !pointsAlmostEqual(got, want) {
			t.Errorf("Vertices = %v, want %v", got, want)
		}
	})

	t.Run("45 degree skew shifts edges by half height", func(t *testing.T) {
		// tan(45°) = 1, so the shift equals halfH = 1.
		got := Parallelogram{SkewAngle: 45}.Vertices(10, 20, 4, 2)
		want := []Point{
			{X: 10 - 2 - 1, Y: 19},
			{X: 10 + 2 - 1, Y: 19},
			{X: 10 + 2 + 1, Y: 21},
			{X: 10 - 2 + 1, Y: 21},
		}
		if !pointsAlmostEqual(got, want) {
			t.Errorf("Vertices = %v, want %v", got, want)
		}
	})

	t.Run("skew preserves edge lengths horizontally", func(t *testing.T) {
		verts := Parallelogram{SkewAngle: 15}.Vertices(0, 0, 2.8, 3.5)
		bottom := verts[1].X - verts[0].X
		top := verts[2].X - verts[3].X
		if !almostEqual(bottom, 2.8) || !almostEqual(top, 2.8) {
			t.Errorf("edge widths = %v and %v, want 2.8", bottom, top)
		}
	})
}

// TestRhombusVertices verifies the diamond shape and its rotation: at
// zero rotation the points are axis-aligned; a 90 degree rotation maps
// the top vertex onto the left (y-up counter-clockwise).
func TestRhombusVertices(t *testing.T) {
	t.Run("unrotated diamond", func(t *testing.T) {
		got := Rhombus{}.Vertices(0, 0, 4, 2)
		want := []Point{
			{X: 0, Y: 1},
			{X: 2, Y: 0},
			{X: 0, Y: -1},
			{X: -2, Y: 0},
		}
		if !pointsAlmostEqual(got, want) {
			t.Errorf("Vertices = %v, want %v", got, want)
		}
	})

	t.Run("90 degree rotation", func(t *testing.T) {
		got := Rhombus{RotationAngle: 90}.Vertices(0, 0, 2, 2)
		want := []Point{
			{X: -1, Y: 0}, // top -> left
			{X: 0, Y: 1},  // right -> top
			{X: 1, Y: 0},  // bottom -> right
			{X: 0, Y: -1}, // left -> bottom
		}
		if !pointsAlmostEqual(got, want) {
			t.Errorf("Vertices = %v, want %v", got, want)
		}
	})

	t.Run("rotation preserves distances from centre", func(t *testing.T) {
		for _, angle := range []float64{0, 15, 33, 90, 180} {
			verts := Rhombus{RotationAngle: angle}.Vertices(5, 7, 4, 2)
			for i, v := range verts {
				d := math.Hypot(v.X-5, v.Y-7)
				want := 1.0
				if i%2 == 1 {
					want = 2.0
				}
				if !almostEqual(d, want) {
					t.Errorf("angle %v vertex %d distance = %v, want %v", angle, i, d, want)
				}
			}
		}
	})
}

// TestShadowVertices verifies the fixed drop-shadow translation:
// right and down in figure units.
func TestShadowVertices(t *testing.T) {
	verts := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	shadow := ShadowVertices(verts)

	if !almostEqual(shadow[0].X, 0.15) || !almostEqual(shadow[0].Y, -0.15) {
		t.Errorf("shadow[0] = %v, want (0.15, -0.15)", shadow[0])
	}
	if !almostEqual(shadow[1].X, 1.15) || !almostEqual(shadow[1].Y, 0.85) {
		t.Errorf("shadow[1] = %v, want (1.15, 0.85)", shadow[1])
	}

	// The original slice must not be mutated.
	if verts[0].X != 0 || verts[0].Y != 0 {
		t.Error("ShadowVertices mutated its input")
	}
}

// TestBoundingBox verifies the enclosing box of skewed shapes: a
// parallelogram's box is wider than its nominal width by twice the skew
// offset.
func TestBoundingBox(t *testing.T) {
	verts := Parallelogram{SkewAngle: 45}.Vertices(0, 0, 4, 2)
	w, h := BoundingBox(verts)
	if !almostEqual(w, 4+2*1.0) {
		t.Errorf("bounding width = %v, want 6", w)
	}
	if !almostEqual(h, 2) {
		t.Errorf("bounding height = %v, want 2", h)
	}

	if w, h := BoundingBox(nil); w != 0 || h != 0 {
		t.Errorf("BoundingBox(nil) = (%v, %v), want (0, 0)", w, h)
	}
}

// TestFromPreset verifies shape dispatch and the parallelogram
// fallback for unknown preset names.
func TestFromPreset(t *testing.T) {
	opts := Options{Width: 2.8, Height: 3.5, Spacing: 0.5, SkewAngle: 15}

	f := FromPreset("parallelogram", opts)
	if _, ok := f.Shape.(Parallelogram); !ok {
		t.Errorf("FromPreset(parallelogram) shape = %T, want Parallelogram", f.Shape)
	}

	f = FromPreset("rhombus", Options{Width: 2, Height: 2, RotationAngle: 45})
	if _, ok := f.Shape.(Rhombus); !ok {
		t.Errorf("FromPreset(rhombus) shape = %T, want Rhombus", f.Shape)
	}

	f = FromPreset("hexagon", opts)
	if _, ok := f.Shape.(Parallelogram); !ok {
		t.Errorf("unknown preset shape = %T, want Parallelogram fallback", f.Shape)
	}
	if f.Width != 2.8 || f.Height != 3.5 {
		t.Errorf("frame size = %vx%v, want 2.8x3.5", f.Width, f.Height)
	}
}

// TestFromPresetZeroValues verifies explicit zeros survive the factory,
// so a preset can ask for zero spacing or a shadowless frame, while an
// empty border colour falls back to white.
func TestFromPresetZeroValues(t *testing.T) {
	f := FromPreset("parallelogram", Options{Width: 2, Height: 3})
	if f.Spacing != 0 {
		t.Errorf("spacing = %v, want 0 preserved", f.Spacing)
	}
	if f.ShadowAlpha != 0 {
		t.Errorf("shadow alpha = %v, want 0 preserved", f.ShadowAlpha)
	}
	if f.BorderColor != "white" {
		t.Errorf("border color = %q, want white fallback", f.BorderColor)
	}
}
