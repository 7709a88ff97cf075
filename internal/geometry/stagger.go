package geometry

// Stagger computes the vertical offset of each frame within a group, so
// a row of covers can zig-zag or cascade instead of sitting on a flat
// baseline. Offsets are in figure units; positive shifts a frame up.
type Stagger interface {
	// Offset returns the vertical shift for the frame at index within a
	// group of total frames.
	Offset(index, total int) float64
}

// NoStagger keeps every frame on the baseline.
type NoStagger struct{}

func (NoStagger) Offset(index, total int) float64 { return 0 }

// AlternatingStagger produces a zig-zag: even indices shift up, odd
// indices shift down. The offsets are re-centred around zero so groups
// with an odd frame count do not drift upward as a whole.
type AlternatingStagger struct {
	Step float64
}

func (a AlternatingStagger) Offset(index, total int) float64 {
	base := a.Step
	if index%2 == 0 {
		base = -a.Step
	}

	var mean float64
	if total%2 != 0 && total > 0 {
		// One more "up" frame than "down": mean is -step/total.
		mean = -a.Step / float64(total)
	}
	return base - mean
}

// StaircaseStagger slides frames along a diagonal, centred on the
// group: for n frames the offsets are (i - (n-1)/2) * step.
type StaircaseStagger struct {
	Step float64
}

func (s StaircaseStagger) Offset(index, total int) float64 {
	center := float64(total-1) / 2.0
	return (float64(index) - center) * s.Step
}

// StaggerFromPreset builds a Stagger for a preset name. Unknown names
// fall back to no stagger, matching the permissive preset handling of
// the frame factory.
func StaggerFromPreset(kind string, step float64) Stagger {
	switch kind {
	case "alternating":
		return AlternatingStagger{Step: step}
	case "staircase":
		return StaircaseStagger{Step: step}
	default:
		return NoStagger{}
	}
}
