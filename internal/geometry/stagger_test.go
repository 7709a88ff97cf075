package geometry

import (
	"math"
	"testing"
)

// TestAlternatingStagger_Centred verifies the zig-zag offsets and,
// crucially, that they sum to zero for any group size. A non-zero sum
// would shift whole frame groups off their cell centre.
func TestAlternatingStagger_Centred(t *testing.T) {
	st := AlternatingStagger{Step: 0.3}

	for total := 1; total <= 6; total++ {
		var sum float64
		for i := 0; i < total; i++ {
			sum += st.Offset(i, total)
		}
		if math.Abs(sum) > 1e-9 {
			t.Errorf("offsets for group of %d sum to %v, want 0", total, sum)
		}
	}

	// Even groups: pure alternation, no re-centring.
	if got := st.Offset(0, 2); !almostEqual(got, -0.3) {
		t.Errorf("Offset(0, 2) = %v, want -0.3", got)
	}
	if got := st.Offset(1, 2); !almostEqual(got, 0.3) {
		t.Errorf("Offset(1, 2) = %v, want 0.3", got)
	}

	// Odd groups: mean of -step/total is subtracted from each offset.
	if got := st.Offset(0, 3); !almostEqual(got, -0.3+0.1) {
		t.Errorf("Offset(0, 3) = %v, want -0.2", got)
	}
	if got := st.Offset(1, 3); !almostEqual(got, 0.3+0.1) {
		t.Errorf("Offset(1, 3) = %v, want 0.4", got)
	}
}

// TestStaircaseStagger verifies the centred diagonal: for n frames the
// offsets are (i - (n-1)/2) * step.
func TestStaircaseStagger(t *testing.T) {
	st := StaircaseStagger{Step: 1.0}

	testCases := []struct {
		name  string
		total int
		want  []float64
	}{
		{name: "three frames", total: 3, want: []float64{-1, 0, 1}},
		{name: "four frames", total: 4, want: []float64{-1.5, -0.5, 0.5, 1.5}},
		{name: "five frames", total: 5, want: []float64{-2, -1, 0, 1, 2}},
		{name: "single frame", total: 1, want: []float64{0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for i, want := range tc.want {
				if got := st.Offset(i, tc.total); !almostEqual(got, want) {
					t.Errorf("Offset(%d, %d) = %v, want %v", i, tc.total, got, want)
				}
			}
		})
	}
}

// TestStaggerFromPreset verifies preset dispatch and the fallback to no
// stagger for unrecognised names.
func TestStaggerFromPreset(t *testing.T) {
	if _, ok := StaggerFromPreset("alternating", 0.3).(AlternatingStagger); !ok {
		t.Error(`StaggerFromPreset("alternating") did not return AlternatingStagger`)
	}
	if _, ok := StaggerFromPreset("staircase", 0.3).(StaircaseStagger); !ok {
		t.Error(`StaggerFromPreset("staircase") did not return StaircaseStagger`)
	}
	if _, ok := StaggerFromPreset("none", 0.3).(NoStagger); !ok {
		t.Error(`StaggerFromPreset("none") did not return NoStagger`)
	}
	if _, ok := StaggerFromPreset("wobble", 0.3).(NoStagger); !ok {
		t.Error("unknown preset should fall back to NoStagger")
	}
}
