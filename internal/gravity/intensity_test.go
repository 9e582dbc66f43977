package gravity

import (
	"errors"
	"math"
	"testing"
)

// TestIntensityIndex verifies every segment and both breakpoints.
func TestIntensityIndex(t *testing.T) {
	tests := []struct {
		fraction float64
		want     int
	}{
		{0, 1},
		{0.1, 1},
		{0.25, 2},
		{0.5, 3},
		{0.75, 4},
		{1.0, 5},
		{1.25, 6},
		{1.5, 7},
		{1.75, 8},
		{2.0, 8},
		{2.5, 9},
		{2.75, 10},
		{3.0, 10},
		{100, 10},
		{1e19, 10},
		{math.MaxFloat64, 10},
		{math.Inf(1), 10},
	}

	for _, tt := range tests {
		if got := IntensityIndex(tt.fraction); got != tt.want {
			t.Errorf("IntensityIndex(%v) = %d, want %d", tt.fraction, got, tt.want)
		}
	}
}

// TestIntensityIndexExtremeGravity verifies a huge but finite surface gravity
// saturates at the top of the scale instead of wrapping.
func TestIntensityIndexExtremeGravity(t *testing.T) {
	g := 1e20
	f, err := Normalize(&g, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := IntensityIndex(f); got != MaxIndex {
		t.Errorf("IntensityIndex(%v) = %d, want %d", f, got, MaxIndex)
	}
	for _, m := range []Mapping{MappingLinear, MappingNonlinear} {
		got, err := IndexFor(m, f, DefaultAlpha)
		if err != nil {
			t.Fatal(err)
		}
		if got != MinIndex {
			t.Errorf("IndexFor(%s, %v) = %d, want %d", m, f, got, MinIndex)
		}
	}
}

// TestIntensityIndexNaN verifies NaN maps to the minimum index.
func TestIntensityIndexNaN(t *testing.T) {
	if got := IntensityIndex(math.NaN()); got != MinIndex {
		t.Errorf("IntensityIndex(NaN) = %d, want %d", got, MinIndex)
	}
}

// TestIntensityIndexMonotonic sweeps the fraction range and checks the index
// stays in bounds and never decreases.
func TestIntensityIndexMonotonic(t *testing.T) {
	prev := IntensityIndex(0)
	for i := 0; i <= 5000; i++ {
		f := float64(i) / 1000
		got := IntensityIndex(f)
		if got < MinIndex || got > MaxIndex {
			t.Fatalf("IntensityIndex(%v) = %d, outside [%d, %d]", f, got, MinIndex, MaxIndex)
		}
		if got < prev {
			t.Fatalf("IntensityIndex(%v) = %d, decreased from %d", f, got, prev)
		}
		prev = got
	}
}

// TestTierOf verifies tier boundaries.
func TestTierOf(t *testing.T) {
	tests := []struct {
		index int
		want  Tier
	}{
		{1, TierLow}, {3, TierLow},
		{4, TierMedium}, {7, TierMedium},
		{8, TierHigh}, {10, TierHigh},
	}
	for _, tt := range tests {
		if got := TierOf(tt.index); got != tt.want {
			t.Errorf("TierOf(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

// TestBandOf verifies the safety bands share the mapper breakpoints.
func TestBandOf(t *testing.T) {
	tests := []struct {
		fraction float64
		want     Band
	}{
		{0.1, BandLow},
		{0.5, BandLow},
		{0.51, BandNominal},
		{1.0, BandNominal},
		{1.5, BandNominal},
		{1.51, BandHigh},
		{3, BandHigh},
	}
	for _, tt := range tests {
		if got := BandOf(tt.fraction); got != tt.want {
			t.Errorf("BandOf(%v) = %q, want %q", tt.fraction, got, tt.want)
		}
	}
}

// TestIndexFor verifies the alternative mappings and their validation.
func TestIndexFor(t *testing.T) {
	tests := []struct {
		name     string
		mapping  Mapping
		fraction float64
		alpha    float64
		want     int
		wantErr  bool
	}{
		{"piecewise", MappingPiecewise, 2.0, DefaultAlpha, 8, false},
		{"empty is piecewise", "", 1.0, DefaultAlpha, 5, false},
		{"linear earth", MappingLinear, 1.0, DefaultAlpha, 1, false},
		{"linear zero", MappingLinear, 0, DefaultAlpha, 10, false},
		{"linear catalog row", MappingLinear, 0.7700683077, DefaultAlpha, 3, false},
		{"linear clamps high gravity", MappingLinear, 2.0, DefaultAlpha, 1, false},
		{"nonlinear alpha one", MappingNonlinear, 0.6258647202, 1.0, 4, false},
		{"nonlinear alpha two", MappingNonlinear, 0.5, 2.0, 8, false},
		{"nonlinear alpha too small", MappingNonlinear, 0.5, 0.05, 0, true},
		{"nonlinear alpha too large", MappingNonlinear, 0.5, 2.5, 0, true},
		{"negative fraction", MappingLinear, -1, DefaultAlpha, 0, true},
		{"unknown mapping", Mapping("cubic"), 1, DefaultAlpha, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IndexFor(tt.mapping, tt.fraction, tt.alpha)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("err = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IndexFor = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestParseMapping verifies accepted mapping names.
func TestParseMapping(t *testing.T) {
	for _, s := range []string{"", "piecewise", "linear", "nonlinear"} {
		if _, err := ParseMapping(s); err != nil {
			t.Errorf("ParseMapping(%q) error: %v", s, err)
		}
	}
	if _, err := ParseMapping("quadratic"); err == nil {
		t.Error("ParseMapping(quadratic) expected error")
	}
}

// TestClampIndex verifies out-of-range indices are forced into bounds.
func TestClampIndex(t *testing.T) {
	for in, want := range map[int]int{-3: 1, 0: 1, 1: 1, 5: 5, 10: 10, 11: 10} {
		if got := ClampIndex(in); got != want {
			t.Errorf("ClampIndex(%d) = %d, want %d", in, got, want)
		}
	}
}
