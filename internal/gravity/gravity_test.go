package gravity

import (
	"errors"
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

// TestNormalize verifies the gravity path, the mass/radius fallback and the
// input errors.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		gravity *float64
		mass    *float64
		radius  *float64
		want    float64
		wantErr error
	}{
		{"earth gravity", ptr(9.81), nil, nil, 1.0, nil},
		{"double gravity", ptr(19.62), nil, nil, 2.0, nil},
		{"gravity is not clamped", ptr(49.05), nil, nil, 5.0, nil},
		{"gravity wins over mass", ptr(9.81), ptr(10), ptr(1), 1.0, nil},
		{"mass radius", nil, ptr(0.5), ptr(1), 0.5, nil},
		{"mass radius square", nil, ptr(2), ptr(2), 0.5, nil},
		{"mass radius clamped high", nil, ptr(4), ptr(1), 1.0, nil},
		{"mass radius clamped low", nil, ptr(-4), ptr(1), 0, nil},
		{"zero radius", nil, ptr(1), ptr(0), 0, ErrInvalidInput},
		{"negative gravity", ptr(-1), nil, nil, 0, ErrInvalidInput},
		{"nan gravity", ptr(math.NaN()), nil, nil, 0, ErrInvalidInput},
		{"nothing", nil, nil, nil, 0, ErrMissingInput},
		{"mass only", nil, ptr(1), nil, 0, ErrMissingInput},
		{"radius only", nil, nil, ptr(1), 0, ErrMissingInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.gravity, tt.mass, tt.radius)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Normalize = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestParametersGravityFraction verifies that a precomputed fraction takes
// precedence and is validated.
func TestParametersGravityFraction(t *testing.T) {
	p := Parameters{Fraction: ptr(0.7), Gravity: ptr(19.62)}
	got, err := p.GravityFraction()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.7 {
		t.Errorf("GravityFraction = %v, want 0.7", got)
	}

	p = Parameters{Gravity: ptr(19.62)}
	got, err = p.GravityFraction()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2.0 {
		t.Errorf("GravityFraction = %v, want 2.0", got)
	}

	if _, err := (Parameters{Fraction: ptr(-0.1)}).GravityFraction(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative fraction err = %v, want ErrInvalidInput", err)
	}
	if _, err := (Parameters{}).GravityFraction(); !errors.Is(err, ErrMissingInput) {
		t.Errorf("empty parameters err = %v, want ErrMissingInput", err)
	}
}

// TestFromMassRadius verifies the value-typed wrapper.
func TestFromMassRadius(t *testing.T) {
	got, err := FromMassRadius(12.2, 4.88)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 12.2 / (4.88 * 4.88)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("FromMassRadius = %v, want %v", got, want)
	}
}
