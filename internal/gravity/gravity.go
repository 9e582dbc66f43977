// Package gravity converts a planet's physical gravity into the normalized
// fraction and 1-10 intensity scale used by workout planning.
package gravity

import (
	"errors"
	"fmt"
	"math"
)

// EarthGravity is standard surface gravity in m/s².
const EarthGravity = 9.81

var (
	// ErrMissingInput is returned when neither gravity nor both mass and
	// radius are available.
	ErrMissingInput = errors.New("gravity or mass and radius required")
	// ErrInvalidInput is returned for negative, non-finite or zero-radius inputs.
	ErrInvalidInput = errors.New("invalid planetary parameters")
)

// Parameters describes a planet as received from a caller. Every field is
// optional; Fraction wins over Gravity, which wins over Mass/Radius.
type Parameters struct {
	Gravity  *float64 `json:"gravity,omitempty"` // m/s²
	Mass     *float64 `json:"mass,omitempty"`    // Earth masses
	Radius   *float64 `json:"radius,omitempty"`  // Earth radii
	Fraction *float64 `json:"g_fraction,omitempty"`
}

// GravityFraction resolves the gravity fraction for p.
func (p Parameters) GravityFraction() (float64, error) {
	if p.Fraction != nil {
		f := *p.Fraction
		if !finite(f) || f < 0 {
			return 0, fmt.Errorf("g_fraction %v: %w", f, ErrInvalidInput)
		}
		return f, nil
	}
	return Normalize(p.Gravity, p.Mass, p.Radius)
}

// Normalize returns surface gravity as a fraction of Earth's.
//
// When gravity is known the result is gravity/9.81 and is not clamped.
// Otherwise mass/radius² is used and clamped into [0, 1]. That path is an
// approximation kept for compatibility with the source dataset, not physics.
func Normalize(gravity, mass, radius *float64) (float64, error) {
	if gravity != nil {
		g := *gravity
		if !finite(g) || g < 0 {
			return 0, fmt.Errorf("gravity %v: %w", g, ErrInvalidInput)
		}
		return g / EarthGravity, nil
	}

	if mass == nil || radius == nil {
		return 0, ErrMissingInput
	}

	m, r := *mass, *radius
	if !finite(m) || !finite(r) || r <= 0 {
		return 0, fmt.Errorf("mass %v radius %v: %w", m, r, ErrInvalidInput)
	}
	return clamp(m/(r*r), 0, 1), nil
}

// FromMassRadius is the mass/radius path of Normalize without the pointers.
func FromMassRadius(mass, radius float64) (float64, error) {
	return Normalize(nil, &mass, &radius)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
