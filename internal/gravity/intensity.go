package gravity

import (
	"fmt"
	"math"
)

// Intensity index bounds.
const (
	MinIndex = 1
	MaxIndex = 10
)

// Breakpoints of the piecewise intensity mapping.
const (
	lowBreak  = 0.5
	highBreak = 1.5
)

// IntensityIndex maps a gravity fraction onto the 1-10 intensity scale.
// The mapping is piecewise linear with breakpoints at 0.5 and 1.5; both
// breakpoints belong to the lower segment.
func IntensityIndex(fraction float64) int {
	if math.IsNaN(fraction) {
		return MinIndex
	}
	switch {
	case fraction <= lowBreak:
		return max(MinIndex, round(fraction*6))
	case fraction <= highBreak:
		return round(3 + (fraction-lowBreak)*4)
	default:
		return round(math.Min(MaxIndex, 7+(fraction-highBreak)*2))
	}
}

// Tier is a coarse bucket of the intensity index.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// TierOf buckets an intensity index.
func TierOf(index int) Tier {
	switch {
	case index <= 3:
		return TierLow
	case index <= 7:
		return TierMedium
	default:
		return TierHigh
	}
}

// Band classifies a gravity fraction for safety guidance. It uses the same
// breakpoints as IntensityIndex.
type Band string

const (
	BandLow     Band = "low"
	BandNominal Band = "nominal"
	BandHigh    Band = "high"
)

// BandOf returns the band for a gravity fraction.
func BandOf(fraction float64) Band {
	switch {
	case fraction <= lowBreak:
		return BandLow
	case fraction > highBreak:
		return BandHigh
	default:
		return BandNominal
	}
}

// Mapping selects how a gravity fraction is turned into an intensity index.
type Mapping string

const (
	// MappingPiecewise is IntensityIndex.
	MappingPiecewise Mapping = "piecewise"
	// MappingLinear is 1 + 9*(1-g), the mapping the catalog's
	// intensity_index column was generated with.
	MappingLinear Mapping = "linear"
	// MappingNonlinear is 1 + 9*(1-g^alpha).
	MappingNonlinear Mapping = "nonlinear"
)

// Alpha bounds for MappingNonlinear.
const (
	MinAlpha     = 0.1
	MaxAlpha     = 2.0
	DefaultAlpha = 1.0
)

// ParseMapping validates a mapping name. The empty string selects the
// piecewise mapping.
func ParseMapping(s string) (Mapping, error) {
	switch Mapping(s) {
	case "", MappingPiecewise:
		return MappingPiecewise, nil
	case MappingLinear, MappingNonlinear:
		return Mapping(s), nil
	}
	return "", fmt.Errorf("unknown mapping %q: %w", s, ErrInvalidInput)
}

// IndexFor computes the intensity index with the given mapping. alpha is
// only used by MappingNonlinear and must lie in [MinAlpha, MaxAlpha].
func IndexFor(m Mapping, fraction, alpha float64) (int, error) {
	if !finite(fraction) || fraction < 0 {
		return 0, fmt.Errorf("g_fraction %v: %w", fraction, ErrInvalidInput)
	}
	switch m {
	case "", MappingPiecewise:
		return IntensityIndex(fraction), nil
	case MappingLinear:
		return ClampIndex(round(1 + 9*(1-fraction))), nil
	case MappingNonlinear:
		if !finite(alpha) || alpha < MinAlpha || alpha > MaxAlpha {
			return 0, fmt.Errorf("alpha %v outside [%v, %v]: %w", alpha, MinAlpha, MaxAlpha, ErrInvalidInput)
		}
		return ClampIndex(round(1 + 9*(1-math.Pow(fraction, alpha)))), nil
	}
	return 0, fmt.Errorf("unknown mapping %q: %w", m, ErrInvalidInput)
}

// ClampIndex forces an externally supplied index into [MinIndex, MaxIndex].
func ClampIndex(index int) int {
	return max(MinIndex, min(MaxIndex, index))
}

// round rounds half away from zero, saturating at the int32 range so huge
// fractions cannot wrap to a negative index.
func round(v float64) int {
	return int(math.Round(math.Max(math.MinInt32, math.Min(math.MaxInt32, v))))
}
