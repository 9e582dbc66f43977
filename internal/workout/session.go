package workout

import (
	"slices"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/gravity"
)

// BaseSessionMinutes is the session length at the reference intensity.
const BaseSessionMinutes = 45

// Session is a single workout for one planet.
type Session struct {
	PlanetLabel     string           `json:"planet_label"`
	Day             int              `json:"day,omitempty"`
	Theme           Theme            `json:"theme,omitempty"`
	GravityFraction float64          `json:"gravity_fraction"`
	IntensityIndex  int              `json:"intensity_index"`
	DurationMinutes int              `json:"duration_minutes"`
	Exercises       []ScaledExercise `json:"exercises"`
	SafetyNotes     []string         `json:"safety_notes"`
}

var safetyNotes = map[gravity.Band][]string{
	gravity.BandLow: {
		"Low gravity: Focus on resistance training to maintain bone density",
		"Increase repetitions to compensate for reduced load",
	},
	gravity.BandNominal: {},
	gravity.BandHigh: {
		"High gravity: Reduce impact exercises to prevent injury",
		"Monitor heart rate closely during cardio activities",
		"Allow extra recovery time between sets",
	},
}

// SafetyNotes returns the advisories for a gravity fraction. The returned
// slice is never nil and may be modified by the caller.
func SafetyNotes(fraction float64) []string {
	notes := slices.Clone(safetyNotes[gravity.BandOf(fraction)])
	if notes == nil {
		notes = []string{}
	}
	return notes
}

// DurationMinutes is 45 minutes scaled by 0.8 + index*0.04.
func DurationMinutes(intensityIndex int) int {
	return round(BaseSessionMinutes * (0.8 + float64(intensityIndex)*0.04))
}

// ComposeSession scales lib to fraction and wraps it in a session. The
// intensity index is used as given.
func ComposeSession(label string, fraction float64, intensityIndex int, lib Library) Session {
	return Session{
		PlanetLabel:     label,
		GravityFraction: fraction,
		IntensityIndex:  intensityIndex,
		DurationMinutes: DurationMinutes(intensityIndex),
		Exercises:       ScaleAll(lib, fraction),
		SafetyNotes:     SafetyNotes(fraction),
	}
}

// DeviceSetPoint is the resistance a connected device should be set to for
// one strength exercise.
type DeviceSetPoint struct {
	Exercise   string  `json:"exercise"`
	SetPoint   int     `json:"set_point"`
	BaseLoad   float64 `json:"base_load"`
	ScaledLoad int     `json:"scaled_load"`
}

// DeviceSetPoints lists the set-points of the strength exercises in s, in
// session order.
func DeviceSetPoints(s Session) []DeviceSetPoint {
	out := []DeviceSetPoint{}
	for _, ex := range s.Exercises {
		if ex.DeviceSetPoint == nil {
			continue
		}
		out = append(out, DeviceSetPoint{
			Exercise:   ex.Name,
			SetPoint:   *ex.DeviceSetPoint,
			BaseLoad:   ex.BaseLoad,
			ScaledLoad: ex.ScaledLoad,
		})
	}
	return out
}

// IntensityNotes returns guidance driven by the intensity index rather than
// the gravity band.
func IntensityNotes(intensityIndex int) []string {
	switch gravity.TierOf(intensityIndex) {
	case gravity.TierHigh:
		return []string{"High intensity: Ensure proper warm-up and cool-down"}
	case gravity.TierLow:
		return []string{"Low intensity: Focus on form and technique"}
	}
	return []string{}
}
