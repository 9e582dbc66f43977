// Package workout scales a base exercise library to a planet's gravity and
// composes sessions and weekly schedules from it.
package workout

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidExercise is returned when a library entry cannot be scaled.
var ErrInvalidExercise = errors.New("invalid exercise")

// Category decides how an exercise's load is interpreted and scaled.
type Category string

const (
	// CategoryStrength loads are kilograms with sets and reps.
	CategoryStrength Category = "strength"
	// CategoryCardio loads are minutes.
	CategoryCardio Category = "cardio"
	// CategoryFlexibility loads are minutes.
	CategoryFlexibility Category = "flexibility"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryStrength, CategoryCardio, CategoryFlexibility:
		return true
	}
	return false
}

// BaseExercise is an Earth-gravity reference exercise.
type BaseExercise struct {
	Name               string   `json:"name"`
	Category           Category `json:"category"`
	BaseLoad           float64  `json:"base_load"`
	BaseSets           int      `json:"base_sets,omitempty"`
	BaseReps           int      `json:"base_reps,omitempty"`
	GravitySensitivity float64  `json:"gravity_sensitivity"`
}

// Validate checks the entry can be scaled.
func (e BaseExercise) Validate() error {
	switch {
	case e.Name == "":
		return fmt.Errorf("empty name: %w", ErrInvalidExercise)
	case !e.Category.Valid():
		return fmt.Errorf("%s: unknown category %q: %w", e.Name, e.Category, ErrInvalidExercise)
	case math.IsNaN(e.BaseLoad) || math.IsInf(e.BaseLoad, 0) || e.BaseLoad < 0:
		return fmt.Errorf("%s: base load %v: %w", e.Name, e.BaseLoad, ErrInvalidExercise)
	case math.IsNaN(e.GravitySensitivity) || e.GravitySensitivity < 0 || e.GravitySensitivity > 1:
		return fmt.Errorf("%s: sensitivity %v outside [0, 1]: %w", e.Name, e.GravitySensitivity, ErrInvalidExercise)
	case e.Category == CategoryStrength && (e.BaseSets <= 0 || e.BaseReps <= 0):
		return fmt.Errorf("%s: strength exercise needs sets and reps: %w", e.Name, ErrInvalidExercise)
	}
	return nil
}

// Library is an ordered list of base exercises. Order is preserved in every
// session built from it.
type Library []BaseExercise

// Validate checks every entry and rejects duplicate names.
func (l Library) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("empty library: %w", ErrInvalidExercise)
	}
	seen := make(map[string]bool, len(l))
	for _, e := range l {
		if err := e.Validate(); err != nil {
			return err
		}
		if seen[e.Name] {
			return fmt.Errorf("%s: duplicate name: %w", e.Name, ErrInvalidExercise)
		}
		seen[e.Name] = true
	}
	return nil
}

var defaultLibrary = Library{
	{Name: "Squats", Category: CategoryStrength, BaseLoad: 60, BaseSets: 3, BaseReps: 12, GravitySensitivity: 0.8},
	{Name: "Push-ups", Category: CategoryStrength, BaseLoad: 0, BaseSets: 3, BaseReps: 15, GravitySensitivity: 0.7},
	{Name: "Deadlifts", Category: CategoryStrength, BaseLoad: 80, BaseSets: 3, BaseReps: 8, GravitySensitivity: 0.9},
	{Name: "Cardio Run", Category: CategoryCardio, BaseLoad: 30, GravitySensitivity: 0.6},
	{Name: "Resistance Band", Category: CategoryStrength, BaseLoad: 25, BaseSets: 3, BaseReps: 15, GravitySensitivity: 0.3},
	{Name: "Yoga Flow", Category: CategoryFlexibility, BaseLoad: 20, GravitySensitivity: 0.2},
}

// DefaultLibrary returns a copy of the built-in exercise library.
func DefaultLibrary() Library {
	return slices.Clone(defaultLibrary)
}

// MinGravityMultiplier keeps scaled loads positive when a low gravity
// fraction meets a high sensitivity.
const MinGravityMultiplier = 0.01

// ScaledExercise is a base exercise adjusted to a gravity fraction. Sets,
// reps and the device set-point are only present for strength exercises.
type ScaledExercise struct {
	BaseExercise
	GravityMultiplier float64 `json:"gravity_multiplier"`
	ScaledLoad        int     `json:"scaled_load"`
	ScaledSets        *int    `json:"scaled_sets,omitempty"`
	ScaledReps        *int    `json:"scaled_reps,omitempty"`
	DeviceSetPoint    *int    `json:"device_set_point,omitempty"`
}

// Multiplier returns 1 + (fraction-1)*sensitivity, floored at
// MinGravityMultiplier.
func Multiplier(fraction, sensitivity float64) float64 {
	return math.Max(MinGravityMultiplier, 1+(fraction-1)*sensitivity)
}

// Scale adjusts ex to the given gravity fraction. Reps fall with the inverse
// square root of the multiplier so total working volume stays roughly level.
func Scale(ex BaseExercise, fraction float64) ScaledExercise {
	m := Multiplier(fraction, ex.GravitySensitivity)
	out := ScaledExercise{
		BaseExercise:      ex,
		GravityMultiplier: m,
		ScaledLoad:        round(ex.BaseLoad * m),
	}
	if ex.Category != CategoryStrength {
		return out
	}

	sets := ex.BaseSets
	reps := round(float64(ex.BaseReps) / math.Sqrt(m))
	setPoint := out.ScaledLoad
	out.ScaledSets = &sets
	out.ScaledReps = &reps
	out.DeviceSetPoint = &setPoint
	return out
}

// ScaleAll scales every exercise in lib, preserving order.
func ScaleAll(lib Library, fraction float64) []ScaledExercise {
	out := make([]ScaledExercise, 0, len(lib))
	for _, ex := range lib {
		out = append(out, Scale(ex, fraction))
	}
	return out
}

// maxScaled caps scaled loads and reps; beyond it the float to int
// conversion would wrap.
const maxScaled = math.MaxInt32

func round(v float64) int {
	return int(math.Round(math.Max(0, math.Min(maxScaled, v))))
}
