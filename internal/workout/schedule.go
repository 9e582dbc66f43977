package workout

import (
	"fmt"
	"slices"
)

// Theme names a day of the weekly schedule.
type Theme string

const (
	ThemeFullBody    Theme = "Full Body Strength"
	ThemeCardio      Theme = "Cardio Focus"
	ThemeUpperBody   Theme = "Upper Body"
	ThemeRecovery    Theme = "Active Recovery"
	ThemeLowerBody   Theme = "Lower Body"
	ThemeHIIT        Theme = "HIIT Training"
	ThemeFlexibility Theme = "Flexibility & Recovery"
)

var weeklyThemes = []Theme{
	ThemeFullBody,
	ThemeCardio,
	ThemeUpperBody,
	ThemeRecovery,
	ThemeLowerBody,
	ThemeHIIT,
	ThemeFlexibility,
}

// WeeklyThemes returns the day themes in schedule order.
func WeeklyThemes() []Theme {
	return slices.Clone(weeklyThemes)
}

// Variant adjusts the session generated for a theme.
type Variant func(Session) Session

// Scheduler composes weekly schedules. A theme without a variant gets the
// base session unchanged. The zero value is ready to use.
type Scheduler struct {
	Variants map[Theme]Variant
}

// WeeklySchedule is seven themed sessions with aggregate guidance.
type WeeklySchedule struct {
	PlanetLabel             string    `json:"planet_label"`
	Sessions                []Session `json:"sessions"`
	TotalWeeklyVolume       int       `json:"total_weekly_volume"`
	RecoveryRecommendations []string  `json:"recovery_recommendations"`
}

// ExtraSleepThreshold is the gravity fraction above which extra sleep is
// recommended.
const ExtraSleepThreshold = 1.2

// Compose builds the week for one planet.
func (s Scheduler) Compose(label string, fraction float64, intensityIndex int, lib Library) WeeklySchedule {
	week := WeeklySchedule{
		PlanetLabel: label,
		Sessions:    make([]Session, 0, len(weeklyThemes)),
	}
	for i, theme := range weeklyThemes {
		day := i + 1
		session := ComposeSession(fmt.Sprintf("%s - Day %d (%s)", label, day, theme), fraction, intensityIndex, lib)
		session.Day = day
		session.Theme = theme
		if v, ok := s.Variants[theme]; ok && v != nil {
			session = v(session)
		}
		week.Sessions = append(week.Sessions, session)
		week.TotalWeeklyVolume += session.DurationMinutes
	}
	week.RecoveryRecommendations = recoveryRecommendations(week.TotalWeeklyVolume, fraction)
	return week
}

// ComposeWeek builds the week with no theme variants.
func ComposeWeek(label string, fraction float64, intensityIndex int, lib Library) WeeklySchedule {
	return Scheduler{}.Compose(label, fraction, intensityIndex, lib)
}

func recoveryRecommendations(volume int, fraction float64) []string {
	sleep := "Standard recovery protocols apply"
	if fraction > ExtraSleepThreshold {
		sleep = "Extra sleep recommended due to high gravity stress"
	}
	return []string{
		fmt.Sprintf("Total weekly volume: %d minutes", volume),
		sleep,
		"Hydration needs may vary based on planetary conditions",
		"Monitor for unusual fatigue patterns in altered gravity",
	}
}
