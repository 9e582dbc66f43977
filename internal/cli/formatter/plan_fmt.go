package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/gravity"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/models"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/planner"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/stats"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/workout"
)

func fraction(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64) + " g"
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func optFloat(v *float64, unit string) string {
	if v == nil {
		return Dim("n/a")
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + unit
}

func bullets(b *strings.Builder, items []string) {
	for _, it := range items {
		fmt.Fprintf(b, "  • %s\n", it)
	}
}

// FormatPlan renders a weekly plan: overview, day table, device set points
// and advisories.
func FormatPlan(p *planner.Plan) string {
	var b strings.Builder

	b.WriteString(Header("Weekly plan: " + p.Schedule.PlanetLabel))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Gravity    %s\n", fraction(p.GravityFraction))
	fmt.Fprintf(&b, "Intensity  %s\n", IntensityBadge(p.IntensityIndex, p.Tier))
	fmt.Fprintf(&b, "Volume     %d min/week\n\n", p.Schedule.TotalWeeklyVolume)

	rows := make([][]string, 0, len(p.Schedule.Sessions))
	for _, s := range p.Schedule.Sessions {
		rows = append(rows, []string{
			strconv.Itoa(s.Day),
			string(s.Theme),
			fmt.Sprintf("%d min", s.DurationMinutes),
			strconv.Itoa(len(s.Exercises)),
		})
	}
	b.WriteString(RenderTable([]string{"DAY", "THEME", "DURATION", "EXERCISES"}, rows))

	if len(p.DeviceSetPoints) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Device set points"))
		b.WriteString("\n")
		rows = rows[:0]
		for _, d := range p.DeviceSetPoints {
			rows = append(rows, []string{
				d.Exercise,
				strconv.FormatFloat(d.BaseLoad, 'f', -1, 64),
				strconv.Itoa(d.ScaledLoad),
				StyleBlue.Render(strconv.Itoa(d.SetPoint)),
			})
		}
		b.WriteString(RenderTable([]string{"EXERCISE", "BASE", "SCALED", "SET POINT"}, rows))
	}

	var notes []string
	if len(p.Schedule.Sessions) > 0 {
		notes = p.Schedule.Sessions[0].SafetyNotes
	}
	if len(notes) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Safety"))
		b.WriteString("\n")
		bullets(&b, notes)
	}
	if len(p.IntensityNotes) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Intensity"))
		b.WriteString("\n")
		bullets(&b, p.IntensityNotes)
	}
	if len(p.Schedule.RecoveryRecommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recovery"))
		b.WriteString("\n")
		bullets(&b, p.Schedule.RecoveryRecommendations)
	}
	return b.String()
}

// FormatSession renders one session with its scaled exercises.
func FormatSession(s *workout.Session) string {
	var b strings.Builder

	b.WriteString(Header("Session: " + s.PlanetLabel))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Gravity    %s\n", fraction(s.GravityFraction))
	fmt.Fprintf(&b, "Intensity  %s\n", IntensityBadge(s.IntensityIndex, gravity.TierOf(s.IntensityIndex)))
	fmt.Fprintf(&b, "Duration   %d min\n\n", s.DurationMinutes)

	rows := make([][]string, 0, len(s.Exercises))
	for _, e := range s.Exercises {
		rows = append(rows, []string{
			e.Name,
			string(e.Category),
			strconv.FormatFloat(e.GravityMultiplier, 'f', 2, 64) + "x",
			strconv.Itoa(e.ScaledLoad),
			optInt(e.ScaledSets),
			optInt(e.ScaledReps),
		})
	}
	b.WriteString(RenderTable([]string{"EXERCISE", "CATEGORY", "MULT", "LOAD", "SETS", "REPS"}, rows))

	if len(s.SafetyNotes) > 0 {
		b.WriteString("\n")
		bullets(&b, s.SafetyNotes)
	}
	return b.String()
}

// FormatPrediction renders an intensity prediction on one line.
func FormatPrediction(p *planner.Prediction) string {
	line := fmt.Sprintf("%s  %s", IntensityBadge(p.IntensityIndex, p.Tier),
		Dim(fmt.Sprintf("g=%s mapping=%s", strconv.FormatFloat(p.Details.GravityFraction, 'f', -1, 64), p.Details.Mapping)))
	if p.Details.Mapping == gravity.MappingNonlinear {
		line += Dim(fmt.Sprintf(" alpha=%s", strconv.FormatFloat(p.Details.Alpha, 'f', -1, 64)))
	}
	return line + "\n"
}

// FormatPlanet renders a single catalog entry.
func FormatPlanet(p *models.Exoplanet) string {
	var b strings.Builder
	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	fields := [][2]string{
		{"Host star", p.Hostname},
		{"Radius", strconv.FormatFloat(p.Radius, 'f', -1, 64) + " R⊕"},
		{"Mass", strconv.FormatFloat(p.Mass, 'f', -1, 64) + " M⊕"},
		{"Gravity", fraction(p.GravityFraction)},
		{"Intensity", IntensityBadge(p.IntensityIndex, gravity.TierOf(p.IntensityIndex))},
		{"Orbital period", optFloat(p.OrbitalPeriod, " d")},
		{"Semi-major axis", optFloat(p.SemiMajorAxis, " AU")},
		{"Equilibrium temp", optFloat(p.EquilibriumTemp, " K")},
		{"Stellar temp", optFloat(p.StellarTemp, " K")},
		{"Distance", optFloat(p.Distance, " pc")},
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%-17s %s\n", f[0], f[1])
	}
	return b.String()
}

// FormatPlanets renders search results as a table.
func FormatPlanets(planets []models.Exoplanet) string {
	if len(planets) == 0 {
		return Dim("No exoplanets found.") + "\n"
	}
	rows := make([][]string, 0, len(planets))
	for _, p := range planets {
		tier := gravity.TierOf(p.IntensityIndex)
		rows = append(rows, []string{
			Bold(p.Name),
			p.Hostname,
			fraction(p.GravityFraction),
			TierStyle(tier).Render(strconv.Itoa(p.IntensityIndex)),
		})
	}
	return RenderTable([]string{"NAME", "HOST", "GRAVITY", "INDEX"}, rows)
}

func formatRange(r *stats.Range, unit string) string {
	if r == nil {
		return Dim("n/a")
	}
	return fmt.Sprintf("%.2f..%.2f%s (mean %.2f)", r.Min, r.Max, unit, r.Mean)
}

// FormatStats renders dataset statistics with a histogram of the intensity
// distribution.
func FormatStats(s *stats.DatasetStats) string {
	var b strings.Builder
	b.WriteString(Header("Catalog"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Planets  %d\n", s.TotalPlanets)
	fmt.Fprintf(&b, "Gravity  %s\n", formatRange(s.GravityFractionRange, " g"))
	fmt.Fprintf(&b, "Mass     %s\n", formatRange(s.MassRange, " M⊕"))
	fmt.Fprintf(&b, "Radius   %s\n\n", formatRange(s.RadiusRange, " R⊕"))

	peak := 0
	for _, n := range s.IntensityIndexDistribution {
		peak = max(peak, n)
	}
	const barWidth = 30
	rows := make([][]string, 0, gravity.MaxIndex)
	for i := gravity.MinIndex; i <= gravity.MaxIndex; i++ {
		n := s.IntensityIndexDistribution[i]
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("█", n*barWidth/peak)
		}
		rows = append(rows, []string{strconv.Itoa(i), strconv.Itoa(n), TierStyle(gravity.TierOf(i)).Render(bar)})
	}
	b.WriteString(RenderTable([]string{"INDEX", "PLANETS", ""}, rows))
	return b.String()
}
