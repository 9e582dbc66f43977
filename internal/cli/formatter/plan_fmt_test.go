package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/gravity"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/models"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/planner"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/stats"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/workout"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{
		{"wide-cell", "x"},
		{"y"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "wide-cell  x")
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestFormatPlan_HighGravity(t *testing.T) {
	week := workout.ComposeWeek("Heavy", 2.0, 8, workout.DefaultLibrary())
	s := week.Sessions[0]
	plan := &planner.Plan{
		GravityFraction: 2.0,
		IntensityIndex:  8,
		Tier:            gravity.TierHigh,
		Schedule:        week,
		DeviceSetPoints: workout.DeviceSetPoints(s),
		IntensityNotes:  workout.IntensityNotes(8),
	}

	out := FormatPlan(plan)
	assert.Contains(t, out, "WEEKLY PLAN: HEAVY")
	assert.Contains(t, out, "2.00 g")
	assert.Contains(t, out, "8/10 HIGH")
	assert.Contains(t, out, "350 min/week")
	assert.Contains(t, out, "High gravity: Reduce impact exercises to prevent injury")
	assert.Contains(t, out, "High intensity: Ensure proper warm-up and cool-down")
	assert.Contains(t, out, "RECOVERY")
}

func TestFormatSession_OptionalColumns(t *testing.T) {
	s := workout.ComposeSession("Moon", 0.165, 1, workout.DefaultLibrary())
	out := FormatSession(&s)
	assert.Contains(t, out, "SESSION: MOON")
	assert.Contains(t, out, "Squats")
	assert.Contains(t, out, "Low gravity: Focus on resistance training to maintain bone density")
}

func TestFormatPrediction_ShowsAlphaForNonlinear(t *testing.T) {
	p := &planner.Prediction{
		IntensityIndex: 6,
		Tier:           gravity.TierMedium,
		Details:        planner.PredictionDetails{GravityFraction: 0.25, Alpha: 0.5, Mapping: gravity.MappingNonlinear},
	}
	out := FormatPrediction(p)
	assert.Contains(t, out, "6/10 MEDIUM")
	assert.Contains(t, out, "alpha=0.5")

	p.Details.Mapping = gravity.MappingLinear
	assert.NotContains(t, FormatPrediction(p), "alpha")
}

func TestFormatPlanets_Empty(t *testing.T) {
	assert.Contains(t, FormatPlanets(nil), "No exoplanets found.")
}

func TestFormatPlanets_Rows(t *testing.T) {
	out := FormatPlanets([]models.Exoplanet{
		{Name: "Alpha b", Hostname: "Alpha", GravityFraction: 1.234, IntensityIndex: 5},
	})
	assert.Contains(t, out, "Alpha b")
	assert.Contains(t, out, "1.23 g")
}

func TestFormatStats_MissingRanges(t *testing.T) {
	out := FormatStats(&stats.DatasetStats{
		TotalPlanets:               1,
		IntensityIndexDistribution: map[int]int{1: 0, 2: 0, 3: 1, 4: 0, 5: 0, 6: 0, 7: 0, 8: 0, 9: 0, 10: 0},
	})
	assert.Contains(t, out, "Planets  1")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, strings.Repeat("█", 30))
}
