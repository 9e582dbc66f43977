package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/catalog"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/models"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/planner"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/stats"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/workout"
)

func newTestHandlers(t *testing.T) *handlers {
	t.Helper()
	static, err := catalog.NewStatic()
	if err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := planner.New(static, planner.Options{}, log)
	if err != nil {
		t.Fatal(err)
	}
	return &handlers{planner: p, log: log}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

// resultText returns the text content of a tool result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := mcp.AsTextContent(res.Content[0])
	if !ok {
		t.Fatalf("content type = %T, want text", res.Content[0])
	}
	return tc.Text
}

func decodeResult[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	var v T
	if err := json.Unmarshal([]byte(resultText(t, res)), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

// TestNewRegistersTools verifies the server builds with every tool.
func TestNewRegistersTools(t *testing.T) {
	h := newTestHandlers(t)
	if s := New(h.planner, "test", h.log); s == nil {
		t.Fatal("New returned nil")
	}
}

// TestSearchExoplanets verifies search results and the limit bounds.
func TestSearchExoplanets(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	res, err := h.searchExoplanets(ctx, callRequest(map[string]any{"query": "corot", "limit": float64(2)}))
	if err != nil {
		t.Fatal(err)
	}
	got := decodeResult[catalog.SearchResponse](t, res)
	if got.Total != 2 || got.Query != "corot" {
		t.Errorf("response = %+v, want 2 results for corot", got)
	}

	res, _ = h.searchExoplanets(ctx, callRequest(map[string]any{"limit": float64(0)}))
	if !res.IsError {
		t.Error("limit 0 should be rejected")
	}
}

// TestGetExoplanet verifies lookup and the not-found path.
func TestGetExoplanet(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	res, _ := h.getExoplanet(ctx, callRequest(map[string]any{"name": "gj 3470 b"}))
	if p := decodeResult[models.Exoplanet](t, res); p.Name != "GJ 3470 b" {
		t.Errorf("name = %q", p.Name)
	}

	res, _ = h.getExoplanet(ctx, callRequest(map[string]any{"name": "Tatooine"}))
	if !res.IsError {
		t.Error("unknown planet should be an error result")
	}

	res, _ = h.getExoplanet(ctx, callRequest(nil))
	if !res.IsError || resultText(t, res) != "name parameter is required" {
		t.Error("missing name should be an error result")
	}
}

// TestGetWorkoutPlan verifies plans from numeric arguments.
func TestGetWorkoutPlan(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	res, _ := h.getWorkoutPlan(ctx, callRequest(map[string]any{"gravity": 4.905, "label": "Half-g"}))
	plan := decodeResult[planner.Plan](t, res)
	if plan.IntensityIndex != 3 {
		t.Errorf("intensity_index = %d, want 3", plan.IntensityIndex)
	}
	if plan.Schedule.PlanetLabel != "Half-g" || len(plan.Schedule.Sessions) != 7 {
		t.Errorf("schedule = %q with %d sessions", plan.Schedule.PlanetLabel, len(plan.Schedule.Sessions))
	}

	res, _ = h.getWorkoutPlan(ctx, callRequest(map[string]any{"g_fraction": 1.0, "intensity_index": 2.5}))
	if !res.IsError {
		t.Error("fractional intensity_index should be rejected")
	}

	res, _ = h.getWorkoutPlan(ctx, callRequest(map[string]any{}))
	if !res.IsError || !strings.HasPrefix(resultText(t, res), "invalid arguments") {
		t.Error("missing gravity input should be an invalid-arguments error")
	}
}

// TestGetWorkoutSession verifies a single session for a near-Earth catalog
// planet carries no safety notes.
func TestGetWorkoutSession(t *testing.T) {
	h := newTestHandlers(t)
	res, _ := h.getWorkoutSession(context.Background(), callRequest(map[string]any{"planet": "GJ 9827 d"}))
	s := decodeResult[workout.Session](t, res)
	if s.PlanetLabel != "GJ 9827 d" || len(s.Exercises) != 6 || len(s.SafetyNotes) != 0 {
		t.Errorf("session = %+v", s)
	}
}

// TestPredictIntensity verifies mappings and argument validation.
func TestPredictIntensity(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	tests := []struct {
		name string
		args map[string]any
		want int
	}{
		{"piecewise earth", map[string]any{"g_fraction": 1.0}, 5},
		{"linear", map[string]any{"g_fraction": 0.5, "mapping": "linear"}, 6},
		{"nonlinear", map[string]any{"g_fraction": 0.25, "mapping": "nonlinear", "alpha": 0.5}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := h.predictIntensity(ctx, callRequest(tt.args))
			if got := decodeResult[planner.Prediction](t, res); got.IntensityIndex != tt.want {
				t.Errorf("intensity_index = %d, want %d", got.IntensityIndex, tt.want)
			}
		})
	}

	res, _ := h.predictIntensity(ctx, callRequest(map[string]any{"g_fraction": 1.0, "mapping": "cubic"}))
	if !res.IsError {
		t.Error("unknown mapping should be rejected")
	}
}

// TestDatasetStatsAndLibrary verifies the parameterless tools.
func TestDatasetStatsAndLibrary(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	res, _ := h.getDatasetStats(ctx, callRequest(nil))
	if st := decodeResult[stats.DatasetStats](t, res); st.TotalPlanets != 200 {
		t.Errorf("total_planets = %d, want 200", st.TotalPlanets)
	}

	res, _ = h.listExercises(ctx, callRequest(nil))
	if lib := decodeResult[[]workout.BaseExercise](t, res); len(lib) != 6 {
		t.Errorf("library size = %d, want 6", len(lib))
	}
}

// TestResources verifies each resource returns JSON under its own URI.
func TestResources(t *testing.T) {
	h := newTestHandlers(t)
	tests := []struct {
		uri     string
		handler func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)
		want    string
	}{
		{resExerciseLibrary.URI, h.exerciseLibrary, `"Squats"`},
		{resWeeklyThemes.URI, h.weeklyThemes, `"HIIT Training"`},
		{resDatasetStats.URI, h.datasetStats, `"total_planets":200`},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			var req mcp.ReadResourceRequest
			req.Params.URI = tt.uri
			contents, err := tt.handler(context.Background(), req)
			if err != nil {
				t.Fatal(err)
			}
			tc, ok := contents[0].(mcp.TextResourceContents)
			if !ok {
				t.Fatalf("contents type = %T", contents[0])
			}
			if tc.URI != tt.uri || !strings.Contains(tc.Text, tt.want) {
				t.Errorf("resource %s = %s, want it to contain %s", tc.URI, tc.Text, tt.want)
			}
		})
	}
}
