package mcp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/catalog"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/gravity"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/planner"
)

// optFloat returns the numeric argument key, or nil when it is absent.
func optFloat(req mcp.CallToolRequest, key string) *float64 {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return nil
	}
	return &v
}

// planRequest reads the planet and gravity arguments shared by the plan tools.
func planRequest(req mcp.CallToolRequest) (planner.Request, error) {
	r := planner.Request{
		Planet: req.GetString("planet", ""),
		Label:  req.GetString("label", ""),
		Parameters: gravity.Parameters{
			Gravity:  optFloat(req, "gravity"),
			Mass:     optFloat(req, "mass"),
			Radius:   optFloat(req, "radius"),
			Fraction: optFloat(req, "g_fraction"),
		},
	}
	if v := optFloat(req, "intensity_index"); v != nil {
		if *v != math.Trunc(*v) {
			return r, fmt.Errorf("intensity_index must be a whole number, got %v", *v)
		}
		i := int(*v)
		r.IntensityIndex = &i
	}
	return r, nil
}

// toolError converts a planner error into a tool error result.
func (h *handlers) toolError(tool string, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, gravity.ErrMissingInput), errors.Is(err, gravity.ErrInvalidInput):
		return mcp.NewToolResultError("invalid arguments: " + err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		return mcp.NewToolResultError(err.Error())
	}
	h.log.Error("mcp "+tool, "error", err)
	return mcp.NewToolResultError("query failed: " + err.Error())
}

func jsonResult(v any) *mcp.CallToolResult {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed")
	}
	return result
}

// --- Tool definitions ---

var gravityArgs = []mcp.ToolOption{
	mcp.WithString("planet", mcp.Description("Catalog planet name (e.g. 'GJ 9827 c'). Takes precedence over the numeric arguments.")),
	mcp.WithNumber("gravity", mcp.Description("Surface gravity in m/s^2")),
	mcp.WithNumber("mass", mcp.Description("Planet mass in Earth masses; requires radius")),
	mcp.WithNumber("radius", mcp.Description("Planet radius in Earth radii; requires mass")),
	mcp.WithNumber("g_fraction", mcp.Description("Gravity as a fraction of Earth's (1.0 = Earth)")),
	mcp.WithString("label", mcp.Description("Display label for a custom planet. Defaults to 'Custom Planet'.")),
	mcp.WithNumber("intensity_index", mcp.Description("Override the computed intensity index (1-10)")),
}

var toolSearchExoplanets = mcp.NewTool("search_exoplanets",
	mcp.WithDescription("Search the exoplanet catalog by name (case-insensitive substring). An empty query returns a random sample."),
	mcp.WithString("query", mcp.Description("Name fragment, e.g. 'kepler'")),
	mcp.WithNumber("limit", mcp.Description("Maximum results (1-500). Defaults to 50.")),
)

var toolGetExoplanet = mcp.NewTool("get_exoplanet",
	mcp.WithDescription("Look up one exoplanet with its mass, radius, gravity fraction and orbital data."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Planet name, exact or partial")),
)

var toolGetWorkoutPlan = mcp.NewTool("get_workout_plan",
	append([]mcp.ToolOption{
		mcp.WithDescription("Generate a seven-day workout schedule scaled to a planet's gravity, with device set points, safety notes and recovery recommendations."),
	}, gravityArgs...)...,
)

var toolGetWorkoutSession = mcp.NewTool("get_workout_session",
	append([]mcp.ToolOption{
		mcp.WithDescription("Generate a single gravity-scaled workout session with duration and safety notes."),
	}, gravityArgs...)...,
)

var toolPredictIntensity = mcp.NewTool("predict_intensity",
	mcp.WithDescription("Compute the training intensity index (1-10) for a gravity fraction. Supports the default piecewise mapping and the legacy linear/nonlinear mappings."),
	mcp.WithNumber("g_fraction", mcp.Required(), mcp.Description("Gravity as a fraction of Earth's")),
	mcp.WithString("mapping", mcp.Description("Mapping to use. Defaults to 'piecewise'."), mcp.Enum("piecewise", "linear", "nonlinear")),
	mcp.WithNumber("alpha", mcp.Description("Exponent for the nonlinear mapping (0.1-2). Defaults to 1.")),
)

var toolGetDatasetStats = mcp.NewTool("get_dataset_stats",
	mcp.WithDescription("Summary statistics of the exoplanet catalog: planet count, gravity/mass/radius ranges and intensity distribution."),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the base exercise library with Earth-gravity loads and gravity sensitivity."),
)

// --- Tool handlers ---

func (h *handlers) searchExoplanets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	limit := req.GetInt("limit", catalog.DefaultSearchLimit)
	if limit < 1 || limit > catalog.MaxSearchLimit {
		return mcp.NewToolResultError(fmt.Sprintf("limit must be between 1 and %d", catalog.MaxSearchLimit)), nil
	}

	planets, err := h.planner.Search(ctx, query, limit)
	if err != nil {
		return h.toolError("search_exoplanets", err), nil
	}
	return jsonResult(catalog.SearchResponse{Exoplanets: planets, Total: len(planets), Query: query}), nil
}

func (h *handlers) getExoplanet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	p, err := h.planner.Exoplanet(ctx, name)
	if err != nil {
		return h.toolError("get_exoplanet", err), nil
	}
	return jsonResult(p), nil
}

func (h *handlers) getWorkoutPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := planRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	plan, err := h.planner.Plan(ctx, r)
	if err != nil {
		return h.toolError("get_workout_plan", err), nil
	}
	return jsonResult(plan), nil
}

func (h *handlers) getWorkoutSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := planRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	session, err := h.planner.Session(ctx, r)
	if err != nil {
		return h.toolError("get_workout_session", err), nil
	}
	return jsonResult(session), nil
}

func (h *handlers) predictIntensity(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fraction, err := req.RequireFloat("g_fraction")
	if err != nil {
		return mcp.NewToolResultError("g_fraction parameter is required"), nil
	}

	pred, err := planner.Predict(planner.PredictRequest{
		GravityFraction: &fraction,
		Alpha:           optFloat(req, "alpha"),
		Mapping:         req.GetString("mapping", ""),
	})
	if err != nil {
		return h.toolError("predict_intensity", err), nil
	}
	return jsonResult(pred), nil
}

func (h *handlers) getDatasetStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := h.planner.Stats(ctx)
	if err != nil {
		return h.toolError("get_dataset_stats", err), nil
	}
	return jsonResult(st), nil
}

func (h *handlers) listExercises(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.planner.Library()), nil
}
