// Package mcp exposes the workout planner to MCP clients.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/planner"
)

// New creates an MCP server with all tools and resources registered.
func New(p *planner.Service, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("GravityFit", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("GravityFit plans weekly workouts scaled to the surface gravity of an exoplanet. Look up planets in the catalog, then request a plan by planet name or by gravity, mass and radius, or Earth-relative gravity fraction."),
	)

	h := &handlers{planner: p, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolSearchExoplanets, Handler: h.searchExoplanets},
		server.ServerTool{Tool: toolGetExoplanet, Handler: h.getExoplanet},
		server.ServerTool{Tool: toolGetWorkoutPlan, Handler: h.getWorkoutPlan},
		server.ServerTool{Tool: toolGetWorkoutSession, Handler: h.getWorkoutSession},
		server.ServerTool{Tool: toolPredictIntensity, Handler: h.predictIntensity},
		server.ServerTool{Tool: toolGetDatasetStats, Handler: h.getDatasetStats},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resExerciseLibrary, Handler: h.exerciseLibrary},
		server.ServerResource{Resource: resWeeklyThemes, Handler: h.weeklyThemes},
		server.ServerResource{Resource: resDatasetStats, Handler: h.datasetStats},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	planner *planner.Service
	log     *slog.Logger
}

// --- Resource definitions ---

var resExerciseLibrary = mcp.NewResource(
	"gravityfit://exercise_library",
	"Exercise Library",
	mcp.WithResourceDescription("Base exercises with Earth-gravity load, sets, reps and gravity sensitivity"),
	mcp.WithMIMEType("application/json"),
)

var resWeeklyThemes = mcp.NewResource(
	"gravityfit://weekly_themes",
	"Weekly Themes",
	mcp.WithResourceDescription("Day themes of the seven-day schedule, Monday first"),
	mcp.WithMIMEType("application/json"),
)

var resDatasetStats = mcp.NewResource(
	"gravityfit://dataset_stats",
	"Dataset Stats",
	mcp.WithResourceDescription("Summary of the exoplanet catalog: planet count, gravity/mass/radius ranges and intensity distribution"),
	mcp.WithMIMEType("application/json"),
)
