package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/catalog"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/cli/formatter"
)

func newPlanetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "planet NAME",
		Short: "Show one catalog planet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Planner.Exoplanet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render(cmd, p, func() string { return formatter.FormatPlanet(p) })
		},
	}
}

func newSearchCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search the catalog by name; without a query, list a random sample",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 || limit > catalog.MaxSearchLimit {
				return fmt.Errorf("--limit must be between 1 and %d", catalog.MaxSearchLimit)
			}
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			planets, err := app.Planner.Search(cmd.Context(), query, limit)
			if err != nil {
				return err
			}
			resp := catalog.SearchResponse{Exoplanets: planets, Total: len(planets), Query: query}
			return render(cmd, resp, func() string { return formatter.FormatPlanets(planets) })
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum results")
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Planner.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd, st, func() string { return formatter.FormatStats(st) })
		},
	}
}
