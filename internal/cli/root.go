// Package cli implements the gravityfit-plan command line.
package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/planner"
)

// App holds what the commands need.
type App struct {
	Planner *planner.Service
}

// NewRootCmd creates the top-level "gravityfit-plan" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "gravityfit-plan",
		Short:         "Gravity-scaled workout plans for exoplanets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("json", false, "Print JSON instead of formatted output")

	root.AddCommand(
		newWeekCmd(app),
		newSessionCmd(app),
		newIntensityCmd(),
		newPlanetCmd(app),
		newSearchCmd(app),
		newStatsCmd(app),
	)

	return root
}

// render writes v as indented JSON when --json is set, otherwise the
// formatted text.
func render(cmd *cobra.Command, v any, text func() string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	return write(cmd.OutOrStdout(), asJSON, v, text)
}

func write(w io.Writer, asJSON bool, v any, text func() string) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := io.WriteString(w, text())
	return err
}
