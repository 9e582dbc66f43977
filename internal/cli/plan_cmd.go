package cli

import (
	"github.com/spf13/cobra"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/cli/formatter"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/planner"
)

// gravityFlags binds the planet selection flags shared by week and session.
type gravityFlags struct {
	planet    string
	label     string
	gravity   float64
	mass      float64
	radius    float64
	fraction  float64
	intensity int
}

func (f *gravityFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.planet, "planet", "p", "", "Catalog planet name")
	cmd.Flags().StringVar(&f.label, "label", "", "Label for a custom planet")
	cmd.Flags().Float64VarP(&f.gravity, "gravity", "g", 0, "Surface gravity in m/s^2")
	cmd.Flags().Float64Var(&f.mass, "mass", 0, "Planet mass in Earth masses")
	cmd.Flags().Float64Var(&f.radius, "radius", 0, "Planet radius in Earth radii")
	cmd.Flags().Float64Var(&f.fraction, "g-fraction", 0, "Gravity as a fraction of Earth's")
	cmd.Flags().IntVar(&f.intensity, "intensity", 0, "Override the intensity index (1-10)")
	cmd.MarkFlagsRequiredTogether("mass", "radius")
}

// request builds a planner request from the flags that were set. Unset
// flags stay nil so the planner can tell zero from missing.
func (f *gravityFlags) request(cmd *cobra.Command) planner.Request {
	set := cmd.Flags().Changed
	req := planner.Request{Planet: f.planet, Label: f.label}
	if set("gravity") {
		req.Gravity = &f.gravity
	}
	if set("mass") {
		req.Mass = &f.mass
	}
	if set("radius") {
		req.Radius = &f.radius
	}
	if set("g-fraction") {
		req.Fraction = &f.fraction
	}
	if set("intensity") {
		req.IntensityIndex = &f.intensity
	}
	return req
}

func newWeekCmd(app *App) *cobra.Command {
	var flags gravityFlags

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Generate a seven-day schedule",
		Example: `  gravityfit-plan week --planet "GJ 9827 c"
  gravityfit-plan week --gravity 19.62 --label "Heavy World"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Planner.Plan(cmd.Context(), flags.request(cmd))
			if err != nil {
				return err
			}
			return render(cmd, plan, func() string { return formatter.FormatPlan(plan) })
		},
	}
	flags.register(cmd)
	return cmd
}

func newSessionCmd(app *App) *cobra.Command {
	var flags gravityFlags

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Generate a single gravity-scaled session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Planner.Session(cmd.Context(), flags.request(cmd))
			if err != nil {
				return err
			}
			return render(cmd, s, func() string { return formatter.FormatSession(s) })
		},
	}
	flags.register(cmd)
	return cmd
}

func newIntensityCmd() *cobra.Command {
	var req planner.PredictRequest
	var fraction, alpha float64

	cmd := &cobra.Command{
		Use:   "intensity",
		Short: "Compute the intensity index for a gravity fraction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.GravityFraction = &fraction
			if cmd.Flags().Changed("alpha") {
				req.Alpha = &alpha
			}
			pred, err := planner.Predict(req)
			if err != nil {
				return err
			}
			return render(cmd, pred, func() string { return formatter.FormatPrediction(pred) })
		},
	}
	cmd.Flags().Float64Var(&fraction, "g-fraction", 0, "Gravity as a fraction of Earth's")
	cmd.Flags().StringVar(&req.Mapping, "mapping", "piecewise", "Mapping: piecewise, linear or nonlinear")
	cmd.Flags().Float64Var(&alpha, "alpha", 1, "Exponent for the nonlinear mapping (0.1-2)")
	_ = cmd.MarkFlagRequired("g-fraction")
	return cmd
}
