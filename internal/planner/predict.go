package planner

import (
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/gravity"
)

// PredictRequest asks for the intensity index of a gravity fraction under a
// chosen mapping.
type PredictRequest struct {
	GravityFraction *float64 `json:"g_fraction"`
	Alpha           *float64 `json:"alpha,omitempty"`
	Mapping         string   `json:"mapping,omitempty"`
}

// Prediction is the result of Predict.
type Prediction struct {
	IntensityIndex int               `json:"intensity_index"`
	Tier           gravity.Tier      `json:"tier"`
	Details        PredictionDetails `json:"details"`
}

// PredictionDetails echoes the resolved inputs.
type PredictionDetails struct {
	GravityFraction float64         `json:"g_fraction"`
	Alpha           float64         `json:"alpha"`
	Mapping         gravity.Mapping `json:"mapping"`
}

// Predict maps a gravity fraction to an intensity index.
func Predict(req PredictRequest) (*Prediction, error) {
	if req.GravityFraction == nil {
		return nil, gravity.ErrMissingInput
	}
	m, err := gravity.ParseMapping(req.Mapping)
	if err != nil {
		return nil, err
	}
	alpha := gravity.DefaultAlpha
	if req.Alpha != nil {
		alpha = *req.Alpha
	}

	idx, err := gravity.IndexFor(m, *req.GravityFraction, alpha)
	if err != nil {
		return nil, err
	}
	return &Prediction{
		IntensityIndex: idx,
		Tier:           gravity.TierOf(idx),
		Details: PredictionDetails{
			GravityFraction: *req.GravityFraction,
			Alpha:           alpha,
			Mapping:         m,
		},
	}, nil
}
