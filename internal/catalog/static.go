package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/models"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/stats"
)

//go:embed data/planets.json data/stats.json
var snapshot embed.FS

// Static serves the embedded snapshot. It is used when the database is not
// configured or unreachable.
type Static struct {
	planets []models.Exoplanet
	stats   stats.DatasetStats
}

var _ Source = (*Static)(nil)

// NewStatic loads the embedded snapshot.
func NewStatic() (*Static, error) {
	s := &Static{}
	if err := readJSON("data/planets.json", &s.planets); err != nil {
		return nil, err
	}
	if err := readJSON("data/stats.json", &s.stats); err != nil {
		return nil, err
	}
	return s, nil
}

func readJSON(name string, v any) error {
	data, err := snapshot.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

func (s *Static) Search(_ context.Context, query string, limit int) ([]models.Exoplanet, error) {
	return search(s.planets, query, ClampLimit(limit, DefaultSearchLimit)), nil
}

func (s *Static) Get(_ context.Context, name string) (*models.Exoplanet, error) {
	return lookup(s.planets, name)
}

func (s *Static) Sample(_ context.Context, limit int) ([]models.Exoplanet, error) {
	return search(s.planets, "", ClampLimit(limit, DefaultSampleLimit)), nil
}

// Stats returns a copy of the precomputed snapshot. It describes the full
// catalog, not just the embedded sample.
func (s *Static) Stats(_ context.Context) (*stats.DatasetStats, error) {
	return s.stats.Clone(), nil
}

// Planets returns a copy of the embedded planets.
func (s *Static) Planets() []models.Exoplanet {
	return slices.Clone(s.planets)
}
