// Package catalog looks up exoplanets. A Source is backed by Postgres, the
// embedded snapshot, or a remote GravityFit API.
package catalog

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/models"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/stats"
)

// ErrNotFound is returned by Get when no planet matches.
var ErrNotFound = errors.New("exoplanet not found")

// Search limits.
const (
	DefaultSearchLimit = 50
	MaxSearchLimit     = 500
	DefaultSampleLimit = 5
)

// Source is a queryable exoplanet catalog.
type Source interface {
	// Search matches query against planet and host names, case-insensitively,
	// with default-parameter rows first. An empty query lists the catalog.
	Search(ctx context.Context, query string, limit int) ([]models.Exoplanet, error)
	// Get returns the best match for name or ErrNotFound.
	Get(ctx context.Context, name string) (*models.Exoplanet, error)
	// Sample returns up to limit planets.
	Sample(ctx context.Context, limit int) ([]models.Exoplanet, error)
	// Stats summarises the whole catalog.
	Stats(ctx context.Context) (*stats.DatasetStats, error)
}

// SearchResponse is the JSON envelope for search results.
type SearchResponse struct {
	Exoplanets []models.Exoplanet `json:"exoplanets"`
	Total      int                `json:"total"`
	Query      string             `json:"query,omitempty"`
}

// ClampLimit applies the default and upper bound to a requested limit.
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, MaxSearchLimit)
}

// search filters planets in memory with the same ordering rules as the SQL
// implementation.
func search(planets []models.Exoplanet, query string, limit int) []models.Exoplanet {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Exoplanet
	for _, p := range planets {
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Hostname), q) {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, byDefaultFlag)
	if len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []models.Exoplanet{}
	}
	return out
}

// lookup prefers an exact (case-insensitive) name over a partial one, and a
// default-parameter row within each.
func lookup(planets []models.Exoplanet, name string) (*models.Exoplanet, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return nil, ErrNotFound
	}
	var exact, partial []models.Exoplanet
	for _, p := range planets {
		pn := strings.ToLower(p.Name)
		switch {
		case pn == n:
			exact = append(exact, p)
		case strings.Contains(pn, n):
			partial = append(partial, p)
		}
	}
	for _, group := range [][]models.Exoplanet{exact, partial} {
		if len(group) == 0 {
			continue
		}
		slices.SortStableFunc(group, byDefaultFlag)
		p := group[0]
		return &p, nil
	}
	return nil, ErrNotFound
}

func byDefaultFlag(a, b models.Exoplanet) int {
	return cmp.Compare(flag(b.DefaultFlag), flag(a.DefaultFlag))
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
