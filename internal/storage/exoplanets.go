package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/catalog"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/models"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/stats"
)

// Compile-time check: *DB is a catalog source.
var _ catalog.Source = (*DB)(nil)

var exoplanetColumns = []string{
	"pl_name", "hostname", "pl_rade", "pl_bmasse", "g_fraction", "intensity_index",
	"pl_orbper", "pl_orbsmax", "pl_eqt", "st_teff", "sy_dist", "default_flag",
}

var selectExoplanets = "SELECT " + strings.Join(exoplanetColumns, ", ") + " FROM exoplanets"

func scanExoplanets(rows pgx.Rows) ([]models.Exoplanet, error) {
	defer rows.Close()

	result := []models.Exoplanet{}
	for rows.Next() {
		var p models.Exoplanet
		if err := rows.Scan(&p.Name, &p.Hostname, &p.Radius, &p.Mass, &p.GravityFraction, &p.IntensityIndex,
			&p.OrbitalPeriod, &p.SemiMajorAxis, &p.EquilibriumTemp, &p.StellarTemp, &p.Distance, &p.DefaultFlag); err != nil {
			return nil, fmt.Errorf("scanning exoplanet: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// likePattern wraps q for a substring ILIKE match, escaping wildcards.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}

// Search matches planet and host names case-insensitively. Default-parameter
// rows sort first. An empty query returns a random selection.
func (db *DB) Search(ctx context.Context, query string, limit int) ([]models.Exoplanet, error) {
	limit = catalog.ClampLimit(limit, catalog.DefaultSearchLimit)
	q := strings.TrimSpace(query)

	var (
		rows pgx.Rows
		err  error
	)
	if q == "" {
		rows, err = db.Pool.Query(ctx, selectExoplanets+` ORDER BY random() LIMIT $1`, limit)
	} else {
		rows, err = db.Pool.Query(ctx,
			selectExoplanets+` WHERE pl_name ILIKE $1 OR hostname ILIKE $1
			 ORDER BY default_flag DESC, id
			 LIMIT $2`,
			likePattern(q), limit)
	}
	if err != nil {
		return nil, fmt.Errorf("searching exoplanets: %w", err)
	}
	return scanExoplanets(rows)
}

// Get returns the planet named name, falling back to a substring match.
// Exact matches and default-parameter rows are preferred.
func (db *DB) Get(ctx context.Context, name string) (*models.Exoplanet, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, catalog.ErrNotFound
	}

	rows, err := db.Pool.Query(ctx,
		selectExoplanets+` WHERE lower(pl_name) = lower($1) OR pl_name ILIKE $2
		 ORDER BY (lower(pl_name) = lower($1)) DESC, default_flag DESC, id
		 LIMIT 1`,
		n, likePattern(n))
	if err != nil {
		return nil, fmt.Errorf("querying exoplanet %q: %w", n, err)
	}
	result, err := scanExoplanets(rows)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("exoplanet %q: %w", n, catalog.ErrNotFound)
	}
	return &result[0], nil
}

// Sample returns up to limit randomly chosen planets.
func (db *DB) Sample(ctx context.Context, limit int) ([]models.Exoplanet, error) {
	limit = catalog.ClampLimit(limit, catalog.DefaultSampleLimit)
	rows, err := db.Pool.Query(ctx, selectExoplanets+` ORDER BY random() LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("sampling exoplanets: %w", err)
	}
	return scanExoplanets(rows)
}

// Stats aggregates the whole table. An empty table yields
// stats.ErrEmptyDataset.
func (db *DB) Stats(ctx context.Context) (*stats.DatasetStats, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT g_fraction, pl_bmasse, pl_rade, intensity_index FROM exoplanets`)
	if err != nil {
		return nil, fmt.Errorf("querying exoplanet stats: %w", err)
	}
	defer rows.Close()

	var records []stats.Record
	for rows.Next() {
		var (
			g, mass, radius float64
			idx             int
		)
		if err := rows.Scan(&g, &mass, &radius, &idx); err != nil {
			return nil, fmt.Errorf("scanning exoplanet stats: %w", err)
		}
		records = append(records, stats.Record{GravityFraction: &g, Mass: &mass, Radius: &radius, IntensityIndex: &idx})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading exoplanet stats: %w", err)
	}

	return stats.Aggregate(records)
}

// ReplaceExoplanets swaps the table contents for planets in one transaction.
func (db *DB) ReplaceExoplanets(ctx context.Context, planets []models.Exoplanet) (int64, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM exoplanets`); err != nil {
		return 0, fmt.Errorf("clearing exoplanets: %w", err)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"exoplanets"}, exoplanetColumns,
		pgx.CopyFromSlice(len(planets), func(i int) ([]any, error) {
			p := planets[i]
			return []any{
				p.Name, p.Hostname, p.Radius, p.Mass, p.GravityFraction, p.IntensityIndex,
				p.OrbitalPeriod, p.SemiMajorAxis, p.EquilibriumTemp, p.StellarTemp, p.Distance, p.DefaultFlag,
			}, nil
		}))
	if err != nil {
		return 0, fmt.Errorf("copying exoplanets: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing exoplanets: %w", err)
	}
	return n, nil
}
