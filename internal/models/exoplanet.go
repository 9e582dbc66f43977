package models

import "github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/stats"

// Exoplanet is one catalog row. Field names follow the NASA Exoplanet
// Archive columns. Optional measurements are nil when the archive has no
// value.
type Exoplanet struct {
	Name            string   `json:"pl_name"`
	Hostname        string   `json:"hostname"`
	Radius          float64  `json:"pl_rade"`   // Earth radii
	Mass            float64  `json:"pl_bmasse"` // Earth masses
	GravityFraction float64  `json:"g_fraction"`
	IntensityIndex  int      `json:"intensity_index"`
	OrbitalPeriod   *float64 `json:"pl_orbper,omitempty"`  // days
	SemiMajorAxis   *float64 `json:"pl_orbsmax,omitempty"` // AU
	EquilibriumTemp *float64 `json:"pl_eqt,omitempty"`     // K
	StellarTemp     *float64 `json:"st_teff,omitempty"`    // K
	Distance        *float64 `json:"sy_dist,omitempty"`    // parsec
	DefaultFlag     bool     `json:"default_flag,omitempty"`
}

// StatsRecord converts p for aggregation.
func (p Exoplanet) StatsRecord() stats.Record {
	g, m, r, i := p.GravityFraction, p.Mass, p.Radius, p.IntensityIndex
	return stats.Record{GravityFraction: &g, Mass: &m, Radius: &r, IntensityIndex: &i}
}

// StatsRecords converts a slice of planets for aggregation.
func StatsRecords(planets []Exoplanet) []stats.Record {
	out := make([]stats.Record, len(planets))
	for i, p := range planets {
		out[i] = p.StatsRecord()
	}
	return out
}
