// Package stats aggregates summary statistics over a planet collection.
package stats

import (
	"errors"
	"maps"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/gravity"
)

// ErrEmptyDataset is returned when there is nothing to aggregate.
var ErrEmptyDataset = errors.New("empty dataset")

// Range is the min, max and mean of one field.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// Record is the subset of a planet used for aggregation. Missing fields are
// nil and excluded from the corresponding range.
type Record struct {
	GravityFraction *float64
	Mass            *float64
	Radius          *float64
	IntensityIndex  *int
}

// DatasetStats summarises a planet collection. A range is nil when no record
// carries that field.
type DatasetStats struct {
	TotalPlanets               int         `json:"total_planets"`
	GravityFractionRange       *Range      `json:"g_fraction_range,omitempty"`
	IntensityIndexDistribution map[int]int `json:"intensity_index_distribution"`
	MassRange                  *Range      `json:"mass_range,omitempty"`
	RadiusRange                *Range      `json:"radius_range,omitempty"`
}

type accumulator struct {
	n             int
	min, max, sum float64
}

func (a *accumulator) add(v *float64) {
	if v == nil {
		return
	}
	if a.n == 0 || *v < a.min {
		a.min = *v
	}
	if a.n == 0 || *v > a.max {
		a.max = *v
	}
	a.sum += *v
	a.n++
}

func (a *accumulator) result() *Range {
	if a.n == 0 {
		return nil
	}
	return &Range{Min: a.min, Max: a.max, Mean: a.sum / float64(a.n)}
}

// Aggregate computes DatasetStats over records. Every index 1-10 is present
// in the distribution. A record without an intensity index has one derived
// from its gravity fraction, or from mass and radius; a supplied index is
// clamped into range. Records with neither are counted in TotalPlanets only.
func Aggregate(records []Record) (*DatasetStats, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	dist := make(map[int]int, gravity.MaxIndex)
	for i := gravity.MinIndex; i <= gravity.MaxIndex; i++ {
		dist[i] = 0
	}

	var g, mass, radius accumulator
	for _, r := range records {
		g.add(r.GravityFraction)
		mass.add(r.Mass)
		radius.add(r.Radius)

		if idx, ok := indexOf(r); ok {
			dist[idx]++
		}
	}

	return &DatasetStats{
		TotalPlanets:               len(records),
		GravityFractionRange:       g.result(),
		IntensityIndexDistribution: dist,
		MassRange:                  mass.result(),
		RadiusRange:                radius.result(),
	}, nil
}

func indexOf(r Record) (int, bool) {
	if r.IntensityIndex != nil {
		return gravity.ClampIndex(*r.IntensityIndex), true
	}
	p := gravity.Parameters{Fraction: r.GravityFraction, Mass: r.Mass, Radius: r.Radius}
	f, err := p.GravityFraction()
	if err != nil {
		return 0, false
	}
	return gravity.IntensityIndex(f), true
}

// Clone returns a deep copy of d.
func (d *DatasetStats) Clone() *DatasetStats {
	out := *d
	out.IntensityIndexDistribution = maps.Clone(d.IntensityIndexDistribution)
	for _, r := range []**Range{&out.GravityFractionRange, &out.MassRange, &out.RadiusRange} {
		if *r != nil {
			v := **r
			*r = &v
		}
	}
	return &out
}
