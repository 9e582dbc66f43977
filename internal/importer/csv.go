package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/gravity"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/models"
)

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{"pl_name", "pl_rade", "pl_bmasse"}

// ParseStats counts what ParseCSV did with each data row.
type ParseStats struct {
	RowsRead    int
	RowsSkipped int
	Derived     int // rows whose g_fraction or intensity_index was computed
}

// ParseCSV reads NASA Exoplanet Archive rows. Lines starting with '#' are
// ignored and columns are located by header name.
//
// Rows are kept only when radius, mass and gravity fraction are positive and
// the intensity index lies in 1-10. A missing g_fraction is derived from
// mass and radius. A missing intensity_index, or every index when recompute
// is set, is derived from the gravity fraction.
func ParseCSV(r io.Reader, recompute bool) ([]models.Exoplanet, ParseStats, error) {
	var st ParseStats

	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, st, fmt.Errorf("reading header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, st, fmt.Errorf("%s: %w", c, ErrMissingColumn)
		}
	}

	planets := []models.Exoplanet{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, st, fmt.Errorf("reading row %d: %w", st.RowsRead+1, err)
		}
		st.RowsRead++

		p, derived, ok := parseRow(rec, cols, recompute)
		if !ok {
			st.RowsSkipped++
			continue
		}
		if derived {
			st.Derived++
		}
		planets = append(planets, p)
	}
	return planets, st, nil
}

func parseRow(rec []string, cols map[string]int, recompute bool) (models.Exoplanet, bool, bool) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	p := models.Exoplanet{
		Name:     field("pl_name"),
		Hostname: field("hostname"),
	}
	if p.Name == "" {
		return p, false, false
	}

	radius, ok := parseFloat(field("pl_rade"))
	if !ok || radius <= 0 {
		return p, false, false
	}
	mass, ok := parseFloat(field("pl_bmasse"))
	if !ok || mass <= 0 {
		return p, false, false
	}
	p.Radius, p.Mass = radius, mass

	derived := false
	g, ok := parseFloat(field("g_fraction"))
	if !ok {
		var err error
		if g, err = gravity.FromMassRadius(mass, radius); err != nil {
			return p, false, false
		}
		derived = true
	}
	if g <= 0 {
		return p, false, false
	}
	p.GravityFraction = g

	idx, ok := parseFloat(field("intensity_index"))
	switch {
	case recompute || !ok:
		p.IntensityIndex = gravity.IntensityIndex(g)
		derived = true
	case idx < gravity.MinIndex || idx > gravity.MaxIndex:
		return p, false, false
	default:
		p.IntensityIndex = int(math.Round(idx))
	}

	p.OrbitalPeriod = optFloat(field("pl_orbper"))
	p.SemiMajorAxis = optFloat(field("pl_orbsmax"))
	p.EquilibriumTemp = optFloat(field("pl_eqt"))
	p.StellarTemp = optFloat(field("st_teff"))
	p.Distance = optFloat(field("sy_dist"))
	p.DefaultFlag = parseFlag(field("default_flag"))

	return p, derived, true
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func optFloat(s string) *float64 {
	v, ok := parseFloat(s)
	if !ok {
		return nil
	}
	return &v
}

func parseFlag(s string) bool {
	switch strings.ToLower(s) {
	case "1", "1.0", "true", "t", "yes":
		return true
	}
	return false
}
