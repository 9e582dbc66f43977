// Package planner turns catalog planets or raw planetary parameters into
// workout plans, and serves cached dataset statistics.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/coocood/freecache"
	"golang.org/x/sync/singleflight"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/catalog"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/gravity"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/metrics"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/models"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/stats"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/workout"
)

// CustomPlanetLabel labels plans built from raw parameters without a label.
const CustomPlanetLabel = "Custom Planet"

const statsCacheKey = "dataset_stats"

// Options configures a Service. The zero value uses the default exercise
// library and disables the stats cache.
type Options struct {
	Library     workout.Library
	Scheduler   workout.Scheduler
	StatsTTL    time.Duration
	CacheSizeMB int
	Metrics     *metrics.Manager
	// Snapshot answers Stats when the catalog holds no usable planets.
	Snapshot *catalog.Static
}

// Service plans workouts against a catalog.
type Service struct {
	src      catalog.Source
	lib      workout.Library
	sched    workout.Scheduler
	snapshot *catalog.Static
	cache    *freecache.Cache
	statsTTL int
	group    singleflight.Group
	metrics  *metrics.Manager
	log      *slog.Logger
}

// New creates a Service over src.
func New(src catalog.Source, opts Options, log *slog.Logger) (*Service, error) {
	lib := opts.Library
	if lib == nil {
		lib = workout.DefaultLibrary()
	}
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("validating exercise library: %w", err)
	}

	s := &Service{
		src:      src,
		lib:      lib,
		sched:    opts.Scheduler,
		snapshot: opts.Snapshot,
		metrics:  opts.Metrics,
		log:      log,
	}
	if ttl := int(opts.StatsTTL.Seconds()); ttl > 0 {
		s.cache = freecache.NewCache(max(opts.CacheSizeMB, 1) * 1024 * 1024)
		s.statsTTL = ttl
	}
	return s, nil
}

// Request identifies a planet either by catalog name or by its physical
// parameters. IntensityIndex overrides the index derived from gravity.
type Request struct {
	Planet string `json:"planet,omitempty"`
	Label  string `json:"label,omitempty"`
	gravity.Parameters
	IntensityIndex *int `json:"intensity_index,omitempty"`
}

// Plan is a full weekly program for one planet.
type Plan struct {
	Planet          *models.Exoplanet        `json:"planet,omitempty"`
	GravityFraction float64                  `json:"gravity_fraction"`
	IntensityIndex  int                      `json:"intensity_index"`
	Tier            gravity.Tier             `json:"tier"`
	Schedule        workout.WeeklySchedule   `json:"schedule"`
	DeviceSetPoints []workout.DeviceSetPoint `json:"device_set_points"`
	IntensityNotes  []string                 `json:"intensity_notes"`
}

type resolved struct {
	label    string
	planet   *models.Exoplanet
	fraction float64
	index    int
}

func (s *Service) resolve(ctx context.Context, req Request) (resolved, error) {
	var r resolved
	if req.Planet != "" {
		p, err := s.src.Get(ctx, req.Planet)
		if err != nil {
			return r, fmt.Errorf("looking up %q: %w", req.Planet, err)
		}
		r.planet = p
		r.label = p.Name
		r.fraction = p.GravityFraction
	} else {
		f, err := req.Parameters.GravityFraction()
		if err != nil {
			return r, err
		}
		r.fraction = f
		r.label = CustomPlanetLabel
	}
	if req.Label != "" {
		r.label = req.Label
	}

	r.index = gravity.IntensityIndex(r.fraction)
	if req.IntensityIndex != nil {
		idx := *req.IntensityIndex
		if idx < gravity.MinIndex || idx > gravity.MaxIndex {
			return r, fmt.Errorf("intensity_index %d outside [%d, %d]: %w", idx, gravity.MinIndex, gravity.MaxIndex, gravity.ErrInvalidInput)
		}
		r.index = idx
	}
	return r, nil
}

// Plan builds the weekly schedule for req.
func (s *Service) Plan(ctx context.Context, req Request) (*Plan, error) {
	r, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	week := s.sched.Compose(r.label, r.fraction, r.index, s.lib)
	plan := &Plan{
		Planet:          r.planet,
		GravityFraction: r.fraction,
		IntensityIndex:  r.index,
		Tier:            gravity.TierOf(r.index),
		Schedule:        week,
		DeviceSetPoints: workout.DeviceSetPoints(week.Sessions[0]),
		IntensityNotes:  workout.IntensityNotes(r.index),
	}
	s.countPlan("week", plan.Tier)
	return plan, nil
}

// PlanForPlanet builds the weekly schedule for a catalog planet.
func (s *Service) PlanForPlanet(ctx context.Context, name string) (*Plan, error) {
	return s.Plan(ctx, Request{Planet: name})
}

// Session builds a single session for req.
func (s *Service) Session(ctx context.Context, req Request) (*workout.Session, error) {
	r, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	session := workout.ComposeSession(r.label, r.fraction, r.index, s.lib)
	s.countPlan("session", gravity.TierOf(r.index))
	return &session, nil
}

func (s *Service) countPlan(kind string, tier gravity.Tier) {
	if s.metrics != nil {
		s.metrics.CounterPlans.WithLabelValues(kind, string(tier)).Inc()
	}
}

// Library returns a copy of the exercise library in use.
func (s *Service) Library() workout.Library {
	return slices.Clone(s.lib)
}

// Search queries the catalog with the default and maximum limits applied.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]models.Exoplanet, error) {
	return s.src.Search(ctx, query, catalog.ClampLimit(limit, catalog.DefaultSearchLimit))
}

// Exoplanet returns a single catalog planet.
func (s *Service) Exoplanet(ctx context.Context, name string) (*models.Exoplanet, error) {
	return s.src.Get(ctx, name)
}

// Sample returns a handful of catalog planets.
func (s *Service) Sample(ctx context.Context, limit int) ([]models.Exoplanet, error) {
	return s.src.Sample(ctx, catalog.ClampLimit(limit, catalog.DefaultSampleLimit))
}

// Stats returns catalog statistics. Results are cached for the configured
// TTL and concurrent misses share one computation. An empty catalog is
// answered from the snapshot when one is configured; that answer is not
// cached so a later import shows up immediately.
func (s *Service) Stats(ctx context.Context) (*stats.DatasetStats, error) {
	if st, ok := s.cachedStats(); ok {
		return st, nil
	}

	// The shared computation must outlive a caller that gives up early.
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(statsCacheKey, func() (any, error) {
		st, err := s.src.Stats(shared)
		if err != nil {
			return nil, err
		}
		s.storeStats(st)
		return st, nil
	})
	if errors.Is(err, stats.ErrEmptyDataset) && s.snapshot != nil {
		s.log.Warn("catalog empty, serving snapshot stats")
		return s.snapshot.Stats(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("computing dataset stats: %w", err)
	}
	return v.(*stats.DatasetStats).Clone(), nil
}

func (s *Service) cachedStats() (*stats.DatasetStats, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get([]byte(statsCacheKey))
	if err != nil {
		s.countCache("miss")
		return nil, false
	}
	var st stats.DatasetStats
	if err := json.Unmarshal(data, &st); err != nil {
		s.log.Warn("discarding cached stats", "error", err)
		s.cache.Del([]byte(statsCacheKey))
		s.countCache("miss")
		return nil, false
	}
	s.countCache("hit")
	return &st, true
}

func (s *Service) storeStats(st *stats.DatasetStats) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(st)
	if err != nil {
		s.log.Warn("encoding stats for cache", "error", err)
		return
	}
	if err := s.cache.Set([]byte(statsCacheKey), data, s.statsTTL); err != nil {
		s.log.Warn("caching stats", "error", err)
	}
}

func (s *Service) countCache(result string) {
	if s.metrics != nil {
		s.metrics.CounterStatsCache.WithLabelValues(result).Inc()
	}
}

// InvalidateStats drops the cached statistics.
func (s *Service) InvalidateStats() {
	if s.cache != nil {
		s.cache.Del([]byte(statsCacheKey))
	}
}
