package catalog

import (
	"context"
	"errors"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/models"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/stats"
)

// Fallback serves from Primary and switches to Static when Primary fails.
// ErrNotFound and context cancellation are returned as-is; any other
// primary error is reported to OnFallback and never reaches the caller.
type Fallback struct {
	Primary    Source
	Static     *Static
	OnFallback func(op string, err error)
}

var _ Source = (*Fallback)(nil)

func (f *Fallback) degrade(ctx context.Context, op string, err error) bool {
	if errors.Is(err, ErrNotFound) || ctx.Err() != nil {
		return false
	}
	if f.OnFallback != nil {
		f.OnFallback(op, err)
	}
	return true
}

func (f *Fallback) Search(ctx context.Context, query string, limit int) ([]models.Exoplanet, error) {
	out, err := f.Primary.Search(ctx, query, limit)
	if err != nil && f.degrade(ctx, "search", err) {
		return f.Static.Search(ctx, query, limit)
	}
	return out, err
}

func (f *Fallback) Get(ctx context.Context, name string) (*models.Exoplanet, error) {
	out, err := f.Primary.Get(ctx, name)
	if err != nil && f.degrade(ctx, "get", err) {
		return f.Static.Get(ctx, name)
	}
	return out, err
}

func (f *Fallback) Sample(ctx context.Context, limit int) ([]models.Exoplanet, error) {
	out, err := f.Primary.Sample(ctx, limit)
	if err != nil && f.degrade(ctx, "sample", err) {
		return f.Static.Sample(ctx, limit)
	}
	return out, err
}

// Stats also falls back when the primary catalog is empty.
func (f *Fallback) Stats(ctx context.Context) (*stats.DatasetStats, error) {
	out, err := f.Primary.Stats(ctx)
	if err != nil && (errors.Is(err, stats.ErrEmptyDataset) || f.degrade(ctx, "stats", err)) {
		return f.Static.Stats(ctx)
	}
	return out, err
}
