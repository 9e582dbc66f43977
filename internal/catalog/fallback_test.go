package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/models"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/stats"
)

// failingSource returns err from every method.
type failingSource struct{ err error }

func (f failingSource) Search(context.Context, string, int) ([]models.Exoplanet, error) {
	return nil, f.err
}
func (f failingSource) Get(context.Context, string) (*models.Exoplanet, error) { return nil, f.err }
func (f failingSource) Sample(context.Context, int) ([]models.Exoplanet, error) {
	return nil, f.err
}
func (f failingSource) Stats(context.Context) (*stats.DatasetStats, error) { return nil, f.err }

// TestFallbackOnPrimaryError verifies transport errors are hidden behind the
// static snapshot and reported to the hook.
func TestFallbackOnPrimaryError(t *testing.T) {
	var ops []string
	f := &Fallback{
		Primary:    failingSource{err: errors.New("connection refused")},
		Static:     newTestStatic(t),
		OnFallback: func(op string, _ error) { ops = append(ops, op) },
	}
	ctx := context.Background()

	res, err := f.Search(ctx, "gj", 0)
	if err != nil {
		t.Fatalf("Search err = %v", err)
	}
	if len(res) != 3 {
		t.Errorf("Search = %d results, want 3", len(res))
	}

	p, err := f.Get(ctx, "HAT-P-12 b")
	if err != nil || p.Name != "HAT-P-12 b" {
		t.Errorf("Get = %v, %v", p, err)
	}

	if _, err := f.Sample(ctx, 2); err != nil {
		t.Errorf("Sample err = %v", err)
	}

	st, err := f.Stats(ctx)
	if err != nil || st.TotalPlanets != 200 {
		t.Errorf("Stats = %v, %v", st, err)
	}

	want := []string{"search", "get", "sample", "stats"}
	if fmt.Sprint(ops) != fmt.Sprint(want) {
		t.Errorf("fallback ops = %v, want %v", ops, want)
	}
}

// TestFallbackNotFoundPassesThrough verifies a genuine miss is not masked.
func TestFallbackNotFoundPassesThrough(t *testing.T) {
	called := false
	f := &Fallback{
		Primary:    failingSource{err: fmt.Errorf("querying: %w", ErrNotFound)},
		Static:     newTestStatic(t),
		OnFallback: func(string, error) { called = true },
	}
	if _, err := f.Get(context.Background(), "CoRoT-22 b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if called {
		t.Error("OnFallback called for ErrNotFound")
	}
}

// TestFallbackEmptyStats verifies an empty primary catalog serves the snapshot.
func TestFallbackEmptyStats(t *testing.T) {
	f := &Fallback{Primary: failingSource{err: stats.ErrEmptyDataset}, Static: newTestStatic(t)}
	st, err := f.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalPlanets != 200 {
		t.Errorf("TotalPlanets = %d, want 200", st.TotalPlanets)
	}
}

// TestFallbackCanceledContext verifies cancellation is returned, not masked.
func TestFallbackCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &Fallback{Primary: failingSource{err: context.Canceled}, Static: newTestStatic(t)}
	if _, err := f.Search(ctx, "", 0); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
