// Package importer loads an exoplanet catalog CSV into Postgres.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/models"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/stats"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/storage"
)

// Store is the part of storage.DB the importer writes to.
type Store interface {
	ReplaceExoplanets(ctx context.Context, planets []models.Exoplanet) (int64, error)
	InsertImportLog(ctx context.Context, log storage.ImportLog) (uuid.UUID, error)
	UpdateImportLog(ctx context.Context, id uuid.UUID, log storage.ImportLog) error
}

var _ Store = (*storage.DB)(nil)

// Options controls an import run.
type Options struct {
	DryRun             bool // parse and report only
	Force              bool // import even if the file is unchanged
	RecomputeIntensity bool // ignore the intensity_index column
}

// Result summarises an import run.
type Result struct {
	ParseStats
	Unchanged bool
	Inserted  int64
	Summary   *stats.DatasetStats
}

// Importer reads a catalog CSV and replaces the exoplanets table with it.
type Importer struct {
	db    Store
	state *StateDB
	log   *slog.Logger
	opts  Options
}

// New creates a new Importer. state may be nil to disable change detection.
func New(db Store, state *StateDB, log *slog.Logger, opts Options) *Importer {
	return &Importer{db: db, state: state, log: log, opts: opts}
}

// Import processes the CSV (optionally gzipped) at path.
func (imp *Importer) Import(ctx context.Context, path string) (*Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}
	hash, err := HashFile(abs)
	if err != nil {
		return nil, fmt.Errorf("hashing %s: %w", abs, err)
	}

	if imp.state != nil && !imp.opts.Force {
		done, err := imp.state.IsImported(abs, info.Size(), hash)
		if err != nil {
			return nil, err
		}
		if done {
			imp.log.Info("catalog unchanged, skipping", "path", abs)
			return &Result{Unchanged: true}, nil
		}
	}

	f, err := openCatalog(abs)
	if err != nil {
		return nil, err
	}
	planets, ps, err := ParseCSV(f, imp.opts.RecomputeIntensity)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", abs, err)
	}

	res := &Result{ParseStats: ps}
	if summary, err := stats.Aggregate(models.StatsRecords(planets)); err == nil {
		res.Summary = summary
	} else if !errors.Is(err, stats.ErrEmptyDataset) {
		return nil, err
	}

	imp.log.Info("parsed catalog",
		"path", abs,
		"rows", ps.RowsRead,
		"kept", len(planets),
		"skipped", ps.RowsSkipped,
		"derived", ps.Derived,
	)
	if imp.opts.DryRun {
		return res, nil
	}
	if len(planets) == 0 {
		return res, fmt.Errorf("no usable rows in %s: %w", abs, stats.ErrEmptyDataset)
	}

	start := time.Now()
	logID, err := imp.db.InsertImportLog(ctx, storage.ImportLog{
		Source:   filepath.Base(abs),
		Status:   storage.ImportRunning,
		RowsRead: ps.RowsRead,
	})
	if err != nil {
		return nil, err
	}

	inserted, insertErr := imp.db.ReplaceExoplanets(ctx, planets)
	res.Inserted = inserted

	durationMs := int(time.Since(start).Milliseconds())
	entry := storage.ImportLog{
		Status:       storage.ImportSuccess,
		RowsRead:     ps.RowsRead,
		RowsSkipped:  ps.RowsSkipped,
		RowsInserted: inserted,
		DurationMs:   &durationMs,
	}
	if insertErr != nil {
		msg := insertErr.Error()
		entry.Status = storage.ImportError
		entry.ErrorMessage = &msg
	}
	if err := imp.db.UpdateImportLog(ctx, logID, entry); err != nil {
		imp.log.Warn("failed to update import log", "id", logID, "error", err)
	}
	if insertErr != nil {
		return res, insertErr
	}

	if imp.state != nil {
		if err := imp.state.MarkImported(abs, info.Size(), hash, inserted); err != nil {
			imp.log.Warn("failed to record import state", "error", err)
		}
	}
	return res, nil
}
