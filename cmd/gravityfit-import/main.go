package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/config"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/importer"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	csvPath := flag.String("path", "", "path to the exoplanet catalog CSV, optionally .gz (required)")
	dryRun := flag.Bool("dry-run", false, "parse and report without writing to the database")
	force := flag.Bool("force", false, "import even if the file has not changed since the last import")
	recompute := flag.Bool("recompute-intensity", false, "derive intensity_index from g_fraction instead of the CSV column")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *csvPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: gravityfit-import -config config.yaml -path exoplanets.csv [-dry-run] [-force] [-recompute-intensity]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	opts := importer.Options{DryRun: *dryRun, Force: *force, RecomputeIntensity: *recompute}

	var store importer.Store
	if *dryRun {
		log.Info("dry run: nothing will be written to the database")
	} else {
		dsn := cfg.Database.DSN()
		if err := storage.RunMigrations(dsn, "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrations applied")

		db, err := storage.New(ctx, dsn)
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		log.Info("database connected")
		store = db
	}

	state, err := importer.OpenStateDB(cfg.Catalog.ImportStateDir)
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	res, err := importer.New(store, state, log, opts).Import(ctx, *csvPath)
	if res != nil {
		printResult(log, res)
	}
	if err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}
	log.Info("import complete")
}

func printResult(log *slog.Logger, res *importer.Result) {
	if res.Unchanged {
		log.Info("catalog unchanged since last import (use -force to re-import)")
		return
	}
	log.Info("import stats",
		"rows_read", res.RowsRead,
		"rows_skipped", res.RowsSkipped,
		"intensity_derived", res.Derived,
		"rows_inserted", res.Inserted,
	)
	if s := res.Summary; s != nil {
		attrs := []any{"planets", s.TotalPlanets}
		if s.GravityFractionRange != nil {
			attrs = append(attrs, "g_min", s.GravityFractionRange.Min, "g_max", s.GravityFractionRange.Max)
		}
		log.Info("catalog summary", attrs...)
	}
}
