package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/catalog"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/cli"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/planner"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if os.Getenv("GRAVITYFIT_DEBUG") != "" {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	static, err := catalog.NewStatic()
	if err != nil {
		return fmt.Errorf("loading embedded catalog: %w", err)
	}

	// GRAVITYFIT_SERVER points the CLI at a running server's catalog.
	var src catalog.Source = static
	if url := os.Getenv("GRAVITYFIT_SERVER"); url != "" {
		src = &catalog.Fallback{
			Primary: catalog.NewHTTPClient(url),
			Static:  static,
			OnFallback: func(op string, err error) {
				log.Warn("server unavailable, using embedded catalog", "op", op, "error", err)
			},
		}
	}

	p, err := planner.New(src, planner.Options{}, log)
	if err != nil {
		return err
	}
	return cli.NewRootCmd(&cli.App{Planner: p}).Execute()
}
