package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"tailscale.com/tsnet"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/catalog"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/config"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/mcp"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/metrics"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/planner"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/server"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (empty for env only)")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	log.Info("GravityFit starting", "version", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewManager("server", reg)

	static, err := catalog.NewStatic()
	if err != nil {
		log.Error("failed to load embedded catalog", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	var src catalog.Source = static
	var imports server.ImportLogSource

	if cfg.Catalog.StaticOnly {
		log.Info("serving embedded catalog only", "planets", len(static.Planets()))
	} else {
		dsn := cfg.Database.DSN()
		if err := storage.RunMigrations(dsn, "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrations applied")

		if *migrateOnly {
			log.Info("migrate-only: exiting")
			return
		}

		db, err := storage.New(ctx, dsn)
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		log.Info("database connected")

		src, imports = db, db
		if cfg.Catalog.StaticFallback {
			src = &catalog.Fallback{
				Primary: db,
				Static:  static,
				OnFallback: func(op string, err error) {
					m.CounterCatalogFallback.WithLabelValues(op).Inc()
					log.Warn("catalog degraded to embedded snapshot", "op", op, "error", err)
				},
			}
		}
	}

	p, err := planner.New(src, planner.Options{
		StatsTTL:    cfg.Cache.StatsTTL,
		CacheSizeMB: cfg.Cache.SizeMB,
		Metrics:     m,
		Snapshot:    static,
	}, log)
	if err != nil {
		log.Error("failed to create planner", "error", err)
		os.Exit(1)
	}

	srv := server.New(p, server.Options{
		CORSOrigin: cfg.Server.CORSOrigin,
		Metrics:    m,
		Gatherer:   reg,
		Imports:    imports,
		MCP:        mcpserver.NewStreamableHTTPServer(mcp.New(p, Version, log)),
	}, log)

	// Listen on the tailnet when enabled, plain TCP otherwise.
	var listener net.Listener

	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr)
	}

	httpSrv := &http.Server{Handler: srv, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// SIGHUP drops cached stats after a catalog import; SIGINT/SIGTERM shut down.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range quit {
		if sig == syscall.SIGHUP {
			p.InvalidateStats()
			log.Info("stats cache cleared")
			continue
		}
		log.Info("shutting down", "signal", sig)
		break
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
