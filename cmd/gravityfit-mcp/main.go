package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/catalog"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/mcp"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/planner"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "GravityFit server URL; defaults to the embedded catalog")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("gravityfit-mcp", Version)
		return
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	static, err := catalog.NewStatic()
	if err != nil {
		log.Error("failed to load embedded catalog", "error", err)
		os.Exit(1)
	}

	var src catalog.Source = static
	if *serverURL != "" {
		src = &catalog.Fallback{
			Primary: catalog.NewHTTPClient(*serverURL),
			Static:  static,
			OnFallback: func(op string, err error) {
				log.Warn("server unavailable, using embedded catalog", "op", op, "error", err)
			},
		}
		log.Info("using remote catalog", "server", *serverURL)
	}

	p, err := planner.New(src, planner.Options{}, log)
	if err != nil {
		log.Error("failed to create planner", "error", err)
		os.Exit(1)
	}

	if err := server.ServeStdio(mcp.New(p, Version, log)); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
