package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/gymtrack/internal/app"
	"github.com/meltforce/gymtrack/internal/clock"
	"github.com/meltforce/gymtrack/internal/config"
	"github.com/meltforce/gymtrack/internal/mcp"
	"github.com/meltforce/gymtrack/internal/persist"
	"github.com/meltforce/gymtrack/internal/storage"
	"github.com/meltforce/gymtrack/internal/tui"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	mcpMode := flag.Bool("mcp", false, "serve MCP over stdio instead of the interactive UI")
	ephemeral := flag.Bool("ephemeral", false, "keep data in memory only, nothing written to disk")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("gymtrack " + Version)
		return
	}

	// Load config
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to load config:", err)
			os.Exit(1)
		}
	} else {
		cfg = config.Default()
	}

	// In both modes stdout belongs to something else: the UI in interactive
	// mode, the protocol in MCP mode. Logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(cfg.Log.Level)}))
	log.Info("gymtrack starting", "version", Version)

	// Open storage
	var store storage.Store
	if *ephemeral {
		store = storage.NewMemory()
		log.Info("ephemeral mode: data will not be saved")
	} else {
		store, err = storage.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			log.Error("failed to open storage", "path", cfg.Storage.Path, "error", err)
			os.Exit(1)
		}
		log.Info("storage opened", "path", cfg.Storage.Path)
	}
	defer store.Close()

	// Load persisted state
	ctx := context.Background()
	gateway := persist.New(store, log)

	a := app.New(gateway, clock.System(), log)
	if err := a.Hydrate(ctx); err != nil {
		log.Error("failed to load saved data", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	if *mcpMode {
		srv := mcp.New(a, Version, log)
		log.Info("mcp server starting", "transport", "stdio")
		if err := mcpserver.ServeStdio(srv); err != nil {
			log.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := tui.Run(a, Version, cfg.Units); err != nil {
		log.Error("ui error", "error", err)
		os.Exit(1)
	}
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
