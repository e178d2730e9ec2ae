package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hoanghai1803/bookden/internal/config"
	"github.com/hoanghai1803/bookden/internal/storage"
	"github.com/hoanghai1803/bookden/internal/stub"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dataDir := flag.String("data-dir", "", "path to data directory (overrides config)")
	flag.Parse()

	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	// Load configuration (auto-creates default if missing).
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dir := cfg.Stub.DataDir
	if *dataDir != "" {
		dir = *dataDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}

	// Open database with WAL mode and pragmas.
	db, err := storage.OpenDatabase(filepath.Join(dir, "catalog.db"))
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run schema migrations.
	if err := storage.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Create store and seed the fixture catalog on first run.
	store := storage.NewStore(db)
	if err := store.SeedFixture(context.Background()); err != nil {
		slog.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}

	router := stub.NewRouter(store)

	// Bind to localhost only; the stub stands in for a remote service but
	// should never be reachable from outside the machine.
	addr := fmt.Sprintf("localhost:%d", cfg.Stub.Port)

	slog.Info("starting catalog stub", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
