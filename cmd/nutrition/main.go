// Package main is the entry point for the Nutrition Tracker terminal application.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/nutrition-tracker/backend/config"
	"github.com/nutrition-tracker/backend/internal/application/adapter"
	"github.com/nutrition-tracker/backend/internal/application/usecase/food"
	"github.com/nutrition-tracker/backend/internal/infra/db"
	"github.com/nutrition-tracker/backend/internal/infra/dependency"
	"github.com/nutrition-tracker/backend/internal/integration/adapters"
	"github.com/nutrition-tracker/backend/internal/integration/cache"
	"github.com/nutrition-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger; stdout belongs to the menu
	slog.SetDefault(newLogger(&cfg.App))

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("Nutrition Tracker stopped", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.AppConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func run(ctx context.Context, cfg *config.Config) error {
	slog.Info("Starting Nutrition Tracker",
		"environment", cfg.App.Environment,
		"driver", cfg.Database.Driver,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if !database.HealthCheck() {
		return fmt.Errorf("database %s is not reachable", cfg.Database.Driver)
	}

	// Run database migrations
	if err := database.AutoMigrate(model.All()...); err != nil {
		return err
	}
	slog.Info("Database migrations completed successfully")

	totalsCache, closeCache := newTotalsCache(&cfg.Redis)
	defer closeCache()

	injector := dependency.NewInjector(cfg, database.DB(), totalsCache, adapters.NewSystemClock())

	if cfg.Import.SeedFile != "" {
		if err := importSeed(ctx, injector, cfg.Import.SeedFile); err != nil {
			return err
		}
	}

	app := injector.NewApp(os.Stdin, os.Stdout)
	app.SetEcho(!term.IsTerminal(int(os.Stdin.Fd())))
	return app.Run(ctx)
}

// newTotalsCache returns the Redis cache when enabled and reachable, and a no-op cache otherwise.
func newTotalsCache(cfg *config.RedisConfig) (adapter.TotalsCache, func()) {
	if !cfg.Enabled {
		return cache.NewNoopTotalsCache(), func() {}
	}

	client, err := cache.NewRedisClient(cfg)
	if err != nil {
		slog.Warn("Redis unavailable, running without totals cache", "error", err)
		return cache.NewNoopTotalsCache(), func() {}
	}

	slog.Info("Totals cache enabled", "ttl", cfg.TTL)
	return cache.NewRedisTotalsCache(client, cfg.TTL), func() {
		if err := client.Close(); err != nil {
			slog.Error("Failed to close redis client", "error", err)
		}
	}
}

func importSeed(ctx context.Context, injector *dependency.Injector, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	output, err := injector.UseCases.ImportFoods.Execute(ctx, food.ImportFoodsInput{Reader: file})
	if err != nil {
		return fmt.Errorf("failed to import seed file: %w", err)
	}

	slog.Info("Seed foods imported",
		"file", path,
		"created", len(output.Created),
		"skipped", len(output.Skipped),
	)
	return nil
}
