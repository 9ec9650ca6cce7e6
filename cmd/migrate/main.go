// Command migrate manages the PostgreSQL schema.
//
// Usage: migrate [up|down|status]   (default: up)
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notekeeper-backend/internal/app"
	"github.com/heartmarshall/notekeeper-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Store.Driver != config.DriverPostgres {
		log.Fatalf("migrate: store driver is %q, migrations apply to %q only", cfg.Store.Driver, config.DriverPostgres)
	}

	logger := app.NewLogger(cfg.Log)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, cfg.Database.DSN, command, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn, command string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := postgres.NewMigrator(db)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("up: %w", err)
		}
		logResults(logger, results)
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("down: %w", err)
		}
		logResults(logger, []*goose.MigrationResult{result})
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("status: %w", err)
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Source.Version),
				slog.String("path", s.Source.Path),
				slog.String("state", string(s.State)),
			)
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}

	return nil
}

func logResults(logger *slog.Logger, results []*goose.MigrationResult) {
	if len(results) == 0 {
		logger.Info("no migrations to apply")
		return
	}
	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.String("direction", r.Direction),
			slog.Duration("duration", r.Duration),
		)
	}
}
