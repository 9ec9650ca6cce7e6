// Command cleanup permanently removes notes that have sat in the trash
// longer than the configured retention period. It is intended to be invoked
// by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/notekeeper-backend/internal/app"
	"github.com/heartmarshall/notekeeper-backend/internal/config"
	notesvc "github.com/heartmarshall/notekeeper-backend/internal/service/note"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	svc := notesvc.NewService(logger, store.Notes, cfg.Notes)
	threshold := svc.RetentionCutoff()

	deleted, err := svc.PurgeTrashed(ctx, threshold)
	if err != nil {
		logger.Error("purge trashed notes failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		store.Close()
		os.Exit(1)
	}

	logger.Info("purge trashed notes completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
		slog.String("store", store.Driver),
	)
}
