// Command syncer retries a failed or partial submission sync for one event.
// It is intended for operators responding to a stuck reconciliation, invoked
// by hand or from a runbook, not as an in-process goroutine.
//
// Usage:
//
//	syncer -event <event-uuid> -actor <admin-uuid>
//
// Exit codes: 0 = sync converged, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore"
	adminrepo "github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/admin"
	auditrepo "github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/audit"
	eventrepo "github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/event"
	submissionrepo "github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/submission"
	syncstaterepo "github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/syncstate"
	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/writer"
	"github.com/hackweekhq/hackweek-backend/internal/app"
	"github.com/hackweekhq/hackweek-backend/internal/config"
	syncsvc "github.com/hackweekhq/hackweek-backend/internal/service/sync"
)

func main() {
	eventFlag := flag.String("event", "", "event id to sync")
	actorFlag := flag.String("actor", "", "admin user id the run is attributed to")
	flag.Parse()

	eventID, err := uuid.Parse(*eventFlag)
	if err != nil {
		log.Fatalf("-event must be a valid uuid: %v", err)
	}
	actorID, err := uuid.Parse(*actorFlag)
	if err != nil {
		log.Fatalf("-actor must be a valid uuid: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store := tablestore.New(cfg.Store.BaseURL, cfg.Store.APIKey, cfg.Store.Timeout, logger)
	rows := writer.New(store, logger)

	svc := syncsvc.NewService(
		logger,
		eventrepo.New(store, rows),
		adminrepo.New(store),
		submissionrepo.New(store, rows),
		syncstaterepo.New(store),
		auditrepo.New(store, cfg.Sync.AuditRetention),
	)

	result, err := svc.RetrySync(ctx, actorID, eventID)
	if err != nil {
		logger.Error("retry sync failed",
			slog.String("event_id", eventID.String()),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("retry sync finished",
		slog.String("event_id", eventID.String()),
		slog.String("status", result.Status.String()),
		slog.Int("pushed", result.PushedCount),
		slog.Int("skipped", result.SkippedCount),
	)
}
