package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hackweekhq/hackweek-backend/internal/adapter/identity"
	"github.com/hackweekhq/hackweek-backend/internal/adapter/pagehost"
	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore"
	adminrepo "github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/admin"
	auditrepo "github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/audit"
	eventrepo "github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/event"
	submissionrepo "github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/submission"
	syncstaterepo "github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/syncstate"
	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/writer"
	"github.com/hackweekhq/hackweek-backend/internal/config"
	eventsvc "github.com/hackweekhq/hackweek-backend/internal/service/event"
	"github.com/hackweekhq/hackweek-backend/internal/service/profile"
	syncsvc "github.com/hackweekhq/hackweek-backend/internal/service/sync"
	"github.com/hackweekhq/hackweek-backend/internal/transport/middleware"
	"github.com/hackweekhq/hackweek-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// table-store adapters and services, and serves HTTP until the process
// receives SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := tablestore.New(cfg.Store.BaseURL, cfg.Store.APIKey, cfg.Store.Timeout, logger)
	rows := writer.New(store, logger)

	events := eventrepo.New(store, rows)
	admins := adminrepo.New(store)
	submissions := submissionrepo.New(store, rows)
	syncStates := syncstaterepo.New(store)
	audit := auditrepo.New(store, cfg.Sync.AuditRetention)

	pages := pagehost.New(cfg.PageHost.BaseURL, cfg.PageHost.Token, cfg.PageHost.Timeout, logger)
	verifier := identity.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	eventService := eventsvc.NewService(logger, events, admins, submissions, syncStates, audit, pages)
	syncService := syncsvc.NewService(logger, events, admins, submissions, syncStates, audit)
	profileService := profile.NewService(logger, admins, submissions,
		profile.NewCache(cfg.Cache.ProfileCapacity, cfg.Cache.ProfileTTL))

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(store, BuildVersion()),
		Events:      rest.NewEventHandler(logger, eventService),
		Submissions: rest.NewSubmissionHandler(logger, eventService),
		Sync:        rest.NewSyncHandler(logger, syncService),
		Profiles:    rest.NewProfileHandler(logger, profileService),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(verifier),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
