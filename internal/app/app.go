package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/notekeeper-backend/internal/auth"
	"github.com/heartmarshall/notekeeper-backend/internal/config"
	authsvc "github.com/heartmarshall/notekeeper-backend/internal/service/auth"
	notesvc "github.com/heartmarshall/notekeeper-backend/internal/service/note"
	"github.com/heartmarshall/notekeeper-backend/internal/transport/middleware"
	"github.com/heartmarshall/notekeeper-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// configured store, wires services and serves HTTP until ctx is cancelled,
// then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
	)

	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, store.Users, jwtManager, cfg.Auth)
	noteService := notesvc.NewService(logger, store.Notes, cfg.Notes)

	routerCfg := rest.RouterConfig{
		Notes:  rest.NewNoteHandler(noteService, logger),
		Auth:   rest.NewAuthHandler(authService, logger),
		Health: rest.NewHealthHandler(store, store.Driver, Version),
		Global: []middleware.Middleware{
			middleware.RequestID,
			middleware.ClientIP(cfg.Server.TrustProxyHeaders),
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.BodyLimit(cfg.Server.MaxBodyBytes),
		},
		Identity: middleware.Auth(authService),
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()

		routerCfg.APILimit = limiter.Limit("api", rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		routerCfg.AuthLimit = limiter.PerMinute("auth", cfg.RateLimit.AuthPerMinute)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(routerCfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server exited")
	return nil
}
