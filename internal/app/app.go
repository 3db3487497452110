// Package app wires configuration, storage, use cases and the HTTP server
// into a running slug shortener.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/slug-shortener/internal/adapter/repository/postgres"
	"github.com/vadimbarashkov/slug-shortener/internal/config"
	"github.com/vadimbarashkov/slug-shortener/internal/usecase"
	"github.com/vadimbarashkov/slug-shortener/migrations"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/slug-shortener/internal/adapter/delivery/http"
	pg "github.com/vadimbarashkov/slug-shortener/pkg/postgres"
)

const serviceName = "slug-shortener"

func newLogger(env string) *httplog.Logger {
	opts := httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		QuietDownRoutes:  []string{"/api/v1/ping"},
		QuietDownPeriod:  10 * time.Second,
	}

	if env == config.EnvProd {
		opts.JSON = true
		opts.LogLevel = slog.LevelInfo
		opts.Concise = false
		opts.Tags = map[string]string{"env": env}
	}

	return httplog.NewLogger(serviceName, opts)
}

// newRouter builds the repositories and use cases on top of db and mounts
// them on the HTTP router.
func newRouter(logger *httplog.Logger, db *sqlx.DB, cfg *config.Config) *chi.Mux {
	recordRepo := postgres.NewRecordRepository(db)
	tokenRepo := postgres.NewTokenRepository(db)

	recordUseCase := usecase.NewRecordUseCase(
		logger.Logger,
		recordRepo,
		usecase.WithListCounts(cfg.Records.DefaultListCount, cfg.Records.MaxListCount),
	)
	tokenUseCase := usecase.NewTokenUseCase(
		tokenRepo,
		usecase.WithTokenLength(cfg.Tokens.Length),
		usecase.WithAccessTokenTTL(cfg.Tokens.AccessTokenTTL),
		usecase.WithRefreshTokenTTL(cfg.Tokens.RefreshTokenTTL),
		usecase.WithMaxAttempts(cfg.Tokens.MaxAttempts),
	)

	return delivery.NewRouter(logger, recordUseCase, tokenUseCase)
}

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := newLogger(cfg.Env)

	db, err := pg.New(
		ctx,
		cfg.Postgres.DSN(),
		pg.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
		pg.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
		pg.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
		pg.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
		pg.WithConnectTimeout(cfg.Postgres.ConnectTimeout),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	if err := pg.RunMigrations(migrations.FS, cfg.Postgres.DSN()); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        newRouter(logger, db, cfg),
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", slog.String("addr", server.Addr), slog.String("env", cfg.Env))

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
