package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vault-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vault-backend/internal/config"
	"github.com/heartmarshall/vault-backend/internal/transport/middleware"
	"github.com/heartmarshall/vault-backend/internal/transport/rest"
)

const readHeaderTimeout = 5 * time.Second

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations when enabled and serves HTTP until ctx is
// cancelled.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("app: migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	svc := NewServices(logger, pool, cfg, nil)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := rest.NewRouter(NewHandlers(logger, svc, pool), rest.RouterDeps{
		Tokens:    svc.Auth,
		Limiter:   limiter,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Logger:    logger,
	})

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, server, cfg.Server.ShutdownTimeout)
}

// NewHandlers builds the REST handlers over the wired services.
func NewHandlers(logger *slog.Logger, svc *Services, pool *pgxpool.Pool) rest.Handlers {
	v := rest.NewValidator()
	return rest.Handlers{
		Health:  rest.NewHealthHandler(pool, schemaStatus{pool: pool}, Version),
		Auth:    rest.NewAuthHandler(svc.Auth, v, logger),
		Profile: rest.NewProfileHandler(svc.User, v, logger),
		Vault:   rest.NewVaultHandler(svc.Vault, v, logger),
		Journal: rest.NewJournalHandler(svc.Journal, v, logger),
		Wrapped: rest.NewWrappedHandler(svc.Wrapped, logger),
		Spark:   rest.NewSparkHandler(svc.Spark, v, logger),
		Admin:   rest.NewAdminHandler(svc.Prompt, svc.User, svc.Audit, v, logger),
	}
}

// serve runs server until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server, shutdownTimeout time.Duration) error {
	serveErr := make(chan error, 1)
	logger.Info("http server listening", slog.String("addr", server.Addr))
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := server.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
