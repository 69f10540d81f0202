package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vault-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vault-backend/internal/adapter/postgres/analytics"
	auditrepo "github.com/heartmarshall/vault-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/vault-backend/internal/adapter/postgres/couple"
	"github.com/heartmarshall/vault-backend/internal/adapter/postgres/entry"
	promptrepo "github.com/heartmarshall/vault-backend/internal/adapter/postgres/prompt"
	sparkrepo "github.com/heartmarshall/vault-backend/internal/adapter/postgres/spark"
	userrepo "github.com/heartmarshall/vault-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/vault-backend/internal/auth"
	"github.com/heartmarshall/vault-backend/internal/config"
	"github.com/heartmarshall/vault-backend/internal/service/audit"
	authsvc "github.com/heartmarshall/vault-backend/internal/service/auth"
	"github.com/heartmarshall/vault-backend/internal/service/journal"
	"github.com/heartmarshall/vault-backend/internal/service/prompt"
	"github.com/heartmarshall/vault-backend/internal/service/spark"
	"github.com/heartmarshall/vault-backend/internal/service/user"
	"github.com/heartmarshall/vault-backend/internal/service/vault"
	"github.com/heartmarshall/vault-backend/internal/service/wrapped"
)

// Services holds the wired application services. The HTTP server and the
// operator CLI share it.
type Services struct {
	Auth    *authsvc.Service
	User    *user.Service
	Vault   *vault.Service
	Journal *journal.Service
	Wrapped *wrapped.Service
	Spark   *spark.Service
	Prompt  *prompt.Service
	Audit   *audit.Service

	// Users is exposed for operator tasks that bypass role checks.
	Users *userrepo.Repo
	// Tx lets operator tasks group several service calls into one transaction.
	Tx *postgres.TxManager
}

// NewServices builds repositories and services on top of pool. now is the
// clock every service derives "today" from; nil means time.Now.
func NewServices(logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config, now func() time.Time) *Services {
	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	couples := couple.New(pool)
	entries := entry.New(pool)
	prompts := promptrepo.New(pool)
	sparks := sparkrepo.New(pool)
	stats := analytics.New(pool)
	changes := auditrepo.New(pool)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return &Services{
		Auth:    authsvc.NewService(logger, users, jwt, cfg.Auth, cfg.Journal),
		User:    user.NewService(logger, users, changes, tx),
		Vault:   vault.NewService(logger, couples, users, tx, cfg.Journal, now),
		Journal: journal.NewService(logger, prompts, entries, couples, users, cfg.Journal, now),
		Wrapped: wrapped.NewService(logger, stats, prompts, couples, users, now),
		Spark:   spark.NewService(logger, sparks, tx, now),
		Prompt:  prompt.NewService(logger, prompts, changes, tx, now),
		Audit:   audit.NewService(logger, changes),
		Users:   users,
		Tx:      tx,
	}
}

// schemaStatus reports pending embedded migrations for the health endpoint.
type schemaStatus struct {
	pool *pgxpool.Pool
}

func (s schemaStatus) PendingMigrations(ctx context.Context) (int, error) {
	statuses, err := postgres.MigrationsStatus(ctx, s.pool)
	if err != nil {
		return 0, err
	}
	pending := 0
	for _, st := range statuses {
		if !st.Applied {
			pending++
		}
	}
	return pending, nil
}
