// Command vaultctl is the operator CLI: migrations, catalog seeding, Wrapped
// dumps and admin promotion. It reads the same configuration as the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/vault-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vault-backend/internal/app"
	"github.com/heartmarshall/vault-backend/internal/config"
)

// env is the connected runtime shared by subcommands.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

// configPath is set by the persistent --config flag.
var configPath string

// withEnv loads config, connects to the database and runs fn.
func withEnv(ctx context.Context, fn func(ctx context.Context, e *env) error) error {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, &env{cfg: cfg, logger: logger, pool: pool})
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vaultctl",
		Short:         "Operator CLI for the Vault backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $CONFIG_PATH, then "+config.DefaultPath+")")

	root.AddCommand(newMigrateCmd(), newSeedCmd(), newWrappedCmd(), newPromoteCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
