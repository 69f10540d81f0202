package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/vault-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/vault-backend/internal/app"
	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/internal/transport/rest"
	"github.com/heartmarshall/vault-backend/pkg/ctxutil"
)

func newWrappedCmd() *cobra.Command {
	var who, vault string
	var year int

	cmd := &cobra.Command{
		Use:   "wrapped",
		Short: "Print a user's Wrapped summary as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var vaultID *uuid.UUID
			if vault != "" {
				id, err := uuid.Parse(vault)
				if err != nil {
					return fmt.Errorf("--vault: %w", err)
				}
				vaultID = &id
			}

			return withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				svc := app.NewServices(e.logger, e.pool, e.cfg, nil)

				u, err := lookupUser(ctx, svc.Users, who)
				if err != nil {
					return err
				}

				wr, err := svc.Wrapped.GetWrapped(ctxutil.WithUserID(ctx, u.ID), year, vaultID)
				if err != nil {
					return err
				}
				return rest.EncodeWrapped(cmd.OutOrStdout(), wr)
			})
		},
	}
	cmd.Flags().StringVarP(&who, "user", "u", "", "user id, email or username (required)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "calendar year (required)")
	cmd.Flags().StringVar(&vault, "vault", "", "vault id (default: the user's active vault)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

// lookupUser resolves a user by id, email or username.
func lookupUser(ctx context.Context, users *user.Repo, ref string) (*domain.User, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return users.GetByID(ctx, id)
	}
	if strings.Contains(ref, "@") {
		return users.GetByEmail(ctx, strings.ToLower(ref))
	}
	return users.GetByUsername(ctx, ref)
}
