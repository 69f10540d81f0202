package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vault-backend/internal/app"
	"github.com/heartmarshall/vault-backend/internal/domain"
)

// newPromoteCmd grants the admin role. It is used to bootstrap the first
// admin, who can then manage roles over the API.
func newPromoteCmd() *cobra.Command {
	var who string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				svc := app.NewServices(e.logger, e.pool, e.cfg, nil)

				u, err := lookupUser(ctx, svc.Users, who)
				if err != nil {
					return fmt.Errorf("find user %q: %w", who, err)
				}
				if u.Role.IsAdmin() {
					fmt.Fprintf(cmd.OutOrStdout(), "User %q is already admin.\n", u.Email)
					return nil
				}

				if err := svc.Users.SetRole(ctx, u.ID, domain.UserRoleAdmin); err != nil {
					return fmt.Errorf("update role: %w", err)
				}
				e.logger.InfoContext(ctx, "user promoted", slog.String("user_id", u.ID.String()))
				fmt.Fprintf(cmd.OutOrStdout(), "User %q promoted to admin.\n", u.Email)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&who, "email", "e", "", "email, username or id of the user (required)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
