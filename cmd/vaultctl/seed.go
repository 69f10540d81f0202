package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vault-backend/internal/app"
	"github.com/heartmarshall/vault-backend/internal/service/prompt"
	"github.com/heartmarshall/vault-backend/internal/service/spark"
)

func newSeedCmd() *cobra.Command {
	seedCmd := &cobra.Command{Use: "seed", Short: "Load the starter catalogs"}

	var clearPrompts bool
	var start string
	promptsCmd := &cobra.Command{
		Use:   "prompts",
		Short: "Schedule the starter prompts one per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := seedInput(start, clearPrompts)
			if err != nil {
				return err
			}

			return withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				svc := app.NewServices(e.logger, e.pool, e.cfg, nil)
				res, err := svc.Prompt.SeedPrompts(ctx, input)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "prompts: %d removed, %d scheduled\n", res.Deleted, res.Created)
				return nil
			})
		},
	}
	promptsCmd.Flags().BoolVar(&clearPrompts, "clear", false, "remove prompts nobody has answered first")
	promptsCmd.Flags().StringVar(&start, "start", "", "first date to schedule, YYYY-MM-DD (default today UTC)")

	var clearSparks bool
	sparksCmd := &cobra.Command{
		Use:   "sparks",
		Short: "Insert the spark decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				svc := app.NewServices(e.logger, e.pool, e.cfg, nil)
				res, err := svc.Spark.SeedSparks(ctx, clearSparks)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "sparks: %d removed, %d inserted\n", res.Deleted, res.Created)
				return nil
			})
		},
	}
	sparksCmd.Flags().BoolVar(&clearSparks, "clear", false, "delete every spark first")

	var clearAll bool
	var allStart string
	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Load prompts and sparks in one transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := seedInput(allStart, clearAll)
			if err != nil {
				return err
			}

			return withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				svc := app.NewServices(e.logger, e.pool, e.cfg, nil)

				var prompts prompt.SeedResult
				var sparks spark.SeedResult
				err := svc.Tx.RunInTx(ctx, func(ctx context.Context) error {
					var err error
					if prompts, err = svc.Prompt.SeedPrompts(ctx, input); err != nil {
						return err
					}
					sparks, err = svc.Spark.SeedSparks(ctx, clearAll)
					return err
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "prompts: %d removed, %d scheduled\n", prompts.Deleted, prompts.Created)
				fmt.Fprintf(cmd.OutOrStdout(), "sparks: %d removed, %d inserted\n", sparks.Deleted, sparks.Created)
				return nil
			})
		},
	}
	allCmd.Flags().BoolVar(&clearAll, "clear", false, "remove unanswered prompts and every spark first")
	allCmd.Flags().StringVar(&allStart, "start", "", "first prompt date, YYYY-MM-DD (default today UTC)")

	seedCmd.AddCommand(promptsCmd, sparksCmd, allCmd)
	return seedCmd
}

func seedInput(start string, clear bool) (prompt.SeedInput, error) {
	input := prompt.SeedInput{Clear: clear}
	if start == "" {
		return input, nil
	}
	d, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return input, fmt.Errorf("--start must be YYYY-MM-DD: %w", err)
	}
	input.Start = d
	return input, nil
}
