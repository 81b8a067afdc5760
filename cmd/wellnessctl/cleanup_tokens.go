package main

import (
	"context"
	"fmt"

	"wellness/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newCleanupTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Delete blacklisted tokens that are past their expiry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sessions usecase.SessionUsecase

			return runApp(cmd.Context(), func(ctx context.Context) error {
				deleted, err := sessions.CleanupExpired(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d expired blacklist entries\n", deleted)

				return nil
			}, storageModule(), fx.Populate(&sessions))
		},
	}
}
