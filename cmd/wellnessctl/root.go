package main

import (
	"context"
	"log/slog"

	"wellness/config"
	"wellness/internal/domain/lifecycle"
	"wellness/internal/domain/service"
	"wellness/internal/errors"
	"wellness/internal/infra/auth"
	logs "wellness/internal/infra/log"
	"wellness/internal/infra/persistence"
	"wellness/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wellnessctl",
		Short: "Operator tasks for the wellness backend",
		Long: `wellnessctl reads the same config/config.yaml and environment as the API server
and runs maintenance tasks against the configured storage driver.`,
		SilenceUsage: true,
	}

	root.AddCommand(newSeedCmd())
	root.AddCommand(newCleanupTokensCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newResetCmd())

	return root
}

// storageModule provides the config, logger, repositories and the session use case.
func storageModule() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			persistence.New,
			service.NewSystemClock,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewSessionService,
		),
	)
}

// runApp builds an fx app from opts, runs its start hooks, calls fn and stops the app.
// Dependencies are handed to fn through fx.Populate targets captured by the caller.
func runApp(ctx context.Context, fn func(ctx context.Context) error, opts ...fx.Option) error {
	app := fx.New(append([]fx.Option{fx.NopLogger}, opts...)...)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}

	runErr := fn(ctx)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("Failed to stop application", slog.Any("error", err))
	}

	return runErr
}
