package main

import (
	"context"
	"fmt"

	"wellness/config"
	"wellness/internal/errors"
	logs "wellness/internal/infra/log"
	"wellness/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the PostgreSQL tables",
		Long:  `Runs the schema migration for the postgres storage driver. Firestore and memory need none.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if cfg.Storage.Driver != config.DriverPostgres {
				return errors.Errorf("migrate requires storage.driver %q, got %q", config.DriverPostgres, cfg.Storage.Driver)
			}

			var db *gorm.DB

			return runApp(cmd.Context(), func(ctx context.Context) error {
				if err := postgres.Migrate(ctx, db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migration complete")

				return nil
			},
				fx.Supply(cfg),
				fx.Provide(logs.New, postgres.New),
				fx.Populate(&db),
			)
		},
	}
}
