package main

import (
	"context"
	"fmt"
	"io"

	"wellness/internal/domain/repository"
	"wellness/internal/errors"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type resetOptions struct {
	confirmed bool
	skipSeed  bool
	seed      seedOptions
}

type resetDeps struct {
	fx.In

	Seed      seedDeps
	Blacklist repository.TokenBlacklistRepository
}

func newResetCmd() *cobra.Command {
	opts := resetOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all users, mood entries and blacklisted tokens, then seed again",
		Long: `reset wipes every collection of the configured storage driver and re-creates the
sample user unless --no-seed is given. It refuses to run without --yes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.confirmed {
				return errors.New("reset deletes all data; pass --yes to confirm")
			}

			var deps resetDeps

			return runApp(cmd.Context(), func(ctx context.Context) error {
				return reset(ctx, cmd.OutOrStdout(), deps, opts)
			}, storageModule(), fx.Populate(&deps))
		},
	}

	cmd.Flags().BoolVar(&opts.confirmed, "yes", false, "Confirm that all data may be deleted")
	cmd.Flags().BoolVar(&opts.skipSeed, "no-seed", false, "Leave the storage empty after the wipe")
	cmd.Flags().StringVar(&opts.seed.name, "name", "Sample User", "Name of the sample user")
	cmd.Flags().StringVar(&opts.seed.email, "email", "sample@test.com", "Email of the sample user")
	cmd.Flags().StringVar(&opts.seed.password, "password", "password123", "Password of the sample user")

	return cmd
}

// reset clears mood entries before users so no entry outlives its owner.
func reset(ctx context.Context, out io.Writer, deps resetDeps, opts resetOptions) error {
	steps := []struct {
		name  string
		clear func(context.Context) (int, error)
	}{
		{name: "blacklisted tokens", clear: deps.Blacklist.DeleteAll},
		{name: "mood entries", clear: deps.Seed.Moods.DeleteAll},
		{name: "users", clear: deps.Seed.Users.DeleteAll},
	}

	for _, step := range steps {
		deleted, err := step.clear(ctx)
		if err != nil {
			return errors.Wrapf(err, "delete %s", step.name)
		}
		fmt.Fprintf(out, "deleted %d %s\n", deleted, step.name)
	}

	if opts.skipSeed {
		return nil
	}

	return seed(ctx, out, deps.Seed, opts.seed)
}
