package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"wellness/internal/domain/entity"
	"wellness/internal/domain/repository"
	"wellness/internal/domain/service"
	"wellness/internal/errors"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type seedOptions struct {
	name     string
	email    string
	password string
}

// sampleMood is an entry registered daysAgo days before the seed runs.
type sampleMood struct {
	daysAgo     int
	moodType    entity.MoodType
	description string
}

var sampleMoods = []sampleMood{
	{daysAgo: 1, moodType: entity.MoodHappy, description: "Great day at work!"},
	{daysAgo: 2, moodType: entity.MoodMotivated, description: "Feeling very productive"},
	{daysAgo: 3, moodType: entity.MoodNeutral, description: "Normal day"},
	{daysAgo: 4, moodType: entity.MoodAnxious, description: "Worried about project deadline"},
	{daysAgo: 5, moodType: entity.MoodHappy, description: "Weekend with family"},
}

type seedDeps struct {
	fx.In

	Users  repository.UserRepository
	Moods  repository.MoodRepository
	Hasher service.PasswordHasher
	Clock  service.Clock
}

func newSeedCmd() *cobra.Command {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a sample user with a few days of mood entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var deps seedDeps

			return runApp(cmd.Context(), func(ctx context.Context) error {
				return seed(ctx, cmd.OutOrStdout(), deps, opts)
			}, storageModule(), fx.Populate(&deps))
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "Sample User", "Name of the sample user")
	cmd.Flags().StringVar(&opts.email, "email", "sample@test.com", "Email of the sample user")
	cmd.Flags().StringVar(&opts.password, "password", "password123", "Password of the sample user")

	return cmd
}

func seed(ctx context.Context, out io.Writer, deps seedDeps, opts seedOptions) error {
	hash, err := deps.Hasher.Hash(opts.password)
	if err != nil {
		return errors.Wrap(err, "hash sample password")
	}

	now := deps.Clock.Now()
	user := &entity.User{
		Name:             opts.name,
		Email:            entity.NormalizeEmail(opts.email),
		PasswordHash:     hash,
		LoginProvider:    entity.LoginProviderPassword,
		RegistrationDate: now,
	}
	if err := deps.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return errors.Errorf("user %s already exists, choose another --email", user.Email)
		}

		return errors.Wrap(err, "create sample user")
	}
	fmt.Fprintf(out, "user created: %s (%s)\n", user.ID, user.Email)

	for _, sample := range sampleMoods {
		info, _ := entity.LookupMoodType(string(sample.moodType))
		entry := &entity.MoodEntry{
			UserID:           user.ID,
			MoodType:         info.Name,
			Level:            info.Level,
			ShortDescription: sample.description,
			RegistrationDate: now.Add(-time.Duration(sample.daysAgo) * 24 * time.Hour).Truncate(time.Millisecond),
			CreatedAt:        now,
		}
		if err := deps.Moods.Create(ctx, entry); err != nil {
			return errors.Wrapf(err, "create mood entry %s", sample.moodType)
		}
		fmt.Fprintf(out, "mood entry created: %s (%s)\n", entry.ID, entry.MoodType)
	}

	return nil
}
