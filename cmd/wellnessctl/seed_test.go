package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"wellness/internal/domain/entity"
	"wellness/internal/infra/auth"
	"wellness/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newSeedDeps() (seedDeps, *memory.Store) {
	store := memory.NewStore()

	return seedDeps{
		Users:  memory.NewUserRepository(store),
		Moods:  memory.NewMoodRepository(store),
		Hasher: auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Clock:  fixedClock{now: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)},
	}, store
}

func TestSeed_CreatesUserAndBackdatedEntries(t *testing.T) {
	deps, _ := newSeedDeps()
	ctx := context.Background()
	var out bytes.Buffer

	err := seed(ctx, &out, deps, seedOptions{name: "Sample User", email: "Sample@Test.com", password: "password123"})
	require.NoError(t, err)

	user, err := deps.Users.FindByEmail(ctx, "sample@test.com")
	require.NoError(t, err)
	assert.Equal(t, "Sample User", user.Name)
	assert.True(t, deps.Hasher.Check("password123", user.PasswordHash))

	entries, err := deps.Moods.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, len(sampleMoods))

	byDay := map[string]*entity.MoodEntry{}
	for _, e := range entries {
		byDay[e.RegistrationDate.Format("2006-01-02")] = e
		info, ok := entity.LookupMoodType(string(e.MoodType))
		require.True(t, ok)
		assert.Equal(t, info.Level, e.Level)
	}
	assert.Equal(t, entity.MoodHappy, byDay["2025-06-09"].MoodType)
	assert.Equal(t, entity.MoodMotivated, byDay["2025-06-08"].MoodType)
	assert.Equal(t, entity.MoodAnxious, byDay["2025-06-06"].MoodType)
	assert.Contains(t, out.String(), "user created")
}

func TestSeed_RefusesExistingEmail(t *testing.T) {
	deps, _ := newSeedDeps()
	ctx := context.Background()
	opts := seedOptions{name: "Sample User", email: "sample@test.com", password: "password123"}

	require.NoError(t, seed(ctx, &bytes.Buffer{}, deps, opts))
	err := seed(ctx, &bytes.Buffer{}, deps, opts)

	assert.ErrorContains(t, err, "already exists")
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"seed", "cleanup-tokens", "migrate", "reset"}, names)

	seedCmd, _, err := root.Find([]string{"seed"})
	require.NoError(t, err)
	assert.Equal(t, "sample@test.com", seedCmd.Flags().Lookup("email").DefValue)
}
