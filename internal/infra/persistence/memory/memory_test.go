package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wellness/internal/domain/entity"
	"wellness/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	user := &entity.User{Name: "Ana", Email: "Ana@Example.com", LoginProvider: entity.LoginProviderPassword, PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	byEmail, err := repo.FindByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "ana@example.com", byEmail.Email)

	byEmail.Name = "mutated"
	again, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", again.Name)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ConcurrentDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	var created atomic.Int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Create(ctx, &entity.User{Name: "X", Email: "dup@x.com"}); err == nil {
				created.Add(1)
			} else {
				assert.ErrorIs(t, err, repository.ErrEmailTaken)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	err := repo.Update(ctx, &entity.User{ID: "missing"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	user := &entity.User{Name: "Ana", Email: "ana@x.com", LoginProvider: entity.LoginProviderPassword, PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, user))

	user.LinkFederated("google-sub", time.Now())
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LoginProviderFederated, got.LoginProvider)
	assert.Equal(t, "google-sub", got.FederatedID)
	assert.Empty(t, got.PasswordHash)
	assert.NotNil(t, got.UpdatedAt)
}

func TestMoodRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMoodRepository(NewStore())

	mine := &entity.MoodEntry{UserID: "u1", MoodType: entity.MoodHappy, Level: 4}
	other := &entity.MoodEntry{UserID: "u2", MoodType: entity.MoodSad, Level: 1}
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	mine.MoodType = entity.MoodMotivated
	mine.Level = 5
	require.NoError(t, repo.Update(ctx, mine))

	got, err := repo.FindByID(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Level)

	require.NoError(t, repo.Delete(ctx, mine.ID))
	assert.ErrorIs(t, repo.Delete(ctx, mine.ID), repository.ErrMoodEntryNotFound)
	_, err = repo.FindByID(ctx, mine.ID)
	assert.ErrorIs(t, err, repository.ErrMoodEntryNotFound)
}

func TestTokenBlacklistRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenBlacklistRepository(NewStore())
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Add(ctx, &entity.BlacklistedToken{Token: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.Add(ctx, &entity.BlacklistedToken{Token: "edge", ExpiresAt: now}))
	require.NoError(t, repo.Add(ctx, &entity.BlacklistedToken{Token: "live", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repo.Add(ctx, &entity.BlacklistedToken{Token: "live", ExpiresAt: now.Add(time.Hour)}))

	ok, err := repo.Exists(ctx, "live")
	require.NoError(t, err)
	assert.True(t, ok)

	deleted, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	ok, err = repo.Exists(ctx, "old")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Find(ctx, "edge")
	assert.ErrorIs(t, err, repository.ErrBlacklistEntryNotFound)
}
