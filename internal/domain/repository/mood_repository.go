package repository

import (
	"context"

	"wellness/internal/domain/entity"
	"wellness/internal/errors"
)

// ErrMoodEntryNotFound is returned when no mood entry has the requested ID.
var ErrMoodEntryNotFound = errors.New("mood entry not found")

// MoodRepository persists mood entries. Filtering, ordering and limits are
// applied by the mood use case, so ListByUser returns every entry of the user.
type MoodRepository interface {
	// Create persists a new entry and assigns its ID.
	Create(ctx context.Context, entry *entity.MoodEntry) error

	// FindByID retrieves an entry regardless of owner.
	FindByID(ctx context.Context, id string) (*entity.MoodEntry, error)

	// ListByUser returns all entries owned by userID in no particular order.
	ListByUser(ctx context.Context, userID string) ([]*entity.MoodEntry, error)

	// Update overwrites MoodType, Level, ShortDescription and UpdatedAt.
	Update(ctx context.Context, entry *entity.MoodEntry) error

	// Delete removes an entry by ID.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every entry of every user and returns how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}
