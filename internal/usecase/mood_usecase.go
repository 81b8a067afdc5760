package usecase

import (
	"context"

	"wellness/internal/domain/entity"
)

// DefaultMoodListLimit applies when a list request carries no limit.
const DefaultMoodListLimit = 30

// CreateMoodInput defines a new mood registration.
type CreateMoodInput struct {
	MoodType         string
	Level            int
	ShortDescription *string
}

// ListMoodInput filters and bounds a mood listing. Dates are YYYY-MM-DD or RFC 3339.
type ListMoodInput struct {
	StartDate string
	EndDate   string
	Limit     int
}

// UpdateMoodInput holds a partial update. Nil fields are left untouched.
type UpdateMoodInput struct {
	MoodType         *string
	Level            *int
	ShortDescription *string
}

// IsEmpty reports whether no field was supplied.
func (in UpdateMoodInput) IsEmpty() bool {
	return in.MoodType == nil && in.Level == nil && in.ShortDescription == nil
}

// StatsInput restricts statistics to a date range.
type StatsInput struct {
	StartDate string
	EndDate   string
}

// MoodUsecase defines the mood log operations, always scoped to the calling user.
type MoodUsecase interface {
	Create(ctx context.Context, userID string, input CreateMoodInput) (*entity.MoodEntry, error)
	List(ctx context.Context, userID string, input ListMoodInput) ([]*entity.MoodEntry, error)
	Update(ctx context.Context, id, userID string, input UpdateMoodInput) (*entity.MoodEntry, error)
	Delete(ctx context.Context, id, userID string) error
	Stats(ctx context.Context, userID string, input StatsInput) (*entity.MoodStats, error)
	MoodTypes() []entity.MoodTypeInfo
}
