package postgres

import (
	"context"

	"wellness/internal/domain/entity"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/domain/repository"
	"wellness/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// moodRepository implements repository.MoodRepository using GORM.
type moodRepository struct {
	db *gorm.DB
}

// NewMoodRepository is the constructor for moodRepository.
func NewMoodRepository(db *gorm.DB) repository.MoodRepository {
	return &moodRepository{db: db}
}

// Create inserts a new mood entry and assigns its ID.
func (repo *moodRepository) Create(ctx context.Context, entry *entity.MoodEntry) error {
	entryM := fromMoodDomain(entry)
	entryM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrInvalidMoodLevel, "level out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create mood entry")
	}

	entry.ID = entryM.ID

	return nil
}

// FindByID retrieves a mood entry regardless of owner.
func (repo *moodRepository) FindByID(ctx context.Context, id string) (*entity.MoodEntry, error) {
	if uuid.Validate(id) != nil {
		return nil, repository.ErrMoodEntryNotFound
	}

	var entryM model.MoodEntryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMoodEntryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find mood entry")
	}

	return toMoodDomain(&entryM), nil
}

// ListByUser returns every entry of the user.
func (repo *moodRepository) ListByUser(ctx context.Context, userID string) ([]*entity.MoodEntry, error) {
	if uuid.Validate(userID) != nil {
		return []*entity.MoodEntry{}, nil
	}

	var entryMs []model.MoodEntryModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Find(&entryMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list mood entries")
	}

	entries := make([]*entity.MoodEntry, 0, len(entryMs))
	for i := range entryMs {
		entries = append(entries, toMoodDomain(&entryMs[i]))
	}

	return entries, nil
}

// Update overwrites the mutable fields of an entry.
func (repo *moodRepository) Update(ctx context.Context, entry *entity.MoodEntry) error {
	entryM := fromMoodDomain(entry)

	result := repo.db.WithContext(ctx).
		Model(&model.MoodEntryModel{}).
		Where("id = ?", entry.ID).
		Select("mood_type", "level", "short_description", "updated_at").
		Updates(entryM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update mood entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMoodEntryNotFound
	}

	return nil
}

// Delete removes an entry by ID.
func (repo *moodRepository) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return repository.ErrMoodEntryNotFound
	}

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MoodEntryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete mood entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMoodEntryNotFound
	}

	return nil
}

// DeleteAll empties the mood entry table.
func (repo *moodRepository) DeleteAll(ctx context.Context) (int, error) {
	return deleteAll(ctx, repo.db, &model.MoodEntryModel{}, "failed to delete mood entries")
}

func toMoodDomain(data *model.MoodEntryModel) *entity.MoodEntry {
	entry := &entity.MoodEntry{
		ID:               data.ID,
		UserID:           data.UserID,
		MoodType:         entity.MoodType(data.MoodType),
		Level:            data.Level,
		RegistrationDate: data.RegistrationDate,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.ShortDescription != nil {
		entry.ShortDescription = *data.ShortDescription
	}

	return entry
}

func fromMoodDomain(data *entity.MoodEntry) *model.MoodEntryModel {
	return &model.MoodEntryModel{
		ID:               data.ID,
		UserID:           data.UserID,
		MoodType:         string(data.MoodType),
		Level:            data.Level,
		ShortDescription: nullableString(data.ShortDescription),
		RegistrationDate: data.RegistrationDate,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
