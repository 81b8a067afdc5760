package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "wellness/internal/delivery/context"
	"wellness/internal/domain/entity"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/domain/repository"
	"wellness/internal/domain/service"
	"wellness/internal/infra/metrics"
	"wellness/internal/usecase"
	"wellness/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxShortDescriptionLength = 500

// moodService implements the MoodUsecase interface.
type moodService struct {
	moodRepo repository.MoodRepository
	clock    service.Clock
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// MoodServiceParams holds dependencies for MoodService, injected by Fx.
type MoodServiceParams struct {
	fx.In

	MoodRepo repository.MoodRepository
	Clock    service.Clock
	Metrics  *metrics.Metrics `optional:"true"`
	Logger   *slog.Logger
}

// NewMoodService is the constructor for moodService.
func NewMoodService(params MoodServiceParams) usecase.MoodUsecase {
	return &moodService{
		moodRepo: params.MoodRepo,
		clock:    params.Clock,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *moodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the mood against the canonical table and stores it with the
// current server time as its registration date.
func (srv *moodService) Create(ctx context.Context, userID string, input usecase.CreateMoodInput) (*entity.MoodEntry, error) {
	info, err := resolveMood(&input.MoodType, &input.Level)
	if err != nil {
		return nil, err
	}

	description, err := normalizeDescription(input.ShortDescription)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	entry := &entity.MoodEntry{
		UserID:           userID,
		MoodType:         info.Name,
		Level:            info.Level,
		ShortDescription: description,
		RegistrationDate: now,
		CreatedAt:        now,
	}

	if err := srv.moodRepo.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create mood entry")
	}

	srv.metrics.MoodCreated()
	srv.log(ctx).Debug("Mood entry created", slog.String("user_id", userID), slog.String("entry_id", entry.ID))

	return entry, nil
}

// List filters by date, sorts newest first and only then applies the limit.
func (srv *moodService) List(ctx context.Context, userID string, input usecase.ListMoodInput) ([]*entity.MoodEntry, error) {
	limit := input.Limit
	if limit == 0 {
		limit = usecase.DefaultMoodListLimit
	}
	if limit < 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit deve ser um número positivo"))
	}

	entries, err := srv.entriesInRange(ctx, userID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	sorted := sortNewestFirst(entries)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted, nil
}

// Update applies a partial update to an entry owned by userID.
func (srv *moodService) Update(ctx context.Context, id, userID string, input usecase.UpdateMoodInput) (*entity.MoodEntry, error) {
	entry, err := srv.ownedEntry(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrNoUpdateData)
	}

	if input.MoodType != nil || input.Level != nil {
		info, err := resolveMood(input.MoodType, input.Level)
		if err != nil {
			return nil, err
		}
		entry.MoodType = info.Name
		entry.Level = info.Level
	}

	if input.ShortDescription != nil {
		description, err := normalizeDescription(input.ShortDescription)
		if err != nil {
			return nil, err
		}
		entry.ShortDescription = description
	}

	now := srv.now()
	entry.UpdatedAt = &now

	if err := srv.moodRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrMoodEntryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMoodNotFound, "update mood entry")
		}

		return nil, errors.Wrap(err, "failed to update mood entry")
	}

	srv.log(ctx).Debug("Mood entry updated", slog.String("user_id", userID), slog.String("entry_id", id))

	return entry, nil
}

// Delete removes an entry owned by userID.
func (srv *moodService) Delete(ctx context.Context, id, userID string) error {
	if _, err := srv.ownedEntry(ctx, id, userID); err != nil {
		return err
	}

	if err := srv.moodRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMoodEntryNotFound) {
			return errors.Wrap(domainerrors.ErrMoodNotFound, "delete mood entry")
		}

		return errors.Wrap(err, "failed to delete mood entry")
	}

	srv.log(ctx).Debug("Mood entry deleted", slog.String("user_id", userID), slog.String("entry_id", id))

	return nil
}

// Stats aggregates the user's entries in the optional date range.
func (srv *moodService) Stats(ctx context.Context, userID string, input usecase.StatsInput) (*entity.MoodStats, error) {
	entries, err := srv.entriesInRange(ctx, userID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	return computeMoodStats(entries), nil
}

// MoodTypes returns the canonical mood table.
func (srv *moodService) MoodTypes() []entity.MoodTypeInfo {
	return entity.MoodTypes()
}

func (srv *moodService) ownedEntry(ctx context.Context, id, userID string) (*entity.MoodEntry, error) {
	entry, err := srv.moodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMoodEntryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMoodNotFound, "find mood entry")
		}

		return nil, errors.Wrap(err, "failed to find mood entry")
	}

	if !entry.OwnedBy(userID) {
		srv.log(ctx).Warn("Mood entry access denied", slog.String("user_id", userID), slog.String("entry_id", id))

		return nil, errors.WithStack(domainerrors.ErrAccessDenied)
	}

	return entry, nil
}

// entriesInRange compares bounds against the same-length prefix of each entry's
// ISO registration date, so both bounds are inclusive and a bare date covers its whole day.
func (srv *moodService) entriesInRange(ctx context.Context, userID, startDate, endDate string) ([]*entity.MoodEntry, error) {
	start, err := util.NormalizeDateBound(startDate)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("startDate: " + err.Error()))
	}
	end, err := util.NormalizeDateBound(endDate)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("endDate: " + err.Error()))
	}

	entries, err := srv.moodRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mood entries")
	}

	if start == "" && end == "" {
		return entries, nil
	}

	filtered := make([]*entity.MoodEntry, 0, len(entries))
	for _, entry := range entries {
		key := util.FormatTimestamp(entry.RegistrationDate)
		if start != "" && util.PrefixCompare(key, start) < 0 {
			continue
		}
		if end != "" && util.PrefixCompare(key, end) > 0 {
			continue
		}
		filtered = append(filtered, entry)
	}

	return filtered, nil
}

func (srv *moodService) now() time.Time {
	return srv.clock.Now().UTC().Truncate(time.Millisecond)
}

// resolveMood validates a mood type and level pair. When only one of them is
// given, the other follows from the canonical table.
func resolveMood(moodType *string, level *int) (entity.MoodTypeInfo, error) {
	if moodType == nil {
		if level == nil {
			return entity.MoodTypeInfo{}, errors.WithStack(domainerrors.ErrNoUpdateData)
		}

		info, ok := entity.LookupMoodLevel(*level)
		if !ok {
			return entity.MoodTypeInfo{}, errors.WithStack(domainerrors.ErrInvalidMoodLevel)
		}

		return info, nil
	}

	info, ok := entity.LookupMoodType(*moodType)
	if !ok {
		return entity.MoodTypeInfo{}, errors.WithStack(domainerrors.ErrInvalidMoodType)
	}

	if level == nil {
		return info, nil
	}

	if _, ok := entity.LookupMoodLevel(*level); !ok {
		return entity.MoodTypeInfo{}, errors.WithStack(domainerrors.ErrInvalidMoodLevel)
	}

	if *level != info.Level {
		return entity.MoodTypeInfo{}, errors.WithStack(domainerrors.ErrInvalidMoodLevel.WithDetails(
			fmt.Sprintf("Nível %d não corresponde ao humor %s (nível %d)", *level, info.Name, info.Level),
		))
	}

	return info, nil
}

func normalizeDescription(description *string) (string, error) {
	if description == nil {
		return "", nil
	}

	trimmed := strings.TrimSpace(*description)
	if utf8.RuneCountInString(trimmed) > maxShortDescriptionLength {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("Descrição deve ter no máximo %d caracteres", maxShortDescriptionLength),
		))
	}

	return trimmed, nil
}
