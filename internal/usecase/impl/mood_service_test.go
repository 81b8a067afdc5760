package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"wellness/internal/domain/entity"
	"wellness/internal/domain/repository"
	"wellness/internal/infra/metrics"
	mockRepo "wellness/internal/mocks/repository"
	"wellness/internal/usecase"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodService_Create_CanonicalPairs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, info := range entity.MoodTypes() {
		t.Run(string(info.Name), func(t *testing.T) {
			entry, err := f.moods.Create(ctx, "u1", usecase.CreateMoodInput{
				MoodType:         string(info.Name),
				Level:            info.Level,
				ShortDescription: ptr("  dia comum  "),
			})

			require.NoError(t, err)
			assert.NotEmpty(t, entry.ID)
			assert.Equal(t, "u1", entry.UserID)
			assert.Equal(t, info.Name, entry.MoodType)
			assert.Equal(t, info.Level, entry.Level)
			assert.Equal(t, "dia comum", entry.ShortDescription)
			assert.Equal(t, f.clock.Now(), entry.RegistrationDate)
			assert.Nil(t, entry.UpdatedAt)
		})
	}
}

func TestMoodService_Create_RejectsWithoutWriting(t *testing.T) {
	tests := []struct {
		name     string
		input    usecase.CreateMoodInput
		wantCode string
	}{
		{name: "level zero", input: usecase.CreateMoodInput{MoodType: "Triste", Level: 0}, wantCode: "INVALID_MOOD_LEVEL"},
		{name: "level six", input: usecase.CreateMoodInput{MoodType: "Motivado", Level: 6}, wantCode: "INVALID_MOOD_LEVEL"},
		{name: "unknown mood type", input: usecase.CreateMoodInput{MoodType: "Bravo", Level: 3}, wantCode: "INVALID_MOOD_TYPE"},
		{name: "lowercase mood type", input: usecase.CreateMoodInput{MoodType: "feliz", Level: 4}, wantCode: "INVALID_MOOD_TYPE"},
		{name: "level does not match type", input: usecase.CreateMoodInput{MoodType: "Feliz", Level: 1}, wantCode: "INVALID_MOOD_LEVEL"},
		{
			name:     "description too long",
			input:    usecase.CreateMoodInput{MoodType: "Neutro", Level: 3, ShortDescription: ptr(strings.Repeat("a", 501))},
			wantCode: "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockMoodRepository(t)
			srv := NewMoodService(MoodServiceParams{
				MoodRepo: repo,
				Clock:    newStepClock(time.Now()),
				Logger:   newDiscardLogger(),
			})

			_, err := srv.Create(context.Background(), "u1", tt.input)

			requireAppError(t, err, tt.wantCode)
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestMoodService_Create_CountsMetric(t *testing.T) {
	repo := mockRepo.NewMockMoodRepository(t)
	m := metrics.New(prometheus.NewRegistry())
	srv := NewMoodService(MoodServiceParams{
		MoodRepo: repo,
		Clock:    newStepClock(time.Date(2025, 1, 1, 0, 0, 0, 123456789, time.UTC)),
		Metrics:  m,
		Logger:   newDiscardLogger(),
	})
	ctx := context.Background()

	repo.EXPECT().Create(ctx, &entity.MoodEntry{
		UserID:           "u1",
		MoodType:         entity.MoodHappy,
		Level:            4,
		RegistrationDate: time.Date(2025, 1, 1, 0, 0, 0, 123000000, time.UTC),
		CreatedAt:        time.Date(2025, 1, 1, 0, 0, 0, 123000000, time.UTC),
	}).Return(nil)

	_, err := srv.Create(ctx, "u1", usecase.CreateMoodInput{MoodType: "Feliz", Level: 4})

	require.NoError(t, err)
	assert.InDelta(t, 1, testutil.ToFloat64(m.MoodEntriesCreated), 0)
}

func TestMoodService_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.moods.Create(ctx, "u1", usecase.CreateMoodInput{MoodType: "Feliz", Level: 4})
	require.NoError(t, err)

	list, err := f.moods.List(ctx, "u1", usecase.ListMoodInput{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	require.NoError(t, f.moods.Delete(ctx, created.ID, "u1"))

	list, err = f.moods.List(ctx, "u1", usecase.ListMoodInput{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMoodService_Ownership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	entry, err := f.moods.Create(ctx, "owner", usecase.CreateMoodInput{MoodType: "Triste", Level: 1, ShortDescription: ptr("privado")})
	require.NoError(t, err)

	updated, err := f.moods.Update(ctx, entry.ID, "intruder", usecase.UpdateMoodInput{Level: ptr(5)})
	requireAppError(t, err, "ACCESS_DENIED")
	assert.Nil(t, updated)
	assert.NotContains(t, err.Error(), "privado")

	err = f.moods.Delete(ctx, entry.ID, "intruder")
	requireAppError(t, err, "ACCESS_DENIED")

	list, err := f.moods.List(ctx, "owner", usecase.ListMoodInput{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Level)
}

func TestMoodService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	entry, err := f.moods.Create(ctx, "u1", usecase.CreateMoodInput{MoodType: "Neutro", Level: 3})
	require.NoError(t, err)

	_, err = f.moods.Update(ctx, "missing", "u1", usecase.UpdateMoodInput{Level: ptr(2)})
	requireAppError(t, err, "MOOD_NOT_FOUND")

	_, err = f.moods.Update(ctx, entry.ID, "u1", usecase.UpdateMoodInput{})
	requireAppError(t, err, "NO_UPDATE_DATA")

	f.clock.Advance(time.Hour)
	byLevel, err := f.moods.Update(ctx, entry.ID, "u1", usecase.UpdateMoodInput{Level: ptr(5)})
	require.NoError(t, err)
	assert.Equal(t, entity.MoodMotivated, byLevel.MoodType)
	assert.Equal(t, 5, byLevel.Level)
	require.NotNil(t, byLevel.UpdatedAt)
	assert.Equal(t, f.clock.Now(), *byLevel.UpdatedAt)
	assert.Equal(t, entry.RegistrationDate, byLevel.RegistrationDate)

	byType, err := f.moods.Update(ctx, entry.ID, "u1", usecase.UpdateMoodInput{MoodType: ptr("Ansioso")})
	require.NoError(t, err)
	assert.Equal(t, 2, byType.Level)

	described, err := f.moods.Update(ctx, entry.ID, "u1", usecase.UpdateMoodInput{ShortDescription: ptr("melhorou")})
	require.NoError(t, err)
	assert.Equal(t, entity.MoodAnxious, described.MoodType)
	assert.Equal(t, "melhorou", described.ShortDescription)

	_, err = f.moods.Update(ctx, entry.ID, "u1", usecase.UpdateMoodInput{MoodType: ptr("Feliz"), Level: ptr(2)})
	requireAppError(t, err, "INVALID_MOOD_LEVEL")

	_, err = f.moods.Update(ctx, entry.ID, "u1", usecase.UpdateMoodInput{Level: ptr(9)})
	requireAppError(t, err, "INVALID_MOOD_LEVEL")
}

func TestMoodService_Delete_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.moods.Delete(context.Background(), "missing", "u1")

	requireAppError(t, err, "MOOD_NOT_FOUND")
}

func TestMoodService_List_FilterSortLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.clock.Set(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	var ids []string
	for day := range 5 {
		entry, err := f.moods.Create(ctx, "u1", usecase.CreateMoodInput{MoodType: "Neutro", Level: 3})
		require.NoError(t, err)
		ids = append(ids, entry.ID)
		if day < 4 {
			f.clock.Advance(24 * time.Hour)
		}
	}
	// Entries fall on 2025-03-10 .. 2025-03-14 at 08:00.

	all, err := f.moods.List(ctx, "u1", usecase.ListMoodInput{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, ids[4], all[0].ID)
	assert.Equal(t, ids[0], all[4].ID)

	limited, err := f.moods.List(ctx, "u1", usecase.ListMoodInput{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, ids[4], limited[0].ID)
	assert.Equal(t, ids[3], limited[1].ID)

	window, err := f.moods.List(ctx, "u1", usecase.ListMoodInput{StartDate: "2025-03-11", EndDate: "2025-03-13"})
	require.NoError(t, err)
	require.Len(t, window, 3)
	assert.Equal(t, ids[3], window[0].ID)
	assert.Equal(t, ids[1], window[2].ID)

	precise, err := f.moods.List(ctx, "u1", usecase.ListMoodInput{StartDate: "2025-03-12T08:00:00.001Z"})
	require.NoError(t, err)
	assert.Len(t, precise, 2)

	other, err := f.moods.List(ctx, "u2", usecase.ListMoodInput{})
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = f.moods.List(ctx, "u1", usecase.ListMoodInput{Limit: -1})
	requireAppError(t, err, "VALIDATION_FAILED")

	_, err = f.moods.List(ctx, "u1", usecase.ListMoodInput{StartDate: "10/03/2025"})
	requireAppError(t, err, "VALIDATION_FAILED")
}

func TestMoodService_List_StorageError(t *testing.T) {
	repo := mockRepo.NewMockMoodRepository(t)
	srv := NewMoodService(MoodServiceParams{MoodRepo: repo, Clock: newStepClock(time.Now()), Logger: newDiscardLogger()})
	ctx := context.Background()

	repo.EXPECT().ListByUser(ctx, "u1").Return(nil, errors.New("unavailable"))

	_, err := srv.List(ctx, "u1", usecase.ListMoodInput{})
	assert.ErrorContains(t, err, "failed to list mood entries")
	assert.NotErrorIs(t, err, repository.ErrMoodEntryNotFound)
}

func TestMoodService_MoodTypes(t *testing.T) {
	f := newFixture(t)

	types := f.moods.MoodTypes()

	require.Len(t, types, 5)
	assert.Equal(t, entity.MoodTypeInfo{Level: 1, Name: entity.MoodSad, Icon: "emoticon-sad-outline", Color: "#E74C3C"}, types[0])
	assert.Equal(t, entity.MoodMotivated, types[4].Name)
}
