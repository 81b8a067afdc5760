package firestore

import (
	"context"

	"wellness/internal/domain/entity"
	"wellness/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

type moodRepository struct {
	client *firestore.Client
}

// NewMoodRepository returns a repository.MoodRepository backed by the mood_entries collection.
func NewMoodRepository(client *firestore.Client) repository.MoodRepository {
	return &moodRepository{client: client}
}

func (repo *moodRepository) Create(ctx context.Context, entry *entity.MoodEntry) error {
	ref := repo.client.Collection(moodEntriesCollection).NewDoc()
	if _, err := ref.Create(ctx, fromMoodEntry(entry)); err != nil {
		return storageError(err, "failed to create mood entry")
	}

	entry.ID = ref.ID

	return nil
}

func (repo *moodRepository) FindByID(ctx context.Context, id string) (*entity.MoodEntry, error) {
	if id == "" {
		return nil, repository.ErrMoodEntryNotFound
	}

	snap, err := repo.client.Collection(moodEntriesCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMoodEntryNotFound
		}

		return nil, storageError(err, "failed to find mood entry")
	}

	return decodeMoodEntry(snap)
}

// ListByUser only filters on userId so no composite index is required.
func (repo *moodRepository) ListByUser(ctx context.Context, userID string) ([]*entity.MoodEntry, error) {
	snaps, err := repo.client.Collection(moodEntriesCollection).
		Where("userId", "==", userID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, storageError(err, "failed to list mood entries")
	}

	entries := make([]*entity.MoodEntry, 0, len(snaps))
	for _, snap := range snaps {
		entry, err := decodeMoodEntry(snap)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (repo *moodRepository) Update(ctx context.Context, entry *entity.MoodEntry) error {
	doc := fromMoodEntry(entry)

	_, err := repo.client.Collection(moodEntriesCollection).Doc(entry.ID).Update(ctx, []firestore.Update{
		{Path: "moodType", Value: doc.MoodType},
		{Path: "level", Value: doc.Level},
		{Path: "shortDescription", Value: doc.ShortDescription},
		{Path: "updatedAt", Value: doc.UpdatedAt},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrMoodEntryNotFound
		}

		return storageError(err, "failed to update mood entry")
	}

	return nil
}

func (repo *moodRepository) Delete(ctx context.Context, id string) error {
	_, err := repo.client.Collection(moodEntriesCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return repository.ErrMoodEntryNotFound
		}

		return storageError(err, "failed to delete mood entry")
	}

	return nil
}

func (repo *moodRepository) DeleteAll(ctx context.Context) (int, error) {
	deleted, err := deleteCollection(ctx, repo.client, moodEntriesCollection)
	if err != nil {
		return deleted, storageError(err, "failed to delete mood entries")
	}

	return deleted, nil
}

func decodeMoodEntry(snap *firestore.DocumentSnapshot) (*entity.MoodEntry, error) {
	var doc moodDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, storageError(err, "failed to decode mood entry document")
	}

	return doc.toEntity(snap.Ref.ID), nil
}
