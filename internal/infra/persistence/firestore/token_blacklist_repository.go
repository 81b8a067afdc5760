package firestore

import (
	"context"
	"time"

	"wellness/internal/domain/entity"
	"wellness/internal/domain/repository"
	"wellness/internal/util"

	"cloud.google.com/go/firestore"
)

type tokenBlacklistRepository struct {
	client *firestore.Client
}

// NewTokenBlacklistRepository returns a repository.TokenBlacklistRepository backed by the
// blacklisted_tokens collection. Documents are keyed by the token hash.
func NewTokenBlacklistRepository(client *firestore.Client) repository.TokenBlacklistRepository {
	return &tokenBlacklistRepository{client: client}
}

func (repo *tokenBlacklistRepository) doc(token string) *firestore.DocumentRef {
	return repo.client.Collection(blacklistCollection).Doc(util.HashKey(token))
}

// Add overwrites any existing row for the same key.
func (repo *tokenBlacklistRepository) Add(ctx context.Context, token *entity.BlacklistedToken) error {
	if _, err := repo.doc(token.Token).Set(ctx, fromBlacklistedToken(token)); err != nil {
		return storageError(err, "failed to blacklist token")
	}

	return nil
}

func (repo *tokenBlacklistRepository) Exists(ctx context.Context, token string) (bool, error) {
	_, err := repo.doc(token).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, storageError(err, "failed to check token blacklist")
	}

	return true, nil
}

func (repo *tokenBlacklistRepository) Find(ctx context.Context, token string) (*entity.BlacklistedToken, error) {
	snap, err := repo.doc(token).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrBlacklistEntryNotFound
		}

		return nil, storageError(err, "failed to find blacklisted token")
	}

	var doc blacklistDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, storageError(err, "failed to decode blacklisted token")
	}

	return doc.toEntity(), nil
}

// DeleteExpired removes expired rows through a BulkWriter and counts the deletes that succeeded.
func (repo *tokenBlacklistRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	snaps, err := repo.client.Collection(blacklistCollection).
		Where("expiresAt", "<=", now.UTC()).
		Documents(ctx).
		GetAll()
	if err != nil {
		return 0, storageError(err, "failed to query expired blacklist rows")
	}
	deleted, err := bulkDelete(ctx, repo.client, snaps)
	if err != nil {
		return deleted, storageError(err, "failed to delete expired blacklist rows")
	}

	return deleted, nil
}

func (repo *tokenBlacklistRepository) DeleteAll(ctx context.Context) (int, error) {
	deleted, err := deleteCollection(ctx, repo.client, blacklistCollection)
	if err != nil {
		return deleted, storageError(err, "failed to delete blacklist rows")
	}

	return deleted, nil
}
