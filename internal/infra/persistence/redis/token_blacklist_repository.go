package redis

import (
	"context"
	"encoding/json"
	"time"

	"wellness/internal/domain/entity"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/domain/repository"
	"wellness/internal/errors"
	"wellness/internal/util"

	"github.com/redis/go-redis/v9"
)

// minEntryTTL keeps a row that is already past its expiry visible for a moment
// instead of silently dropping the write.
const minEntryTTL = time.Second

type tokenBlacklistRepository struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
}

// NewTokenBlacklistRepository returns a blacklist whose keys expire together with the tokens.
func NewTokenBlacklistRepository(client redis.Cmdable, keyPrefix string) repository.TokenBlacklistRepository {
	return &tokenBlacklistRepository{
		client: client,
		prefix: keyPrefix,
		now:    time.Now,
	}
}

// blacklistEntry is the JSON value stored under each key.
type blacklistEntry struct {
	Token         string    `json:"token"`
	UserID        string    `json:"userId"`
	BlacklistedAt time.Time `json:"blacklistedAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

func (repo *tokenBlacklistRepository) key(token string) string {
	return blacklistKey(repo.prefix, token)
}

func blacklistKey(prefix, token string) string {
	return prefix + ":blacklist:" + util.HashKey(token)
}

func entryTTL(expiresAt, now time.Time) time.Duration {
	ttl := expiresAt.Sub(now)
	if ttl < minEntryTTL {
		return minEntryTTL
	}

	return ttl
}

// Add overwrites any existing value for the key.
func (repo *tokenBlacklistRepository) Add(ctx context.Context, token *entity.BlacklistedToken) error {
	payload, err := json.Marshal(blacklistEntry{
		Token:         token.Token,
		UserID:        token.UserID,
		BlacklistedAt: token.BlacklistedAt.UTC(),
		ExpiresAt:     token.ExpiresAt.UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "marshal blacklist entry")
	}

	ttl := entryTTL(token.ExpiresAt, repo.now())
	if err := repo.client.Set(ctx, repo.key(token.Token), payload, ttl).Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to blacklist token")
	}

	return nil
}

func (repo *tokenBlacklistRepository) Exists(ctx context.Context, token string) (bool, error) {
	n, err := repo.client.Exists(ctx, repo.key(token)).Result()
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check token blacklist")
	}

	return n > 0, nil
}

func (repo *tokenBlacklistRepository) Find(ctx context.Context, token string) (*entity.BlacklistedToken, error) {
	payload, err := repo.client.Get(ctx, repo.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrBlacklistEntryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find blacklisted token")
	}

	var entry blacklistEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, errors.Wrap(err, "unmarshal blacklist entry")
	}

	return &entity.BlacklistedToken{
		Token:         entry.Token,
		UserID:        entry.UserID,
		BlacklistedAt: entry.BlacklistedAt,
		ExpiresAt:     entry.ExpiresAt,
	}, nil
}

// DeleteExpired is a no-op: Redis evicts each key when its TTL runs out.
func (repo *tokenBlacklistRepository) DeleteExpired(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

// scanBatchSize is the COUNT hint passed to SCAN while clearing the blacklist.
const scanBatchSize = 500

// DeleteAll scans the blacklist keyspace of this prefix and deletes it batch by batch.
func (repo *tokenBlacklistRepository) DeleteAll(ctx context.Context) (int, error) {
	pattern := repo.prefix + ":blacklist:*"
	deleted := 0

	var cursor uint64
	for {
		keys, next, err := repo.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return deleted, domainerrors.NewDatabaseExecuteError(err, "failed to scan blacklist keys")
		}

		if len(keys) > 0 {
			n, err := repo.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, domainerrors.NewDatabaseExecuteError(err, "failed to delete blacklist keys")
			}
			deleted += int(n)
		}

		if next == 0 {
			return deleted, nil
		}
		cursor = next
	}
}
