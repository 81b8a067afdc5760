package repository

import (
	"context"
	"time"

	"wellness/internal/domain/entity"
	"wellness/internal/errors"
)

// ErrBlacklistEntryNotFound is returned by Find when the key is not blacklisted.
var ErrBlacklistEntryNotFound = errors.New("blacklist entry not found")

// TokenBlacklistRepository stores invalidated bearer tokens.
type TokenBlacklistRepository interface {
	// Add inserts a row. Adding the same token twice is harmless; for revocation
	// markers the newer row replaces the older one.
	Add(ctx context.Context, token *entity.BlacklistedToken) error

	// Exists reports whether the raw token is blacklisted.
	Exists(ctx context.Context, token string) (bool, error)

	// Find returns the row stored under the key.
	Find(ctx context.Context, token string) (*entity.BlacklistedToken, error)

	// DeleteExpired removes rows whose ExpiresAt is not after now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)

	// DeleteAll removes every row, expired or not, and returns how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}
