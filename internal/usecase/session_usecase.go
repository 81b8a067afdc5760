package usecase

import (
	"context"
	"time"

	"wellness/internal/domain/service"
)

// Session is an authenticated request context: who is calling, with which token.
type Session struct {
	Identity  service.TokenIdentity
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SessionUsecase is the session guard: token validation plus the blacklist.
type SessionUsecase interface {
	// Authenticate runs the full guard on a raw bearer token and returns a typed
	// domain error for each rejected state.
	Authenticate(ctx context.Context, rawToken string) (*Session, error)

	// Blacklist invalidates a token until its natural expiry.
	Blacklist(ctx context.Context, token, userID string, expiresAt time.Time) error

	// IsBlacklisted reports whether the token was invalidated. Storage errors are
	// logged and reported as not blacklisted.
	IsBlacklisted(ctx context.Context, token string) bool

	// RevokeAllForUser rejects every token of the user issued before until.
	RevokeAllForUser(ctx context.Context, userID string, until time.Time) error

	// CleanupExpired deletes blacklist rows past their expiry.
	CleanupExpired(ctx context.Context) (int, error)
}
