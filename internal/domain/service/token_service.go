package service

import (
	"time"

	"wellness/internal/errors"
)

// Token verification failures.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// TokenIdentity is the identity carried by an access token.
type TokenIdentity struct {
	UserID string
	Name   string
	Email  string
}

// VerifiedToken is a token whose signature and expiry have been checked.
// Claims stay opaque until Identity extracts them.
type VerifiedToken struct {
	Raw       string
	IssuedAt  time.Time
	ExpiresAt time.Time
	claims    map[string]any
}

// NewVerifiedToken is used by TokenService implementations.
func NewVerifiedToken(raw string, issuedAt, expiresAt time.Time, claims map[string]any) *VerifiedToken {
	return &VerifiedToken{
		Raw:       raw,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
		claims:    claims,
	}
}

// Claims returns the raw claim set.
func (t *VerifiedToken) Claims() map[string]any {
	return t.claims
}

// TokenService issues and verifies access tokens.
// Verification (signature and expiry) is separate from identity extraction.
type TokenService interface {
	// Issue signs a token for the identity and returns it with its expiry.
	Issue(identity TokenIdentity) (token string, expiresAt time.Time, err error)

	// Verify checks signature and expiry. It returns ErrTokenExpired,
	// ErrTokenSignatureInvalid or ErrTokenMalformed on failure.
	Verify(raw string) (*VerifiedToken, error)

	// Identity extracts the identity claims from a verified token.
	Identity(token *VerifiedToken) (*TokenIdentity, error)
}
