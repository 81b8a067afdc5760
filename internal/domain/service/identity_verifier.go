package service

import (
	"context"

	"wellness/internal/errors"
)

// ErrIdentityTokenInvalid is returned when the identity provider rejects a token.
var ErrIdentityTokenInvalid = errors.New("identity token invalid")

// FederatedIdentity is the normalized identity extracted from a provider token.
type FederatedIdentity struct {
	SubjectID string
	Email     string
	Name      string
}

// IdentityVerifier verifies third-party identity tokens (Google ID tokens).
type IdentityVerifier interface {
	// Verify checks the token and returns the identity it asserts.
	// emailHint and nameHint are only used when verification is disabled for development.
	Verify(ctx context.Context, identityToken, emailHint, nameHint string) (*FederatedIdentity, error)
}
