// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"wellness/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create a password account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// FederatedLoginInput carries a Google ID token plus the identity the client claims.
type FederatedLoginInput struct {
	IdentityToken string
	Email         string
	Name          string
}

// UpdateProfileInput holds the optional profile fields. Nil means "not supplied".
type UpdateProfileInput struct {
	Name *string
}

// --- Output DTOs ---

// AuthOutput is returned by every operation that issues a token.
type AuthOutput struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// IdentityUsecase defines account management operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type IdentityUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	FederatedLogin(ctx context.Context, input FederatedLoginInput) (*AuthOutput, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*entity.User, error)

	// Logout blacklists the session token. Failures are logged, never returned.
	Logout(ctx context.Context, session *Session)
	// LogoutAll blacklists the session token and revokes every older token of the user.
	LogoutAll(ctx context.Context, session *Session)
}
