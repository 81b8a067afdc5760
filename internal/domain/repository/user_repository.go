// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"wellness/internal/domain/entity"
	"wellness/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned by Create when another user already owns the email.
	ErrEmailTaken = errors.New("email already taken")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and assigns its ID.
	// The storage layer enforces email uniqueness and reports ErrEmailTaken.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the mutable fields of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// DeleteAll removes every user together with any email reservation and returns
	// how many users were removed.
	DeleteAll(ctx context.Context) (int, error)
}
