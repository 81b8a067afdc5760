// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// LoginProvider tells how an account authenticates.
type LoginProvider string

const (
	// LoginProviderPassword marks an account holding a local bcrypt password hash.
	LoginProviderPassword LoginProvider = "password"
	// LoginProviderFederated marks an account authenticated by Google Sign-In.
	LoginProviderFederated LoginProvider = "federated"
)

// User is the account of a person using the app.
// Exactly one of PasswordHash or FederatedID is populated, chosen by LoginProvider.
type User struct {
	ID               string        // Opaque identifier assigned by the repository on Create.
	Name             string        // Display name, mutable by the owner.
	Email            string        // Lowercased email, unique across all users.
	PasswordHash     string        // bcrypt hash, only when LoginProvider is password.
	LoginProvider    LoginProvider // How the account authenticates.
	FederatedID      string        // Identity provider subject, only when LoginProvider is federated.
	RegistrationDate time.Time     // Set once when the account is created.
	UpdatedAt        *time.Time    // Last profile update or provider link; nil until then.
}

// HasPassword reports whether the account can log in with a local password.
func (u *User) HasPassword() bool {
	return u.LoginProvider == LoginProviderPassword && u.PasswordHash != ""
}

// LinkFederated switches the account to federated login. The password hash is dropped
// and cannot be restored.
func (u *User) LinkFederated(subjectID string, now time.Time) {
	u.LoginProvider = LoginProviderFederated
	u.FederatedID = subjectID
	u.PasswordHash = ""
	u.UpdatedAt = &now
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
