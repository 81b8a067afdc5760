// Package service holds the ports the usecases depend on for work that is not
// storage: hashing, token minting, identity provider checks and time.
package service

// PasswordHasher turns plaintext passwords into stored hashes and back-checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
