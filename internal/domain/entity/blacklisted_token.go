package entity

import "time"

// revokedBeforePrefix marks blacklist rows that revoke every token of a user
// issued before BlacklistedAt.
const revokedBeforePrefix = "revoked-before:"

// BlacklistedToken is a bearer token invalidated before its natural expiry.
// Rows are never mutated and may be deleted once ExpiresAt has passed.
type BlacklistedToken struct {
	Token         string    // Raw bearer token, matched exactly.
	UserID        string    // Owner of the invalidated token.
	BlacklistedAt time.Time // When the token was invalidated.
	ExpiresAt     time.Time // Copied from the token's exp claim.
}

// Expired reports whether the row is past its expiry and safe to delete.
func (t *BlacklistedToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// RevocationKey returns the reserved blacklist key used to revoke all sessions of a user.
func RevocationKey(userID string) string {
	return revokedBeforePrefix + userID
}
