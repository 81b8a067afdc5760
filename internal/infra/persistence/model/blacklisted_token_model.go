package model

import "time"

// BlacklistedTokenModel mirrors the 'blacklisted_tokens' table. Rows are keyed by
// the SHA-256 of the token so the primary key stays fixed-length.
type BlacklistedTokenModel struct {
	TokenHash     string    `gorm:"type:char(64);primaryKey"`
	Token         string    `gorm:"type:text;not null"`
	UserID        string    `gorm:"type:varchar(64);not null;index"`
	BlacklistedAt time.Time `gorm:"not null"`
	ExpiresAt     time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (BlacklistedTokenModel) TableName() string {
	return "blacklisted_tokens"
}

// All lists every model managed by migrations.
func All() []any {
	return []any{
		&UserModel{},
		&MoodEntryModel{},
		&BlacklistedTokenModel{},
	}
}
