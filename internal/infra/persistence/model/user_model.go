// Package model holds the relational persistence models used by the postgres driver.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID               string     `gorm:"type:uuid;primaryKey"`
	Name             string     `gorm:"type:varchar(100);not null"`
	Email            string     `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	PasswordHash     *string    `gorm:"type:varchar(72)"`
	LoginProvider    string     `gorm:"type:varchar(16);not null"`
	FederatedID      *string    `gorm:"type:varchar(255);index"`
	RegistrationDate time.Time  `gorm:"not null"`
	UpdatedAt        *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
