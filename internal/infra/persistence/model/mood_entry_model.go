package model

import "time"

// MoodEntryModel mirrors the 'mood_entries' table.
type MoodEntryModel struct {
	ID               string     `gorm:"type:uuid;primaryKey"`
	UserID           string     `gorm:"type:uuid;not null;index:idx_mood_entries_user_date,priority:1"`
	MoodType         string     `gorm:"type:varchar(16);not null"`
	Level            int        `gorm:"type:smallint;not null;check:level BETWEEN 1 AND 5"`
	ShortDescription *string    `gorm:"type:varchar(500)"`
	RegistrationDate time.Time  `gorm:"not null;index:idx_mood_entries_user_date,priority:2,sort:desc"`
	CreatedAt        time.Time  `gorm:"autoCreateTime:false;not null"`
	UpdatedAt        *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (MoodEntryModel) TableName() string {
	return "mood_entries"
}
