package firestore

import (
	"time"

	"wellness/internal/domain/entity"
)

// userDocument is the stored shape of a users/<id> document.
type userDocument struct {
	Name             string     `firestore:"name"`
	Email            string     `firestore:"email"`
	PasswordHash     string     `firestore:"password,omitempty"`
	LoginProvider    string     `firestore:"loginProvider"`
	GoogleID         string     `firestore:"googleId,omitempty"`
	RegistrationDate time.Time  `firestore:"registrationDate"`
	UpdatedAt        *time.Time `firestore:"updatedAt,omitempty"`
}

// emailDocument reserves an address. Its ID is the hash of the normalized email.
type emailDocument struct {
	UserID string `firestore:"userId"`
}

// moodDocument is the stored shape of a mood_entries/<id> document.
type moodDocument struct {
	UserID           string     `firestore:"userId"`
	MoodType         string     `firestore:"moodType"`
	Level            int        `firestore:"level"`
	ShortDescription string     `firestore:"shortDescription"`
	RegistrationDate time.Time  `firestore:"registrationDate"`
	CreatedAt        time.Time  `firestore:"createdAt"`
	UpdatedAt        *time.Time `firestore:"updatedAt,omitempty"`
}

// blacklistDocument is keyed by the hash of the token.
type blacklistDocument struct {
	Token         string    `firestore:"token"`
	UserID        string    `firestore:"userId"`
	BlacklistedAt time.Time `firestore:"blacklistedAt"`
	ExpiresAt     time.Time `firestore:"expiresAt"`
}

func fromUser(u *entity.User) *userDocument {
	return &userDocument{
		Name:             u.Name,
		Email:            entity.NormalizeEmail(u.Email),
		PasswordHash:     u.PasswordHash,
		LoginProvider:    string(u.LoginProvider),
		GoogleID:         u.FederatedID,
		RegistrationDate: u.RegistrationDate.UTC(),
		UpdatedAt:        utcPtr(u.UpdatedAt),
	}
}

func (d *userDocument) toEntity(id string) *entity.User {
	provider := entity.LoginProvider(d.LoginProvider)
	if provider == "" {
		provider = entity.LoginProviderPassword
	}

	return &entity.User{
		ID:               id,
		Name:             d.Name,
		Email:            d.Email,
		PasswordHash:     d.PasswordHash,
		LoginProvider:    provider,
		FederatedID:      d.GoogleID,
		RegistrationDate: d.RegistrationDate.UTC(),
		UpdatedAt:        utcPtr(d.UpdatedAt),
	}
}

func fromMoodEntry(e *entity.MoodEntry) *moodDocument {
	return &moodDocument{
		UserID:           e.UserID,
		MoodType:         string(e.MoodType),
		Level:            e.Level,
		ShortDescription: e.ShortDescription,
		RegistrationDate: e.RegistrationDate.UTC(),
		CreatedAt:        e.CreatedAt.UTC(),
		UpdatedAt:        utcPtr(e.UpdatedAt),
	}
}

func (d *moodDocument) toEntity(id string) *entity.MoodEntry {
	return &entity.MoodEntry{
		ID:               id,
		UserID:           d.UserID,
		MoodType:         entity.MoodType(d.MoodType),
		Level:            d.Level,
		ShortDescription: d.ShortDescription,
		RegistrationDate: d.RegistrationDate.UTC(),
		CreatedAt:        d.CreatedAt.UTC(),
		UpdatedAt:        utcPtr(d.UpdatedAt),
	}
}

func fromBlacklistedToken(t *entity.BlacklistedToken) *blacklistDocument {
	return &blacklistDocument{
		Token:         t.Token,
		UserID:        t.UserID,
		BlacklistedAt: t.BlacklistedAt.UTC(),
		ExpiresAt:     t.ExpiresAt.UTC(),
	}
}

func (d *blacklistDocument) toEntity() *entity.BlacklistedToken {
	return &entity.BlacklistedToken{
		Token:         d.Token,
		UserID:        d.UserID,
		BlacklistedAt: d.BlacklistedAt.UTC(),
		ExpiresAt:     d.ExpiresAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()

	return &u
}
