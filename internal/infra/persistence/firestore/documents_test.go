package firestore

import (
	"fmt"
	"testing"
	"time"

	"wellness/internal/domain/entity"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestFromUser_NormalizesEmailAndConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	registered := time.Date(2025, 3, 1, 9, 0, 0, 0, loc)

	doc := fromUser(&entity.User{
		Name:             "Ana",
		Email:            "  Ana@Example.COM ",
		LoginProvider:    entity.LoginProviderFederated,
		FederatedID:      "google-sub",
		RegistrationDate: registered,
	})

	assert.Equal(t, "ana@example.com", doc.Email)
	assert.Equal(t, "google-sub", doc.GoogleID)
	assert.Empty(t, doc.PasswordHash)
	assert.Equal(t, time.UTC, doc.RegistrationDate.Location())
	assert.True(t, doc.RegistrationDate.Equal(registered))
	assert.Nil(t, doc.UpdatedAt)
}

func TestUserDocument_LegacyDocumentDefaultsToPassword(t *testing.T) {
	doc := &userDocument{Name: "Bia", Email: "bia@example.com", PasswordHash: "hash"}

	user := doc.toEntity("u-1")

	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, entity.LoginProviderPassword, user.LoginProvider)
	assert.True(t, user.HasPassword())
}

func TestMoodDocument_KeepsUpdatedAt(t *testing.T) {
	created := time.Date(2025, 1, 2, 8, 30, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	entry := &entity.MoodEntry{
		UserID:           "u-1",
		MoodType:         entity.MoodHappy,
		Level:            4,
		ShortDescription: "dia bom",
		RegistrationDate: created,
		CreatedAt:        created,
		UpdatedAt:        &updated,
	}

	got := fromMoodEntry(entry).toEntity("m-1")

	assert.Equal(t, "m-1", got.ID)
	assert.Equal(t, entity.MoodHappy, got.MoodType)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.Equal(updated))
	assert.NotSame(t, entry.UpdatedAt, got.UpdatedAt)
}

func TestOptionalField(t *testing.T) {
	assert.Equal(t, firestore.Delete, optionalField(""))
	assert.Equal(t, "hash", optionalField("hash"))
}

func TestStatusHelpers_SeeThroughWrapping(t *testing.T) {
	exists := fmt.Errorf("commit: %w", status.Error(codes.AlreadyExists, "document already exists"))
	missing := status.Error(codes.NotFound, "no document")

	assert.True(t, isAlreadyExists(exists))
	assert.False(t, isNotFound(exists))
	assert.True(t, isNotFound(missing))
	assert.False(t, isAlreadyExists(fmt.Errorf("plain")))
}
