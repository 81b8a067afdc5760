package auth

import (
	"strings"
	"testing"

	"wellness/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, hasher.Check("secret1", hash))
	assert.False(t, hasher.Check("secret2", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("secret1", "invalid_hash"))
	assert.False(t, hasher.Check("secret1", ""))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_DefaultCostWithoutAuthConfig(t *testing.T) {
	hasher, ok := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_CostIsClamped(t *testing.T) {
	low, ok := NewBcryptHasherWithCost(1).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.MinCost, low.cost)

	high, ok := NewBcryptHasherWithCost(99).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.MaxCost, high.cost)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 80))
	assert.Error(t, err)
}
