package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"linkvault/config"
)

func newTestHasher() *bcryptHasher {
	// MinCost keeps the test fast; production cost comes from config.
	return &bcryptHasher{cost: bcrypt.MinCost}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "Password123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestHasher()

	hash1, err := hasher.Hash("Password123!")
	assert.NoError(t, err)
	hash2, err := hasher.Hash("Password123!")
	assert.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Password123!")
	assert.NoError(t, err)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("WrongPassword!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("Password123!", "not-a-bcrypt-hash"))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 12}}
	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	assert.True(t, ok)
	assert.Equal(t, 12, hasher.cost)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	hasher, ok := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	assert.True(t, ok)
	assert.Equal(t, defaultBcryptCost, hasher.cost)
}
