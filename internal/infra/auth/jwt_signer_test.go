package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkvault/config"
	"linkvault/internal/domain/service"
)

func newTestSigner(t *testing.T) service.TokenSigner {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	signer, err := NewJWTSigner(cfg)
	require.NoError(t, err)

	return signer
}

func TestJWTSigner_SignAndVerifyAccessToken(t *testing.T) {
	signer := newTestSigner(t)
	userID := uuid.New()

	token, err := signer.SignAccessToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := signer.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWTSigner_SignAndVerifyRefreshToken(t *testing.T) {
	signer := newTestSigner(t)
	userID := uuid.New()

	token, err := signer.SignRefreshToken(userID)
	require.NoError(t, err)

	parsedID, err := signer.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWTSigner_TokenClassesAreNotInterchangeable(t *testing.T) {
	signer := newTestSigner(t)
	userID := uuid.New()

	accessToken, err := signer.SignAccessToken(userID)
	require.NoError(t, err)

	refreshToken, err := signer.SignRefreshToken(userID)
	require.NoError(t, err)

	// An access token must never pass refresh verification and vice versa.
	_, err = signer.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = signer.VerifyAccessToken(refreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTSigner_VerifyRejectsGarbage(t *testing.T) {
	signer := newTestSigner(t)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := signer.VerifyAccessToken(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	}
}

func TestJWTSigner_VerifyRejectsTamperedToken(t *testing.T) {
	signer := newTestSigner(t)

	token, err := signer.SignAccessToken(uuid.New())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = signer.VerifyAccessToken(tampered)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTSigner_VerifyRejectsExpiredToken(t *testing.T) {
	signer := newTestSigner(t)
	userID := uuid.New()

	// Mint a token whose lifetime already ran out, signed with the same
	// secret newTestSigner uses.
	now := time.Now()
	claims := tokenClaims{
		Type: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-access-secret"))
	require.NoError(t, err)

	_, err = signer.VerifyAccessToken(expired)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTSigner_VerifyRejectsWrongSecret(t *testing.T) {
	signer := newTestSigner(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "different-access-secret"
	otherCfg.SecretKey.Refresh = "different-refresh-secret"
	otherSigner, err := NewJWTSigner(otherCfg)
	require.NoError(t, err)

	token, err := otherSigner.SignAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = signer.VerifyAccessToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTSigner_HashTokenIsDeterministic(t *testing.T) {
	signer := newTestSigner(t)

	hash1 := signer.HashToken("some-token")
	hash2 := signer.HashToken("some-token")
	hash3 := signer.HashToken("another-token")

	assert.Equal(t, hash1, hash2)
	assert.NotEqual(t, hash1, hash3)
	assert.Len(t, hash1, 64) // hex encoded SHA-256
}

func TestJWTSigner_RefreshTokenTTL(t *testing.T) {
	signer := newTestSigner(t)

	assert.Equal(t, 7*24*time.Hour, signer.RefreshTokenTTL())
}

func TestNewJWTSigner_ProductionRequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "production"

	_, err := NewJWTSigner(cfg)
	assert.Error(t, err)
}

func TestNewJWTSigner_DevFallbackOutsideProduction(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "local"

	signer, err := NewJWTSigner(cfg)
	require.NoError(t, err)

	token, err := signer.SignAccessToken(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
