// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"linkvault/config"
	"linkvault/internal/domain/service"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	// Development fallbacks only. NewJWTSigner refuses to start in production
	// without explicit secrets.
	devAccessSecret  = "insecure-dev-access-secret"
	devRefreshSecret = "insecure-dev-refresh-secret"
)

// tokenClaims is the signed payload: the standard registered claims carrying
// the user id as subject, plus the token class so an access token can never
// be replayed as a refresh token or vice versa.
type tokenClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// jwtSigner implements service.TokenSigner with HS256 over distinct secrets
// per token class.
type jwtSigner struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTSigner builds the signer from configuration. Missing secrets fall
// back to fixed development values outside production; in production both
// secrets are a hard requirement.
func NewJWTSigner(cfg *config.Config) (service.TokenSigner, error) {
	access := cfg.SecretKey.Access
	refresh := cfg.SecretKey.Refresh

	if access == "" || refresh == "" {
		if cfg.Env.Env == "production" {
			return nil, errors.New("jwt secrets must be provided in production")
		}
		if access == "" {
			access = devAccessSecret
		}
		if refresh == "" {
			refresh = devRefreshSecret
		}
	}

	return &jwtSigner{
		accessSecret:  []byte(access),
		refreshSecret: []byte(refresh),
		accessTTL:     accessTokenTTL,
		refreshTTL:    refreshTokenTTL,
	}, nil
}

// SignAccessToken signs a short-lived access token asserting the user id.
func (s *jwtSigner) SignAccessToken(userID uuid.UUID) (string, error) {
	return s.sign(userID, tokenTypeAccess, s.accessTTL, s.accessSecret)
}

// SignRefreshToken signs a long-lived refresh token asserting the user id.
func (s *jwtSigner) SignRefreshToken(userID uuid.UUID) (string, error) {
	return s.sign(userID, tokenTypeRefresh, s.refreshTTL, s.refreshSecret)
}

// VerifyAccessToken verifies a token against the access secret.
func (s *jwtSigner) VerifyAccessToken(token string) (uuid.UUID, error) {
	return s.verify(token, tokenTypeAccess, s.accessSecret)
}

// VerifyRefreshToken verifies a token against the refresh secret.
func (s *jwtSigner) VerifyRefreshToken(token string) (uuid.UUID, error) {
	return s.verify(token, tokenTypeRefresh, s.refreshSecret)
}

// HashToken returns the hex SHA-256 digest under which a refresh token is
// stored; the raw token string never reaches the database.
func (s *jwtSigner) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (s *jwtSigner) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtSigner) sign(userID uuid.UUID, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// verify collapses every failure mode into service.ErrInvalidToken. The
// payload is only signed, not encrypted, so nothing beyond the user id may
// ever be put in it.
func (s *jwtSigner) verify(tokenString, wantType string, secret []byte) (uuid.UUID, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, service.ErrInvalidToken
	}

	if claims.Type != wantType {
		return uuid.Nil, service.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	return userID, nil
}
