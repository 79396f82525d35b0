package service

import (
	"time"

	"github.com/google/uuid"

	"linkvault/internal/errors"
)

// ErrInvalidToken is the single failure a TokenSigner reports for any
// verification problem. Bad signature, expiry, wrong token class and
// malformed input are deliberately indistinguishable: callers must not
// branch on tampering vs. expiry.
var ErrInvalidToken = errors.New("invalid token")

// TokenSigner signs and verifies the two bearer token classes. Access and
// refresh tokens use distinct secrets and distinct lifetimes; verifying a
// token of one class against the other fails.
type TokenSigner interface {
	// SignAccessToken signs a short-lived access token asserting the user id.
	SignAccessToken(userID uuid.UUID) (string, error)

	// SignRefreshToken signs a long-lived refresh token asserting the user id.
	SignRefreshToken(userID uuid.UUID) (string, error)

	// VerifyAccessToken returns the embedded user id, or ErrInvalidToken.
	VerifyAccessToken(token string) (uuid.UUID, error)

	// VerifyRefreshToken returns the embedded user id, or ErrInvalidToken.
	VerifyRefreshToken(token string) (uuid.UUID, error)

	// HashToken returns the digest under which a refresh token is stored.
	HashToken(token string) string

	// RefreshTokenTTL returns the configured refresh token lifetime.
	RefreshTokenTTL() time.Duration
}
