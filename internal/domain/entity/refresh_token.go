package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents one outstanding, revocable session-renewal
// credential. A user may hold several at once (one per device). A row is
// deleted and replaced on every successful rotation, never updated in place,
// which gives each stored token value single-use semantics.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 hash of the signed token string, the exact-match consume key.
	ExpiresAt time.Time
	CreatedAt time.Time
}
