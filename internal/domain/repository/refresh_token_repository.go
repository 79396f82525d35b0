package repository

import (
	"context"

	"github.com/pkg/errors"

	"linkvault/internal/domain/entity"
)

// ErrRefreshTokenNotFound is returned when no live row matches the consume key,
// either because the token was never issued or because a concurrent rotation
// already consumed it.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository manages the outstanding refresh token rows that back
// multi-device sessions.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token row.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// ConsumeRefreshTokenByHash deletes the row matching the hash and reports
	// ErrRefreshTokenNotFound when nothing was deleted. The delete is a single
	// conditional statement, so two concurrent rotations of the same token
	// cannot both succeed.
	ConsumeRefreshTokenByHash(ctx context.Context, tokenHash string) error
}
