// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"linkvault/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user. RetypePassword
// must match Password exactly.
type RegisterInput struct {
	Email          string `json:"email" validate:"required,email"`
	FirstName      string `json:"firstName" validate:"required,max=100"`
	LastName       string `json:"lastName" validate:"required,max=100"`
	Password       string `json:"password" validate:"required,min=8"`
	RetypePassword string `json:"retypePassword" validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries the refresh token presented for rotation.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// --- Output DTOs ---

// UserOutput is the public projection of a user. The password hash never
// leaves the service layer.
type UserOutput struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// AuthOutput returns the identity plus a fresh token pair.
type AuthOutput struct {
	User         UserOutput `json:"user"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
}

// TokenPairOutput returns a fresh token pair after rotation.
type TokenPairOutput struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthUsecase defines the contract for authentication operations. This is
// what the delivery layer (API handlers and middleware) depends on.
type AuthUsecase interface {
	// Register creates a new account and immediately issues a token pair.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// RefreshToken rotates a refresh token: the presented token is consumed
	// and a fresh pair is issued. A consumed or invalid token always maps to
	// the same opaque failure.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*TokenPairOutput, error)

	// VerifyAccessToken checks an access token without side effects. The
	// boolean reports validity; no error detail is exposed.
	VerifyAccessToken(token string) (uuid.UUID, bool)

	// GetUserFromToken resolves the full user record behind an access token.
	GetUserFromToken(ctx context.Context, token string) (*entity.User, error)
}
