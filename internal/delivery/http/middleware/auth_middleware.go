// Package middleware contains the HTTP middleware chain for the API.
package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"linkvault/internal/delivery/http/response"
	"linkvault/internal/domain/entity"
	"linkvault/internal/usecase"
)

const (
	// ContextKeyUser is the echo.Context key under which the resolved user
	// record is stored.
	ContextKeyUser = "user"

	// ContextKeyUserID is the echo.Context key under which the authenticated
	// user's id is stored.
	ContextKeyUserID = "userID"
)

// AuthMiddleware guards routes behind a Bearer access token.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate validates the Authorization header, resolves the account
// behind the token and stores it on the request context under both keys.
// Missing header, wrong scheme, invalid token and a vanished user all answer
// 401 without detail.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		user, err := m.authUsecase.GetUserFromToken(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyUserID, user.ID)

		return next(c)
	}
}

// UserFromContext returns the resolved user record stored by Authenticate.
func UserFromContext(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)

	return user, ok
}

// UserIDFromContext returns the authenticated user id stored by Authenticate.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}
