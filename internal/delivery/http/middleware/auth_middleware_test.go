package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	mockUsecase "linkvault/internal/mocks/usecase"
)

func performAuthRequest(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, c
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUsecase)

	rec, _ := performAuthRequest(t, m, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NonBearerScheme(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUsecase)

	rec, _ := performAuthRequest(t, m, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	authUsecase.EXPECT().GetUserFromToken(mock.Anything, "bad-token").Return(nil, domainerrors.ErrInvalidToken)
	m := NewAuthMiddleware(authUsecase)

	rec, _ := performAuthRequest(t, m, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_UserLookupFailure(t *testing.T) {
	// A token that verifies but whose account no longer exists answers the
	// same 401 as a bad token.
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	authUsecase.EXPECT().GetUserFromToken(mock.Anything, "orphan-token").Return(nil, domainerrors.ErrUserNotFound)
	m := NewAuthMiddleware(authUsecase)

	rec, _ := performAuthRequest(t, m, "Bearer orphan-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidTokenSetsUserAndUserID(t *testing.T) {
	user := &entity.User{
		ID:        uuid.New(),
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
	}
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	authUsecase.EXPECT().GetUserFromToken(mock.Anything, "good-token").Return(user, nil)
	m := NewAuthMiddleware(authUsecase)

	rec, c := performAuthRequest(t, m, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)

	gotUser, ok := UserFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, user, gotUser)

	gotID, ok := UserIDFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, user.ID, gotID)
}

func TestUserFromContext_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	gotUser, ok := UserFromContext(c)
	assert.False(t, ok)
	assert.Nil(t, gotUser)
}

func TestUserIDFromContext_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	gotID, ok := UserIDFromContext(c)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, gotID)
}
