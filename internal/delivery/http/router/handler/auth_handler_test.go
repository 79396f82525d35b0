package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkvault/internal/delivery/http/validator"
	"linkvault/internal/domain/entity"
	mockUsecase "linkvault/internal/mocks/usecase"
	"linkvault/internal/usecase"
)

func newAuthTestContext(t *testing.T, method, target, body, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	handler := NewAuthHandler(authUsecase)

	userID := uuid.New()
	authUsecase.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Run(func(ctx context.Context, input *usecase.RegisterInput) {
			assert.Equal(t, "test@example.com", input.Email)
			assert.Equal(t, "Password123!", input.Password)
		}).
		Return(&usecase.AuthOutput{
			User:         usecase.UserOutput{ID: userID, Email: "test@example.com"},
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		}, nil)

	body := `{"email":"test@example.com","firstName":"Test","lastName":"User","password":"Password123!","retypePassword":"Password123!"}`
	c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/register", body, "")

	err := handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access-token")
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	handler := NewAuthHandler(authUsecase)

	// Missing email and password fails validation before the usecase is touched.
	body := `{"firstName":"Test"}`
	c, _ := newAuthTestContext(t, http.MethodPost, "/api/auth/register", body, "")

	err := handler.Register(c)

	assert.Error(t, err)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	handler := NewAuthHandler(authUsecase)

	authUsecase.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.AuthOutput{
			User:         usecase.UserOutput{ID: uuid.New(), Email: "test@example.com"},
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		}, nil)

	body := `{"email":"test@example.com","password":"Password123!"}`
	c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/login", body, "")

	err := handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "refresh-token")
}

func TestAuthHandler_Login_UsecaseErrorPropagates(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	handler := NewAuthHandler(authUsecase)

	wantErr := errors.New("invalid credentials")
	authUsecase.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, wantErr)

	body := `{"email":"test@example.com","password":"WrongPassword!"}`
	c, _ := newAuthTestContext(t, http.MethodPost, "/api/auth/login", body, "")

	err := handler.Login(c)

	// The handler hands the error to the error middleware untouched.
	assert.True(t, errors.Is(err, wantErr))
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	handler := NewAuthHandler(authUsecase)

	authUsecase.EXPECT().
		RefreshToken(mock.Anything, mock.AnythingOfType("*usecase.RefreshTokenInput")).
		Return(&usecase.TokenPairOutput{
			AccessToken:  "new-access-token",
			RefreshToken: "new-refresh-token",
		}, nil)

	body := `{"refreshToken":"old-refresh-token"}`
	c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/refresh-token", body, "")

	err := handler.RefreshToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access-token")
}

func TestAuthHandler_Me_Success(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	handler := NewAuthHandler(authUsecase)

	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	authUsecase.EXPECT().
		GetUserFromToken(mock.Anything, "valid-token").
		Return(user, nil)

	c, rec := newAuthTestContext(t, http.MethodGet, "/api/auth/me", "", "Bearer valid-token")

	err := handler.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.Email)
}

func TestAuthHandler_Me_MissingHeader(t *testing.T) {
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	handler := NewAuthHandler(authUsecase)

	c, rec := newAuthTestContext(t, http.MethodGet, "/api/auth/me", "", "")

	err := handler.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCutBearer(t *testing.T) {
	token, found := cutBearer("Bearer abc.def.ghi")
	assert.True(t, found)
	assert.Equal(t, "abc.def.ghi", token)

	_, found = cutBearer("bearer abc")
	assert.False(t, found)

	_, found = cutBearer("Bearer ")
	assert.False(t, found)

	_, found = cutBearer("")
	assert.False(t, found)
}
