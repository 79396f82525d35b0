package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"linkvault/internal/delivery/http/response"
	domainerrors "linkvault/internal/domain/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Validation failures become field-level 400 responses.
	var validationErrs playgroundvalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fieldErrs := make([]response.FieldError, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fieldErrs = append(fieldErrs, response.FieldError{
				Field:   strings.ToLower(fieldErr.Field()),
				Message: validationMessage(fieldErr),
			})
		}

		_ = response.Error(c, http.StatusBadRequest, "Validation failed", fieldErrs)

		return
	}

	// Domain errors carry their own status and message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message), nil)

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.InternalServerError(c, "Internal server error")
}

func validationMessage(fieldErr playgroundvalidator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + fieldErr.Param() + " characters"
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	default:
		return "is invalid"
	}
}
