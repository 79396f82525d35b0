package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"linkvault/internal/delivery/http/middleware"
	"linkvault/internal/delivery/http/response"
	"linkvault/internal/usecase"
)

// BookmarkHandler holds dependencies for bookmark handlers. All routes sit
// behind the auth middleware.
type BookmarkHandler struct {
	uc usecase.BookmarkUsecase
}

// NewBookmarkHandler is the constructor for BookmarkHandler, injected by Fx.
func NewBookmarkHandler(uc usecase.BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{uc: uc}
}

// List handles GET /api/bookmarks.
func (h *BookmarkHandler) List(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	input := new(usecase.ListBookmarksInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "Invalid query parameters")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.List(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Get handles GET /api/bookmarks/:id.
func (h *BookmarkHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid bookmark id")
	}

	output, err := h.uc.Get(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Create handles POST /api/bookmarks.
func (h *BookmarkHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	input := new(usecase.CreateBookmarkInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "Invalid bookmark input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Bookmark created successfully")
}

// Update handles PUT /api/bookmarks/:id.
func (h *BookmarkHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid bookmark id")
	}

	input := new(usecase.UpdateBookmarkInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "Invalid bookmark input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), userID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Bookmark updated successfully")
}

// Delete handles DELETE /api/bookmarks/:id.
func (h *BookmarkHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid bookmark id")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Bookmark deleted successfully")
}
