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

// CategoryHandler holds dependencies for category handlers. All routes sit
// behind the auth middleware, so the user id is always on the context.
type CategoryHandler struct {
	uc usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	input := new(usecase.ListCategoriesInput)
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

// Get handles GET /api/categories/:id.
func (h *CategoryHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid category id")
	}

	output, err := h.uc.Get(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	input := new(usecase.CreateCategoryInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Category created successfully")
}

// Update handles PUT /api/categories/:id.
func (h *CategoryHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid category id")
	}

	input := new(usecase.UpdateCategoryInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), userID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Category updated successfully")
}

// Delete handles DELETE /api/categories/:id.
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid category id")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}
