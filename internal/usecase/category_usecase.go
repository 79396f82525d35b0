package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateCategoryInput defines the data accepted when updating a category.
// Nil fields are left unchanged.
type UpdateCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// ListCategoriesInput narrows a category listing.
type ListCategoriesInput struct {
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
	Search string `query:"search" validate:"omitempty,max=100"`
}

// CategoryOutput is the public projection of a category.
type CategoryOutput struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	BookmarkCount int       `json:"bookmarkCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CategoryUsecase defines the contract for category operations. Every
// operation acts within the authenticated user's scope.
type CategoryUsecase interface {
	// List returns the user's categories ordered by name, with bookmark counts.
	List(ctx context.Context, userID uuid.UUID, input *ListCategoriesInput) ([]*CategoryOutput, error)

	// Get returns one category owned by the user.
	Get(ctx context.Context, userID, id uuid.UUID) (*CategoryOutput, error)

	// Create adds a category. Names are unique per user.
	Create(ctx context.Context, userID uuid.UUID, input *CreateCategoryInput) (*CategoryOutput, error)

	// Update modifies a category owned by the user.
	Update(ctx context.Context, userID, id uuid.UUID, input *UpdateCategoryInput) (*CategoryOutput, error)

	// Delete removes a category. Bookmarks in it become uncategorized.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
