package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"linkvault/internal/domain/entity"
)

// ErrCategoryNotFound is returned when no category matches the lookup within
// the requesting user's scope.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryListParams narrows a category listing. Zero values mean defaults
// (limit 10, offset 0, no name filter).
type CategoryListParams struct {
	Limit  int
	Offset int
	Search string
}

// CategoryRepository defines persistence operations for categories. Every
// operation is scoped to the owning user id.
type CategoryRepository interface {
	// ListByUser returns the user's categories ordered by name, each carrying
	// its bookmark count.
	ListByUser(ctx context.Context, userID uuid.UUID, params CategoryListParams) ([]*entity.Category, error)

	// FindByID retrieves a category owned by the user.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by exact name within the user's scope.
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category owned by the user.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
