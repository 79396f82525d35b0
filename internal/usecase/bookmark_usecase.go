package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateBookmarkInput defines the data required to create a bookmark.
type CreateBookmarkInput struct {
	Title       string     `json:"title" validate:"required,max=255"`
	URL         string     `json:"url" validate:"required,url"`
	Description string     `json:"description" validate:"max=2000"`
	CategoryID  *uuid.UUID `json:"categoryId" validate:"omitempty"`
	Tags        []string   `json:"tags" validate:"omitempty,dive,max=100"`
}

// UpdateBookmarkInput defines the data accepted when updating a bookmark.
// Nil fields are left unchanged; a non-nil Tags slice replaces the tag set.
type UpdateBookmarkInput struct {
	Title       *string    `json:"title" validate:"omitempty,max=255"`
	URL         *string    `json:"url" validate:"omitempty,url"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	CategoryID  *uuid.UUID `json:"categoryId" validate:"omitempty"`
	Tags        []string   `json:"tags" validate:"omitempty,dive,max=100"`
}

// ListBookmarksInput narrows a bookmark listing.
type ListBookmarksInput struct {
	Limit      int        `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset     int        `query:"offset" validate:"omitempty,min=0"`
	Search     string     `query:"search" validate:"omitempty,max=255"`
	CategoryID *uuid.UUID `query:"categoryId" validate:"omitempty"`
}

// BookmarkCategoryOutput is the embedded category of a bookmark.
type BookmarkCategoryOutput struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookmarkOutput is the public projection of a bookmark with its category
// and tags resolved.
type BookmarkOutput struct {
	ID          uuid.UUID               `json:"id"`
	Title       string                  `json:"title"`
	URL         string                  `json:"url"`
	Description string                  `json:"description,omitempty"`
	Category    *BookmarkCategoryOutput `json:"category,omitempty"`
	Tags        []string                `json:"tags"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// BookmarkUsecase defines the contract for bookmark operations. Every
// operation acts within the authenticated user's scope.
type BookmarkUsecase interface {
	// List returns the user's bookmarks, most recently updated first.
	List(ctx context.Context, userID uuid.UUID, input *ListBookmarksInput) ([]*BookmarkOutput, error)

	// Get returns one bookmark owned by the user.
	Get(ctx context.Context, userID, id uuid.UUID) (*BookmarkOutput, error)

	// Create adds a bookmark, resolving tag names to shared tag rows.
	Create(ctx context.Context, userID uuid.UUID, input *CreateBookmarkInput) (*BookmarkOutput, error)

	// Update modifies a bookmark owned by the user.
	Update(ctx context.Context, userID, id uuid.UUID, input *UpdateBookmarkInput) (*BookmarkOutput, error)

	// Delete removes a bookmark and its tag links.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
