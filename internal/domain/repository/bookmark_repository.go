package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"linkvault/internal/domain/entity"
)

// ErrBookmarkNotFound is returned when no bookmark matches the lookup within
// the requesting user's scope.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkListParams narrows a bookmark listing. Zero values mean defaults
// (limit 10, offset 0, no filters).
type BookmarkListParams struct {
	Limit      int
	Offset     int
	Search     string
	CategoryID *uuid.UUID
}

// BookmarkRepository defines persistence operations for bookmarks. Every
// operation is scoped to the owning user id.
type BookmarkRepository interface {
	// ListByUser returns the user's bookmarks ordered by last update,
	// newest first, with category and tags preloaded.
	ListByUser(ctx context.Context, userID uuid.UUID, params BookmarkListParams) ([]*entity.Bookmark, error)

	// FindByID retrieves a bookmark owned by the user, with category and tags.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Bookmark, error)

	// Create persists a new bookmark and its tag associations.
	Create(ctx context.Context, bookmark *entity.Bookmark) error

	// Update modifies an existing bookmark. When replaceTags is true the tag
	// association set is replaced with bookmark.Tags.
	Update(ctx context.Context, bookmark *entity.Bookmark, replaceTags bool) error

	// Delete removes a bookmark owned by the user.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// TagRepository manages the shared tag vocabulary.
type TagRepository interface {
	// FindOrCreate resolves each name (lowercased, trimmed) to a tag row,
	// creating rows that do not exist yet. Empty names are skipped.
	FindOrCreate(ctx context.Context, names []string) ([]*entity.Tag, error)
}
