package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups a user's bookmarks. Names are unique per user, not globally.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	// BookmarkCount is populated on list queries only; it is not a stored column.
	BookmarkCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
