package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is a saved link owned by a single user, optionally filed under one
// of that user's categories and labelled with free-form tags.
type Bookmark struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  *uuid.UUID // nil when the bookmark is uncategorized.
	Title       string
	URL         string
	Description string
	Category    *Category
	Tags        []*Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tag is a free-form label shared across users. Names are stored lowercased
// and trimmed so "Go", " go " and "go" all resolve to the same tag.
type Tag struct {
	ID   uuid.UUID
	Name string
}
