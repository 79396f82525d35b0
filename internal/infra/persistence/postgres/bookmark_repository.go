package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/infra/persistence/model"
)

// bookmarkRepository implements the domain's BookmarkRepository interface using GORM.
type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository is the constructor for bookmarkRepository.
func NewBookmarkRepository(db *gorm.DB) repository.BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// ListByUser returns the user's bookmarks ordered by last update, newest
// first, with category and tags preloaded.
func (repo *bookmarkRepository) ListByUser(ctx context.Context, userID uuid.UUID, params repository.BookmarkListParams) ([]*entity.Bookmark, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset)

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	var bookmarkMs []*model.BookmarkModel
	if err := query.Find(&bookmarkMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	bookmarks := make([]*entity.Bookmark, 0, len(bookmarkMs))
	for _, bookmarkM := range bookmarkMs {
		bookmarks = append(bookmarks, toBookmarkDomain(bookmarkM))
	}

	return bookmarks, nil
}

// FindByID retrieves a bookmark owned by the user, with category and tags.
func (repo *bookmarkRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Bookmark, error) {
	var bookmarkM model.BookmarkModel
	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Where("id = ? AND user_id = ?", id, userID).
		First(&bookmarkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookmarkNotFound
		}

		return nil, errors.Wrap(err, "failed to find bookmark by id")
	}

	return toBookmarkDomain(&bookmarkM), nil
}

// Create persists a new bookmark. Tags must already exist; only the join rows
// are written here.
func (repo *bookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	// Tag rows are resolved by TagRepository beforehand, so skip upserting them.
	if err := repo.db.WithContext(ctx).
		Omit("Tags.*").
		Create(bookmarkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bookmark")
	}

	bookmark.ID = bookmarkM.ID
	bookmark.CreatedAt = bookmarkM.CreatedAt
	bookmark.UpdatedAt = bookmarkM.UpdatedAt

	return nil
}

// Update modifies an existing bookmark owned by the user. When replaceTags is
// true the tag association set is replaced with bookmark.Tags.
func (repo *bookmarkRepository) Update(ctx context.Context, bookmark *entity.Bookmark, replaceTags bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookmarkModel{}).
		Where("id = ? AND user_id = ?", bookmark.ID, bookmark.UserID).
		Updates(map[string]any{
			"title":       bookmark.Title,
			"url":         bookmark.URL,
			"description": bookmark.Description,
			"category_id": bookmark.CategoryID,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update bookmark")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookmarkNotFound
	}

	if replaceTags {
		bookmarkM := fromBookmarkDomain(bookmark)
		tagMs := make([]*model.TagModel, 0, len(bookmark.Tags))
		for _, tag := range bookmark.Tags {
			tagMs = append(tagMs, fromTagDomain(tag))
		}

		if err := repo.db.WithContext(ctx).
			Model(bookmarkM).
			Association("Tags").
			Replace(tagMs); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to replace bookmark tags")
		}
	}

	return nil
}

// Delete removes a bookmark owned by the user along with its tag join rows.
func (repo *bookmarkRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Select("Tags").
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.BookmarkModel{ID: id})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete bookmark")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookmarkNotFound
	}

	return nil
}
