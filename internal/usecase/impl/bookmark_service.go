package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "linkvault/internal/delivery/context"
	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	"linkvault/internal/usecase"
)

// bookmarkService implements the BookmarkUsecase interface.
type bookmarkService struct {
	txManager    repository.TransactionManager
	bookmarkRepo repository.BookmarkRepository
	logger       *slog.Logger
}

// BookmarkServiceParams holds dependencies for bookmarkService, injected by Fx.
type BookmarkServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BookmarkRepo repository.BookmarkRepository
	Logger       *slog.Logger
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(params BookmarkServiceParams) usecase.BookmarkUsecase {
	return &bookmarkService{
		txManager:    params.TxManager,
		bookmarkRepo: params.BookmarkRepo,
		logger:       params.Logger,
	}
}

func (srv *bookmarkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the user's bookmarks, most recently updated first.
func (srv *bookmarkService) List(ctx context.Context, userID uuid.UUID, input *usecase.ListBookmarksInput) ([]*usecase.BookmarkOutput, error) {
	bookmarks, err := srv.bookmarkRepo.ListByUser(ctx, userID, repository.BookmarkListParams{
		Limit:      input.Limit,
		Offset:     input.Offset,
		Search:     input.Search,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	outputs := make([]*usecase.BookmarkOutput, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		outputs = append(outputs, toBookmarkOutput(bookmark))
	}

	return outputs, nil
}

// Get returns one bookmark owned by the user.
func (srv *bookmarkService) Get(ctx context.Context, userID, id uuid.UUID) (*usecase.BookmarkOutput, error) {
	bookmark, err := srv.bookmarkRepo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, domainerrors.ErrBookmarkNotFound
		}

		return nil, errors.Wrap(err, "failed to load bookmark")
	}

	return toBookmarkOutput(bookmark), nil
}

// Create adds a bookmark. The category ownership check, the tag upserts and
// the insert share one transaction.
func (srv *bookmarkService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateBookmarkInput) (*usecase.BookmarkOutput, error) {
	var created *entity.Bookmark

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookmarkRepo := repoFactory.BookmarkRepo()

		if err := srv.checkCategoryOwnership(ctx, repoFactory, userID, input.CategoryID); err != nil {
			return err
		}

		tags, err := repoFactory.TagRepo().FindOrCreate(ctx, input.Tags)
		if err != nil {
			return err
		}

		newBookmark := &entity.Bookmark{
			UserID:      userID,
			CategoryID:  input.CategoryID,
			Title:       input.Title,
			URL:         input.URL,
			Description: input.Description,
			Tags:        tags,
		}

		if err := bookmarkRepo.Create(ctx, newBookmark); err != nil {
			return err
		}

		// Re-read so the output carries the resolved category.
		created, err = bookmarkRepo.FindByID(ctx, userID, newBookmark.ID)

		return err
	})

	if err != nil {
		srv.log(ctx).Warn("Bookmark creation failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Bookmark created", slog.Any("userID", userID), slog.Any("bookmarkID", created.ID))

	return toBookmarkOutput(created), nil
}

// Update modifies a bookmark owned by the user. Nil input fields keep their
// current values; a non-nil Tags slice replaces the tag set.
func (srv *bookmarkService) Update(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateBookmarkInput) (*usecase.BookmarkOutput, error) {
	var updated *entity.Bookmark

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookmarkRepo := repoFactory.BookmarkRepo()

		bookmark, err := bookmarkRepo.FindByID(ctx, userID, id)
		if err != nil {
			return err
		}

		if input.Title != nil {
			bookmark.Title = *input.Title
		}
		if input.URL != nil {
			bookmark.URL = *input.URL
		}
		if input.Description != nil {
			bookmark.Description = *input.Description
		}
		if input.CategoryID != nil {
			if err := srv.checkCategoryOwnership(ctx, repoFactory, userID, input.CategoryID); err != nil {
				return err
			}
			bookmark.CategoryID = input.CategoryID
		}

		replaceTags := input.Tags != nil
		if replaceTags {
			tags, err := repoFactory.TagRepo().FindOrCreate(ctx, input.Tags)
			if err != nil {
				return err
			}
			bookmark.Tags = tags
		}

		if err := bookmarkRepo.Update(ctx, bookmark, replaceTags); err != nil {
			return err
		}

		updated, err = bookmarkRepo.FindByID(ctx, userID, id)

		return err
	})

	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, domainerrors.ErrBookmarkNotFound
		}

		srv.log(ctx).Warn("Bookmark update failed", slog.Any("userID", userID), slog.Any("bookmarkID", id), slog.Any("error", err))

		return nil, err
	}

	return toBookmarkOutput(updated), nil
}

// Delete removes a bookmark owned by the user.
func (srv *bookmarkService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.bookmarkRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return domainerrors.ErrBookmarkNotFound
		}

		return errors.Wrap(err, "failed to delete bookmark")
	}

	srv.log(ctx).Debug("Bookmark deleted", slog.Any("userID", userID), slog.Any("bookmarkID", id))

	return nil
}

// checkCategoryOwnership verifies the target category exists and belongs to
// the user. A nil id means "no category" and always passes.
func (srv *bookmarkService) checkCategoryOwnership(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}

	if _, err := repoFactory.CategoryRepo().FindByID(ctx, userID, *categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to check category ownership")
	}

	return nil
}

func toBookmarkOutput(bookmark *entity.Bookmark) *usecase.BookmarkOutput {
	output := &usecase.BookmarkOutput{
		ID:          bookmark.ID,
		Title:       bookmark.Title,
		URL:         bookmark.URL,
		Description: bookmark.Description,
		Tags:        make([]string, 0, len(bookmark.Tags)),
		CreatedAt:   bookmark.CreatedAt,
		UpdatedAt:   bookmark.UpdatedAt,
	}

	if bookmark.Category != nil {
		output.Category = &usecase.BookmarkCategoryOutput{
			ID:   bookmark.Category.ID,
			Name: bookmark.Category.Name,
		}
	}

	for _, tag := range bookmark.Tags {
		output.Tags = append(output.Tags, tag.Name)
	}

	return output
}
