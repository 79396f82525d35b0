package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"linkvault/internal/domain/entity"
	domainerrors "linkvault/internal/domain/errors"
	"linkvault/internal/domain/repository"
	mockRepo "linkvault/internal/mocks/repository"
	"linkvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookmarkServiceFixtures holds all test dependencies for bookmark service tests.
type bookmarkServiceFixtures struct {
	service      usecase.BookmarkUsecase
	txManager    *mockRepo.MockTransactionManager
	bookmarkRepo *mockRepo.MockBookmarkRepository
}

func createTestBookmarkService(t *testing.T) bookmarkServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	bookmarkRepo := mockRepo.NewMockBookmarkRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewBookmarkService(BookmarkServiceParams{
		TxManager:    txManager,
		BookmarkRepo: bookmarkRepo,
		Logger:       logger,
	})

	return bookmarkServiceFixtures{
		service:      service,
		txManager:    txManager,
		bookmarkRepo: bookmarkRepo,
	}
}

func TestBookmarkService_List_Success(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ListBookmarksInput{Limit: 20, Search: "go"}

	stored := []*entity.Bookmark{
		{
			ID:     uuid.New(),
			UserID: userID,
			Title:  "The Go Blog",
			URL:    "https://go.dev/blog",
			Tags:   []*entity.Tag{{ID: uuid.New(), Name: "go"}},
			Category: &entity.Category{
				ID:   uuid.New(),
				Name: "Programming",
			},
		},
		{
			ID:     uuid.New(),
			UserID: userID,
			Title:  "Go Proverbs",
			URL:    "https://go-proverbs.github.io",
		},
	}

	fx.bookmarkRepo.EXPECT().
		ListByUser(ctx, userID, repository.BookmarkListParams{Limit: 20, Search: "go"}).
		Return(stored, nil)

	outputs, err := fx.service.List(ctx, userID, input)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "The Go Blog", outputs[0].Title)
	assert.Equal(t, []string{"go"}, outputs[0].Tags)
	require.NotNil(t, outputs[0].Category)
	assert.Equal(t, "Programming", outputs[0].Category.Name)
	assert.Nil(t, outputs[1].Category)
	assert.Empty(t, outputs[1].Tags)
}

func TestBookmarkService_Get_NotFound(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookmarkID := uuid.New()

	fx.bookmarkRepo.EXPECT().
		FindByID(ctx, userID, bookmarkID).
		Return(nil, repository.ErrBookmarkNotFound)

	output, err := fx.service.Get(ctx, userID, bookmarkID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrBookmarkNotFound))
}

func TestBookmarkService_Create_Success(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	bookmarkID := uuid.New()
	input := &usecase.CreateBookmarkInput{
		Title:      "The Go Blog",
		URL:        "https://go.dev/blog",
		CategoryID: &categoryID,
		Tags:       []string{"Go", "reading"},
	}

	resolvedTags := []*entity.Tag{
		{ID: uuid.New(), Name: "go"},
		{ID: uuid.New(), Name: "reading"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookmarkRepo := mockRepo.NewMockBookmarkRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
			mockTagRepo := mockRepo.NewMockTagRepository(t)

			mockFactory.EXPECT().BookmarkRepo().Return(mockBookmarkRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockFactory.EXPECT().TagRepo().Return(mockTagRepo)

			mockCategoryRepo.EXPECT().
				FindByID(ctx, userID, categoryID).
				Return(&entity.Category{ID: categoryID, UserID: userID, Name: "Programming"}, nil)

			mockTagRepo.EXPECT().FindOrCreate(ctx, input.Tags).Return(resolvedTags, nil)

			mockBookmarkRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Bookmark")).
				Run(func(ctx context.Context, bookmark *entity.Bookmark) {
					assert.Equal(t, userID, bookmark.UserID)
					assert.Equal(t, resolvedTags, bookmark.Tags)
					bookmark.ID = bookmarkID
				}).
				Return(nil)

			mockBookmarkRepo.EXPECT().
				FindByID(ctx, userID, bookmarkID).
				Return(&entity.Bookmark{
					ID:         bookmarkID,
					UserID:     userID,
					CategoryID: &categoryID,
					Title:      input.Title,
					URL:        input.URL,
					Category:   &entity.Category{ID: categoryID, Name: "Programming"},
					Tags:       resolvedTags,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Create(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, bookmarkID, output.ID)
	assert.Equal(t, []string{"go", "reading"}, output.Tags)
	require.NotNil(t, output.Category)
	assert.Equal(t, categoryID, output.Category.ID)
}

func TestBookmarkService_Create_CategoryNotOwned(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	input := &usecase.CreateBookmarkInput{
		Title:      "The Go Blog",
		URL:        "https://go.dev/blog",
		CategoryID: &categoryID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookmarkRepo := mockRepo.NewMockBookmarkRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().BookmarkRepo().Return(mockBookmarkRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			// Another user's category id behaves exactly like a missing one.
			mockCategoryRepo.EXPECT().
				FindByID(ctx, userID, categoryID).
				Return(nil, repository.ErrCategoryNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCategoryNotFound)

	output, err := fx.service.Create(ctx, userID, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestBookmarkService_Update_ReplacesTagsOnlyWhenProvided(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookmarkID := uuid.New()
	newTitle := "Updated Title"
	input := &usecase.UpdateBookmarkInput{Title: &newTitle}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookmarkRepo := mockRepo.NewMockBookmarkRepository(t)

			mockFactory.EXPECT().BookmarkRepo().Return(mockBookmarkRepo)

			current := &entity.Bookmark{
				ID:     bookmarkID,
				UserID: userID,
				Title:  "Old Title",
				URL:    "https://example.com",
				Tags:   []*entity.Tag{{ID: uuid.New(), Name: "keep"}},
			}
			mockBookmarkRepo.EXPECT().
				FindByID(ctx, userID, bookmarkID).
				Return(current, nil).
				Once()

			// Tags were not provided, so the tag set must not be replaced.
			mockBookmarkRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Bookmark"), false).
				Run(func(ctx context.Context, bookmark *entity.Bookmark, replaceTags bool) {
					assert.Equal(t, newTitle, bookmark.Title)
				}).
				Return(nil)

			mockBookmarkRepo.EXPECT().
				FindByID(ctx, userID, bookmarkID).
				Return(&entity.Bookmark{
					ID:     bookmarkID,
					UserID: userID,
					Title:  newTitle,
					URL:    "https://example.com",
					Tags:   []*entity.Tag{{ID: uuid.New(), Name: "keep"}},
				}, nil).
				Once()

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Update(ctx, userID, bookmarkID, input)

	require.NoError(t, err)
	assert.Equal(t, newTitle, output.Title)
	assert.Equal(t, []string{"keep"}, output.Tags)
}

func TestBookmarkService_Update_WithNewTags(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookmarkID := uuid.New()
	input := &usecase.UpdateBookmarkInput{Tags: []string{"fresh"}}

	resolvedTags := []*entity.Tag{{ID: uuid.New(), Name: "fresh"}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookmarkRepo := mockRepo.NewMockBookmarkRepository(t)
			mockTagRepo := mockRepo.NewMockTagRepository(t)

			mockFactory.EXPECT().BookmarkRepo().Return(mockBookmarkRepo)
			mockFactory.EXPECT().TagRepo().Return(mockTagRepo)

			mockBookmarkRepo.EXPECT().
				FindByID(ctx, userID, bookmarkID).
				Return(&entity.Bookmark{
					ID:     bookmarkID,
					UserID: userID,
					Title:  "Title",
					URL:    "https://example.com",
					Tags:   []*entity.Tag{{ID: uuid.New(), Name: "stale"}},
				}, nil).
				Once()

			mockTagRepo.EXPECT().FindOrCreate(ctx, []string{"fresh"}).Return(resolvedTags, nil)

			mockBookmarkRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Bookmark"), true).
				Run(func(ctx context.Context, bookmark *entity.Bookmark, replaceTags bool) {
					assert.Equal(t, resolvedTags, bookmark.Tags)
				}).
				Return(nil)

			mockBookmarkRepo.EXPECT().
				FindByID(ctx, userID, bookmarkID).
				Return(&entity.Bookmark{
					ID:     bookmarkID,
					UserID: userID,
					Title:  "Title",
					URL:    "https://example.com",
					Tags:   resolvedTags,
				}, nil).
				Once()

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Update(ctx, userID, bookmarkID, input)

	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, output.Tags)
}

func TestBookmarkService_Update_NotFound(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookmarkID := uuid.New()
	newTitle := "Updated Title"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookmarkRepo := mockRepo.NewMockBookmarkRepository(t)

			mockFactory.EXPECT().BookmarkRepo().Return(mockBookmarkRepo)

			mockBookmarkRepo.EXPECT().
				FindByID(ctx, userID, bookmarkID).
				Return(nil, repository.ErrBookmarkNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrBookmarkNotFound)

	output, err := fx.service.Update(ctx, userID, bookmarkID, &usecase.UpdateBookmarkInput{Title: &newTitle})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrBookmarkNotFound))
}

func TestBookmarkService_Delete_Success(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookmarkID := uuid.New()

	fx.bookmarkRepo.EXPECT().Delete(ctx, userID, bookmarkID).Return(nil)

	err := fx.service.Delete(ctx, userID, bookmarkID)

	assert.NoError(t, err)
}

func TestBookmarkService_Delete_NotFound(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookmarkID := uuid.New()

	fx.bookmarkRepo.EXPECT().
		Delete(ctx, userID, bookmarkID).
		Return(repository.ErrBookmarkNotFound)

	err := fx.service.Delete(ctx, userID, bookmarkID)

	assert.True(t, errors.Is(err, domainerrors.ErrBookmarkNotFound))
}
