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

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCategoryService(CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		Logger:       logger,
	})

	return categoryServiceFixtures{
		service:      service,
		txManager:    txManager,
		categoryRepo: categoryRepo,
	}
}

func TestCategoryService_List_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ListCategoriesInput{Limit: 10, Search: "work"}

	stored := []*entity.Category{
		{ID: uuid.New(), UserID: userID, Name: "Work", BookmarkCount: 3},
		{ID: uuid.New(), UserID: userID, Name: "Work Travel", BookmarkCount: 0},
	}

	fx.categoryRepo.EXPECT().
		ListByUser(ctx, userID, repository.CategoryListParams{Limit: 10, Search: "work"}).
		Return(stored, nil)

	outputs, err := fx.service.List(ctx, userID, input)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "Work", outputs[0].Name)
	assert.Equal(t, 3, outputs[0].BookmarkCount)
	assert.Equal(t, "Work Travel", outputs[1].Name)
}

func TestCategoryService_Get_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		FindByID(ctx, userID, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	output, err := fx.service.Get(ctx, userID, categoryID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryService_Create_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	input := &usecase.CreateCategoryInput{Name: "Reading", Description: "Long reads"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().
				FindByName(ctx, userID, input.Name).
				Return(nil, repository.ErrCategoryNotFound)

			mockCategoryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Category")).
				Run(func(ctx context.Context, category *entity.Category) {
					assert.Equal(t, userID, category.UserID)
					category.ID = categoryID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Create(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, categoryID, output.ID)
	assert.Equal(t, input.Name, output.Name)
	assert.Equal(t, input.Description, output.Description)
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateCategoryInput{Name: "Reading"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().
				FindByName(ctx, userID, input.Name).
				Return(&entity.Category{ID: uuid.New(), UserID: userID, Name: input.Name}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrCategoryAlreadyExists)

	output, err := fx.service.Create(ctx, userID, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryAlreadyExists))
}

func TestCategoryService_Update_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	newName := "Renamed"
	input := &usecase.UpdateCategoryInput{Name: &newName}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			current := &entity.Category{
				ID:          categoryID,
				UserID:      userID,
				Name:        "Old Name",
				Description: "keep me",
			}
			mockCategoryRepo.EXPECT().
				FindByID(ctx, userID, categoryID).
				Return(current, nil).
				Once()

			mockCategoryRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Category")).
				Run(func(ctx context.Context, category *entity.Category) {
					assert.Equal(t, newName, category.Name)
					assert.Equal(t, "keep me", category.Description)
				}).
				Return(nil)

			mockCategoryRepo.EXPECT().
				FindByID(ctx, userID, categoryID).
				Return(&entity.Category{
					ID:          categoryID,
					UserID:      userID,
					Name:        newName,
					Description: "keep me",
				}, nil).
				Once()

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Update(ctx, userID, categoryID, input)

	require.NoError(t, err)
	assert.Equal(t, newName, output.Name)
	assert.Equal(t, "keep me", output.Description)
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	newName := "Renamed"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().
				FindByID(ctx, userID, categoryID).
				Return(nil, repository.ErrCategoryNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrCategoryNotFound)

	output, err := fx.service.Update(ctx, userID, categoryID, &usecase.UpdateCategoryInput{Name: &newName})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryService_Delete_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().Delete(ctx, userID, categoryID).Return(nil)

	err := fx.service.Delete(ctx, userID, categoryID)

	assert.NoError(t, err)
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		Delete(ctx, userID, categoryID).
		Return(repository.ErrCategoryNotFound)

	err := fx.service.Delete(ctx, userID, categoryID)

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}
