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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the user's categories ordered by name with bookmark counts.
func (srv *categoryService) List(ctx context.Context, userID uuid.UUID, input *usecase.ListCategoriesInput) ([]*usecase.CategoryOutput, error) {
	categories, err := srv.categoryRepo.ListByUser(ctx, userID, repository.CategoryListParams{
		Limit:  input.Limit,
		Offset: input.Offset,
		Search: input.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	outputs := make([]*usecase.CategoryOutput, 0, len(categories))
	for _, category := range categories {
		outputs = append(outputs, toCategoryOutput(category))
	}

	return outputs, nil
}

// Get returns one category owned by the user.
func (srv *categoryService) Get(ctx context.Context, userID, id uuid.UUID) (*usecase.CategoryOutput, error) {
	category, err := srv.categoryRepo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	return toCategoryOutput(category), nil
}

// Create adds a category. The duplicate name check and the insert share one
// transaction; the per-user unique index backs them up under races.
func (srv *categoryService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateCategoryInput) (*usecase.CategoryOutput, error) {
	newCategory := &entity.Category{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		_, err := categoryRepo.FindByName(ctx, userID, input.Name)
		if err == nil {
			return domainerrors.ErrCategoryAlreadyExists
		}
		if !errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(err, "failed to check existing category")
		}

		return categoryRepo.Create(ctx, newCategory)
	})

	if err != nil {
		srv.log(ctx).Warn("Category creation failed", slog.Any("userID", userID), slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Category created", slog.Any("userID", userID), slog.Any("categoryID", newCategory.ID))

	return toCategoryOutput(newCategory), nil
}

// Update modifies a category owned by the user. Nil input fields keep their
// current values.
func (srv *categoryService) Update(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateCategoryInput) (*usecase.CategoryOutput, error) {
	var updated *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		category, err := categoryRepo.FindByID(ctx, userID, id)
		if err != nil {
			return err
		}

		if input.Name != nil {
			category.Name = *input.Name
		}
		if input.Description != nil {
			category.Description = *input.Description
		}

		if err := categoryRepo.Update(ctx, category); err != nil {
			return err
		}

		updated, err = categoryRepo.FindByID(ctx, userID, id)

		return err
	})

	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		srv.log(ctx).Warn("Category update failed", slog.Any("userID", userID), slog.Any("categoryID", id), slog.Any("error", err))

		return nil, err
	}

	return toCategoryOutput(updated), nil
}

// Delete removes a category owned by the user. Its bookmarks keep existing
// without a category.
func (srv *categoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Debug("Category deleted", slog.Any("userID", userID), slog.Any("categoryID", id))

	return nil
}

func toCategoryOutput(category *entity.Category) *usecase.CategoryOutput {
	return &usecase.CategoryOutput{
		ID:            category.ID,
		Name:          category.Name,
		Description:   category.Description,
		BookmarkCount: category.BookmarkCount,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}
