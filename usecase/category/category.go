package category

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
)

type UseCase struct {
	categories repository.CategoryRepository
	logger     *zap.Logger
}

func New(categories repository.CategoryRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		categories: categories,
		logger:     logger,
	}
}

// CreateInput carries the required category fields.
type CreateInput struct {
	Name        string
	Description string
	Color       string
}

func (uc *UseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return uc.categories.List(ctx)
}

func (uc *UseCase) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return uc.categories.GetByID(ctx, id)
}

func (uc *UseCase) CreateCategory(ctx context.Context, input CreateInput) (*domain.Category, error) {
	if input.Name == "" || input.Description == "" || input.Color == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "name, description and color are required")
	}

	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		CreatedAt:   time.Now(),
	}
	created, err := uc.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("category created", zap.String("category_id", created.ID))
	return created, nil
}

// DeleteCategory removes the category only. Tasks referencing it keep their
// dangling categoryId; the collections are independent.
func (uc *UseCase) DeleteCategory(ctx context.Context, id string) error {
	deleted, err := uc.categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrCategoryNotFound
	}
	return nil
}
