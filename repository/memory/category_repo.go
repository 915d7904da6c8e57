package memory

import (
	"context"
	"sync"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
)

// CategoryRepository is the in-memory category collection.
type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
	order      []string
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: make(map[string]domain.Category)}
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

func (r *CategoryRepository) List(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]domain.Category, 0, len(r.order))
	for _, id := range r.order {
		categories = append(categories, r.categories[id])
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &category, nil
}

func (r *CategoryRepository) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if category == nil || category.ID == "" {
		return nil, domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[category.ID]; exists {
		return nil, domain.ErrDuplicateID
	}
	r.categories[category.ID] = *category
	r.order = append(r.order, category.ID)

	stored := r.categories[category.ID]
	return &stored, nil
}

func (r *CategoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	delete(r.categories, id)
	for i, ordered := range r.order {
		if ordered == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *CategoryRepository) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.categories)
}
