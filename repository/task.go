package repository

import (
	"context"

	"github.com/taskboard/backend/domain"
)

// TaskFilter describes a list query. All filter fields are optional and
// combined with logical AND. Page and Limit address the result window after
// filtering and sorting.
type TaskFilter struct {
	Status         domain.Status
	Priority       domain.Priority
	CategoryID     string
	AssignedUserID string
	Search         string
	Page           int
	Limit          int
}

type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteMany(ctx context.Context, ids []string) (int, error)
}
