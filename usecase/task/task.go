package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// CreateInput carries the fields a client may supply when creating a task.
// Status and Priority fall back to PENDING / MEDIUM when empty.
type CreateInput struct {
	Title          string
	Description    string
	Status         domain.Status
	Priority       domain.Priority
	CategoryID     string
	AssignedUserID string
	DueDate        *time.Time
	Tags           []string
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	Title          *string
	Description    *string
	Status         *domain.Status
	Priority       *domain.Priority
	CategoryID     *string
	AssignedUserID *string
	DueDate        *time.Time
	Tags           *[]string
}

// ListTasks returns one page of the filtered, created-descending sorted task
// collection together with pagination metadata.
func (uc *UseCase) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, Pagination, error) {
	snapshot, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, Pagination{}, err
	}
	page, meta := applyQuery(snapshot, filter)
	return page, meta, nil
}

// ListByStatus returns every task with the given status, unpaginated.
func (uc *UseCase) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Task, error) {
	if !status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown status")
	}
	snapshot, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Task, 0)
	for _, t := range snapshot {
		if t.Status == status {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// ListByPriority returns every task with the given priority, unpaginated.
func (uc *UseCase) ListByPriority(ctx context.Context, priority domain.Priority) ([]domain.Task, error) {
	if !priority.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown priority")
	}
	snapshot, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Task, 0)
	for _, t := range snapshot {
		if t.Priority == priority {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (uc *UseCase) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

func (uc *UseCase) CreateTask(ctx context.Context, input CreateInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "title is required")
	}
	if input.Status == "" {
		input.Status = domain.StatusPending
	}
	if !input.Status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown status")
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown priority")
	}

	now := time.Now()
	task := &domain.Task{
		ID:             uuid.NewString(),
		Title:          input.Title,
		Description:    input.Description,
		Status:         input.Status,
		Priority:       input.Priority,
		CategoryID:     input.CategoryID,
		AssignedUserID: input.AssignedUserID,
		DueDate:        input.DueDate,
		Tags:           input.Tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}
	if task.Status == domain.StatusCompleted {
		task.CompletedAt = &now
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("task created", zap.String("task_id", created.ID))
	return created, nil
}

func (uc *UseCase) UpdateTask(ctx context.Context, id string, input UpdateInput) (*domain.Task, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown status")
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown priority")
	}

	patch := domain.TaskPatch{
		Title:          input.Title,
		Description:    input.Description,
		Status:         input.Status,
		Priority:       input.Priority,
		CategoryID:     input.CategoryID,
		AssignedUserID: input.AssignedUserID,
		DueDate:        input.DueDate,
		Tags:           input.Tags,
	}

	// completedAt mirrors the status: set on a transition to COMPLETED,
	// cleared on a transition away from it.
	if input.Status != nil {
		if *input.Status == domain.StatusCompleted {
			now := time.Now()
			ptr := &now
			patch.CompletedAt = &ptr
		} else {
			var cleared *time.Time
			patch.CompletedAt = &cleared
		}
	}

	return uc.tasks.Update(ctx, id, patch)
}

// UpdateStatus is the single-field status transition used by the PATCH route.
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error) {
	return uc.UpdateTask(ctx, id, UpdateInput{Status: &status})
}

func (uc *UseCase) DeleteTask(ctx context.Context, id string) error {
	deleted, err := uc.tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTaskNotFound
	}
	return nil
}

// BulkDelete removes every task named in ids and returns how many existed.
func (uc *UseCase) BulkDelete(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, domain.NewError(domain.ErrCodeInvalid, "ids must be a non-empty array")
	}
	removed, err := uc.tasks.DeleteMany(ctx, ids)
	if err != nil {
		return 0, err
	}
	uc.logger.Info("tasks bulk deleted", zap.Int("requested", len(ids)), zap.Int("removed", removed))
	return removed, nil
}
