package memory

import (
	"context"
	"sync"
	"time"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
)

// TaskRepository is the in-memory task collection. A slice of ids is kept next
// to the map so List returns records in insertion order deterministically.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]*domain.Task
	order []string
}

// NewTaskRepository returns an empty in-memory implementation of TaskRepository.
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[string]*domain.Task)}
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

func (r *TaskRepository) List(_ context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(r.order))
	for _, id := range r.order {
		tasks = append(tasks, *cloneTask(r.tasks[id]))
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(_ context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (r *TaskRepository) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil || task.ID == "" {
		return nil, domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[task.ID]; exists {
		return nil, domain.ErrDuplicateID
	}

	stored := cloneTask(task)
	if stored.Tags == nil {
		stored.Tags = []string{}
	}
	r.tasks[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return cloneTask(stored), nil
}

// Update merges only the provided fields into the stored record. UpdatedAt is
// refreshed on every successful call regardless of which fields were supplied.
func (r *TaskRepository) Update(_ context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.CategoryID != nil {
		task.CategoryID = *patch.CategoryID
	}
	if patch.AssignedUserID != nil {
		task.AssignedUserID = *patch.AssignedUserID
	}
	if patch.DueDate != nil {
		due := *patch.DueDate
		task.DueDate = &due
	}
	if patch.Tags != nil {
		task.Tags = append([]string{}, (*patch.Tags)...)
	}
	if patch.CompletedAt != nil {
		if *patch.CompletedAt == nil {
			task.CompletedAt = nil
		} else {
			completed := **patch.CompletedAt
			task.CompletedAt = &completed
		}
	}
	task.UpdatedAt = time.Now()

	return cloneTask(task), nil
}

func (r *TaskRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remove(id), nil
}

// DeleteMany removes every existing id in ids and returns how many records
// were actually removed. Unknown ids are skipped.
func (r *TaskRepository) DeleteMany(_ context.Context, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for _, id := range ids {
		if r.remove(id) {
			removed++
		}
	}
	return removed, nil
}

// remove expects the write lock to be held.
func (r *TaskRepository) remove(id string) bool {
	if _, ok := r.tasks[id]; !ok {
		return false
	}
	delete(r.tasks, id)
	for i, ordered := range r.order {
		if ordered == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *TaskRepository) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

// cloneTask deep-copies a task so stored records never alias caller memory.
func cloneTask(task *domain.Task) *domain.Task {
	copied := *task
	if task.Tags != nil {
		copied.Tags = append([]string{}, task.Tags...)
	}
	if task.DueDate != nil {
		due := *task.DueDate
		copied.DueDate = &due
	}
	if task.CompletedAt != nil {
		completed := *task.CompletedAt
		copied.CompletedAt = &completed
	}
	return &copied
}
