package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/backend/domain"
)

func newTask(title string) *domain.Task {
	now := time.Now()
	return &domain.Task{
		ID:         uuid.NewString(),
		Title:      title,
		Status:     domain.StatusPending,
		Priority:   domain.PriorityMedium,
		CategoryID: "cat-1",
		Tags:       []string{"a"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestTaskRepository_CreateAndGet(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	task := newTask("first")
	created, err := repo.Create(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, task.ID, created.ID)

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, []string{"a"}, got.Tags)
}

func TestTaskRepository_CreateDuplicateID(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	task := newTask("first")
	_, err := repo.Create(ctx, task)
	require.NoError(t, err)

	_, err = repo.Create(ctx, task)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
}

func TestTaskRepository_GetMissing(t *testing.T) {
	repo := NewTaskRepository()

	_, err := repo.GetByID(context.Background(), "nope")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestTaskRepository_StoredRecordsDoNotAliasCallerMemory(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	task := newTask("isolated")
	created, err := repo.Create(ctx, task)
	require.NoError(t, err)

	// Mutating both the input and the returned copy must not leak into
	// what the store holds.
	task.Title = "mutated input"
	task.Tags[0] = "mutated"
	created.Title = "mutated output"

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "isolated", got.Title)
	assert.Equal(t, []string{"a"}, got.Tags)
}

func TestTaskRepository_UpdateMergesOnlyProvidedFields(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	task := newTask("original")
	task.Description = "keep me"
	_, err := repo.Create(ctx, task)
	require.NoError(t, err)

	before, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)

	newTitle := "renamed"
	updated, err := repo.Update(ctx, task.ID, domain.TaskPatch{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	assert.Equal(t, before.Status, updated.Status)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(before.UpdatedAt))
}

func TestTaskRepository_UpdateRefreshesUpdatedAtWithEmptyPatch(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	task := newTask("untouched")
	task.UpdatedAt = time.Now().Add(-time.Hour)
	_, err := repo.Create(ctx, task)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, task.ID, domain.TaskPatch{})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(task.UpdatedAt))
}

func TestTaskRepository_UpdateMissing(t *testing.T) {
	repo := NewTaskRepository()

	_, err := repo.Update(context.Background(), "nope", domain.TaskPatch{})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestTaskRepository_UpdateClearsCompletedAt(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	task := newTask("done")
	completed := time.Now()
	task.Status = domain.StatusCompleted
	task.CompletedAt = &completed
	_, err := repo.Create(ctx, task)
	require.NoError(t, err)

	var cleared *time.Time
	updated, err := repo.Update(ctx, task.ID, domain.TaskPatch{CompletedAt: &cleared})
	require.NoError(t, err)
	assert.Nil(t, updated.CompletedAt)
}

func TestTaskRepository_DeleteIsTrueExactlyOnce(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	task := newTask("doomed")
	_, err := repo.Create(ctx, task)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTaskRepository_DeleteMany(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	first := newTask("one")
	second := newTask("two")
	for _, task := range []*domain.Task{first, second} {
		_, err := repo.Create(ctx, task)
		require.NoError(t, err)
	}

	removed, err := repo.DeleteMany(ctx, []string{first.ID, "unknown", second.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	titles := []string{"one", "two", "three"}
	for _, title := range titles {
		_, err := repo.Create(ctx, newTask(title))
		require.NoError(t, err)
	}

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i, title := range titles {
		assert.Equal(t, title, tasks[i].Title)
	}
}
