package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository/memory"
)

func newUseCase() *UseCase {
	return New(memory.NewTaskRepository(), nil)
}

func TestCreateTask_Defaults(t *testing.T) {
	uc := newUseCase()

	created, err := uc.CreateTask(context.Background(), CreateInput{Title: "Test"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	assert.Equal(t, []string{}, created.Tags)
	assert.Nil(t, created.CompletedAt)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateTask_Validation(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateInput
	}{
		{name: "missing title", input: CreateInput{}},
		{name: "unknown status", input: CreateInput{Title: "x", Status: "DONE"}},
		{name: "unknown priority", input: CreateInput{Title: "x", Priority: "EXTREME"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateTask(ctx, tt.input)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
		})
	}
}

func TestCreateTask_DistinctIDs(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		created, err := uc.CreateTask(ctx, CreateInput{Title: "same title"})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.False(t, seen[created.ID])
		seen[created.ID] = true
	}
}

func TestUpdateStatus_CompletedTransitions(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	created, err := uc.CreateTask(ctx, CreateInput{Title: "lifecycle"})
	require.NoError(t, err)

	completed, err := uc.UpdateStatus(ctx, created.ID, domain.StatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, domain.StatusCompleted, completed.Status)

	// Regressing away from COMPLETED clears the completion timestamp.
	reopened, err := uc.UpdateStatus(ctx, created.ID, domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, reopened.Status)
	assert.Nil(t, reopened.CompletedAt)
}

func TestUpdateTask_PartialLeavesOtherFieldsAlone(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	created, err := uc.CreateTask(ctx, CreateInput{
		Title:       "original",
		Description: "description",
		Priority:    domain.PriorityHigh,
		Tags:        []string{"keep"},
	})
	require.NoError(t, err)

	title := "renamed"
	updated, err := uc.UpdateTask(ctx, created.ID, UpdateInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "description", updated.Description)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
	assert.Equal(t, []string{"keep"}, updated.Tags)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateTask_InvalidEnums(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	created, err := uc.CreateTask(ctx, CreateInput{Title: "x"})
	require.NoError(t, err)

	badStatus := domain.Status("NOPE")
	_, err = uc.UpdateTask(ctx, created.ID, UpdateInput{Status: &badStatus})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	badPriority := domain.Priority("NOPE")
	_, err = uc.UpdateTask(ctx, created.ID, UpdateInput{Priority: &badPriority})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestUpdateTask_NotFound(t *testing.T) {
	uc := newUseCase()

	_, err := uc.UpdateTask(context.Background(), "missing", UpdateInput{})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestDeleteTask(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	created, err := uc.CreateTask(ctx, CreateInput{Title: "doomed"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTask(ctx, created.ID))

	err = uc.DeleteTask(ctx, created.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestBulkDelete(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		created, err := uc.CreateTask(ctx, CreateInput{Title: "bulk"})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	removed, err := uc.BulkDelete(ctx, append(ids[:2:2], "unknown"))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = uc.BulkDelete(ctx, nil)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestListByStatusAndPriority(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	_, err := uc.CreateTask(ctx, CreateInput{Title: "a", Status: domain.StatusCompleted})
	require.NoError(t, err)
	_, err = uc.CreateTask(ctx, CreateInput{Title: "b", Priority: domain.PriorityUrgent})
	require.NoError(t, err)

	completed, err := uc.ListByStatus(ctx, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Len(t, completed, 1)

	urgent, err := uc.ListByPriority(ctx, domain.PriorityUrgent)
	require.NoError(t, err)
	assert.Len(t, urgent, 1)

	_, err = uc.ListByStatus(ctx, "WHATEVER")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	_, err = uc.ListByPriority(ctx, "WHATEVER")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}
