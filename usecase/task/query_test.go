package task

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
)

func snapshotTask(i int, status domain.Status, priority domain.Priority) domain.Task {
	return domain.Task{
		ID:         fmt.Sprintf("task-%02d", i),
		Title:      fmt.Sprintf("Task %d", i),
		Status:     status,
		Priority:   priority,
		CategoryID: "cat-1",
		Tags:       []string{},
		CreatedAt:  time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC),
	}
}

func TestApplyQuery_EqualityFilters(t *testing.T) {
	snapshot := []domain.Task{
		snapshotTask(0, domain.StatusPending, domain.PriorityLow),
		snapshotTask(1, domain.StatusCompleted, domain.PriorityHigh),
		snapshotTask(2, domain.StatusCompleted, domain.PriorityLow),
	}
	snapshot[2].CategoryID = "cat-2"
	snapshot[2].AssignedUserID = "user-1"

	tests := []struct {
		name    string
		filter  repository.TaskFilter
		wantIDs []string
	}{
		{
			name:    "status only",
			filter:  repository.TaskFilter{Status: domain.StatusCompleted},
			wantIDs: []string{"task-02", "task-01"},
		},
		{
			name:    "priority only",
			filter:  repository.TaskFilter{Priority: domain.PriorityLow},
			wantIDs: []string{"task-02", "task-00"},
		},
		{
			name:    "status and priority compose with AND",
			filter:  repository.TaskFilter{Status: domain.StatusCompleted, Priority: domain.PriorityLow},
			wantIDs: []string{"task-02"},
		},
		{
			name:    "category",
			filter:  repository.TaskFilter{CategoryID: "cat-2"},
			wantIDs: []string{"task-02"},
		},
		{
			name:    "assigned user",
			filter:  repository.TaskFilter{AssignedUserID: "user-1"},
			wantIDs: []string{"task-02"},
		},
		{
			name:    "no filter returns everything sorted",
			filter:  repository.TaskFilter{},
			wantIDs: []string{"task-02", "task-01", "task-00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, meta := applyQuery(snapshot, tt.filter)
			ids := make([]string, 0, len(page))
			for _, task := range page {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), meta.Total)
		})
	}
}

func TestApplyQuery_SearchMatchesTitleDescriptionAndTags(t *testing.T) {
	byTitle := snapshotTask(0, domain.StatusPending, domain.PriorityLow)
	byTitle.Title = "Quarterly REPORT"

	byDescription := snapshotTask(1, domain.StatusPending, domain.PriorityLow)
	byDescription.Description = "prepare the report deck"

	byTag := snapshotTask(2, domain.StatusPending, domain.PriorityLow)
	byTag.Tags = []string{"reporting"}

	noMatch := snapshotTask(3, domain.StatusPending, domain.PriorityLow)

	page, meta := applyQuery([]domain.Task{byTitle, byDescription, byTag, noMatch},
		repository.TaskFilter{Search: "report"})

	require.Equal(t, 3, meta.Total)
	ids := make([]string, 0, len(page))
	for _, task := range page {
		ids = append(ids, task.ID)
	}
	assert.ElementsMatch(t, []string{"task-00", "task-01", "task-02"}, ids)
}

func TestApplyQuery_SearchTagOnly(t *testing.T) {
	task := snapshotTask(0, domain.StatusPending, domain.PriorityLow)
	task.Title = "unrelated"
	task.Description = "unrelated"
	task.Tags = []string{"invoice"}

	page, _ := applyQuery([]domain.Task{task}, repository.TaskFilter{Search: "INVOICE"})
	require.Len(t, page, 1)
}

func TestApplyQuery_SortsByCreatedDescending(t *testing.T) {
	snapshot := []domain.Task{
		snapshotTask(0, domain.StatusPending, domain.PriorityLow),
		snapshotTask(2, domain.StatusPending, domain.PriorityLow),
		snapshotTask(1, domain.StatusPending, domain.PriorityLow),
	}

	page, _ := applyQuery(snapshot, repository.TaskFilter{})
	require.Len(t, page, 3)
	assert.Equal(t, "task-02", page[0].ID)
	assert.Equal(t, "task-01", page[1].ID)
	assert.Equal(t, "task-00", page[2].ID)
}

func TestApplyQuery_Pagination(t *testing.T) {
	snapshot := make([]domain.Task, 0, 5)
	for i := 0; i < 5; i++ {
		snapshot = append(snapshot, snapshotTask(i, domain.StatusPending, domain.PriorityLow))
	}

	// Sorted descending: task-04, task-03, task-02, task-01, task-00.
	// Page 2 with limit 2 covers zero-based indices 2 and 3.
	page, meta := applyQuery(snapshot, repository.TaskFilter{Page: 2, Limit: 2})
	require.Len(t, page, 2)
	assert.Equal(t, "task-02", page[0].ID)
	assert.Equal(t, "task-01", page[1].ID)
	assert.Equal(t, Pagination{Total: 5, Page: 2, Limit: 2, TotalPages: 3}, meta)
}

func TestApplyQuery_PageBeyondEnd(t *testing.T) {
	snapshot := []domain.Task{snapshotTask(0, domain.StatusPending, domain.PriorityLow)}

	page, meta := applyQuery(snapshot, repository.TaskFilter{Page: 9, Limit: 10})
	assert.Empty(t, page)
	assert.Equal(t, 1, meta.Total)
	assert.Equal(t, 9, meta.Page)
}

func TestApplyQuery_ClampsDegenerateWindow(t *testing.T) {
	snapshot := []domain.Task{snapshotTask(0, domain.StatusPending, domain.PriorityLow)}

	page, meta := applyQuery(snapshot, repository.TaskFilter{Page: -3, Limit: 0})
	require.Len(t, page, 1)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, defaultLimit, meta.Limit)

	_, meta = applyQuery(snapshot, repository.TaskFilter{Limit: 5000})
	assert.Equal(t, maxLimit, meta.Limit)
}

func TestApplyQuery_EmptySnapshot(t *testing.T) {
	page, meta := applyQuery(nil, repository.TaskFilter{})
	assert.Empty(t, page)
	assert.Equal(t, Pagination{Total: 0, Page: 1, Limit: defaultLimit, TotalPages: 0}, meta)
}
