package domain

import "time"

// Status enumerates the lifecycle states of a task.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Priority enumerates task urgency levels.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task represents a unit of work grouped by category and optionally assigned to a user.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         Status     `json:"status"`
	Priority       Priority   `json:"priority"`
	CategoryID     string     `json:"categoryId"`
	AssignedUserID string     `json:"assignedUserId,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Tags           []string   `json:"tags"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

// TaskPatch carries a partial update. Nil fields are left untouched by the store.
// CompletedAt is double-pointered so the use case can distinguish "leave alone"
// (nil) from "clear" (pointer to nil).
type TaskPatch struct {
	Title          *string
	Description    *string
	Status         *Status
	Priority       *Priority
	CategoryID     *string
	AssignedUserID *string
	DueDate        *time.Time
	Tags           *[]string
	CompletedAt    **time.Time
}
