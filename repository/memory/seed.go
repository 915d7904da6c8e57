package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/backend/domain"
)

// Seed populates the store with sample categories, users and tasks so the API
// has data to serve on a fresh boot. Reseeded on every restart; nothing is
// persisted across process lifetimes.
func (s *Store) Seed(ctx context.Context) error {
	now := time.Now()

	categories := []domain.Category{
		{Name: "Work", Description: "Work related tasks", Color: "#3b82f6"},
		{Name: "Personal", Description: "Personal errands", Color: "#10b981"},
		{Name: "Study", Description: "Courses and learning", Color: "#f59e0b"},
		{Name: "Home", Description: "Household chores", Color: "#8b5cf6"},
	}
	for i := range categories {
		categories[i].ID = uuid.NewString()
		categories[i].CreatedAt = now
		if _, err := s.Categories.Create(ctx, &categories[i]); err != nil {
			return err
		}
	}

	users := []domain.User{
		{Name: "Alice Carter", Email: "alice@example.com", Role: domain.RoleAdmin},
		{Name: "Bruno Silva", Email: "bruno@example.com", Role: domain.RoleUser},
		{Name: "Carmen Diaz", Email: "carmen@example.com", Role: domain.RoleUser},
	}
	for i := range users {
		users[i].ID = uuid.NewString()
		users[i].CreatedAt = now
		if _, err := s.Users.Create(ctx, &users[i]); err != nil {
			return err
		}
	}

	completed := now
	tasks := []domain.Task{
		{
			Title:       "Finish monthly report",
			Description: "Write and send the monthly sales report",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityHigh,
			Tags:        []string{"report", "sales"},
		},
		{
			Title:       "Client meeting",
			Description: "Present the proposal for the new project",
			Status:      domain.StatusPending,
			Priority:    domain.PriorityUrgent,
			Tags:        []string{"meeting", "client"},
		},
		{
			Title:       "Update documentation",
			Description: "Review and refresh the technical documentation",
			Status:      domain.StatusCompleted,
			Priority:    domain.PriorityMedium,
			Tags:        []string{"docs", "tech"},
			CompletedAt: &completed,
		},
	}
	for i := range tasks {
		tasks[i].ID = uuid.NewString()
		tasks[i].CategoryID = categories[0].ID
		tasks[i].AssignedUserID = users[0].ID
		// staggered so the created-descending sort has a stable order
		tasks[i].CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		tasks[i].UpdatedAt = tasks[i].CreatedAt
		if _, err := s.Tasks.Create(ctx, &tasks[i]); err != nil {
			return err
		}
	}

	return nil
}
