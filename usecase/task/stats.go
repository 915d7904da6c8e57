package task

import (
	"context"

	"github.com/taskboard/backend/domain"
)

// Stats aggregates counts per status and priority over the full, unfiltered
// task collection. Statuses and priorities with no tasks report zero.
func (uc *UseCase) Stats(ctx context.Context) (*domain.TaskStats, error) {
	snapshot, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.TaskStats{Total: len(snapshot)}
	for _, t := range snapshot {
		switch t.Status {
		case domain.StatusPending:
			stats.ByStatus.Pending++
		case domain.StatusInProgress:
			stats.ByStatus.InProgress++
		case domain.StatusCompleted:
			stats.ByStatus.Completed++
		case domain.StatusCancelled:
			stats.ByStatus.Cancelled++
		}
		switch t.Priority {
		case domain.PriorityLow:
			stats.ByPriority.Low++
		case domain.PriorityMedium:
			stats.ByPriority.Medium++
		case domain.PriorityHigh:
			stats.ByPriority.High++
		case domain.PriorityUrgent:
			stats.ByPriority.Urgent++
		}
	}
	return stats, nil
}
