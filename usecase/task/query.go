package task

import (
	"sort"
	"strings"

	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/repository"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Pagination describes the window a list response covers.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// applyQuery is a pure function of (snapshot, filter): equality filters first,
// then search, then a created-descending sort, then the page slice. The input
// slice is never mutated.
func applyQuery(snapshot []domain.Task, filter repository.TaskFilter) ([]domain.Task, Pagination) {
	matched := make([]domain.Task, 0, len(snapshot))
	for _, t := range snapshot {
		if matchesFilter(t, filter) && matchesSearch(t, filter.Search) {
			matched = append(matched, t)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	page := clampPage(filter.Page)
	limit := clampLimit(filter.Limit)

	meta := Pagination{
		Total:      len(matched),
		Page:       page,
		Limit:      limit,
		TotalPages: (len(matched) + limit - 1) / limit,
	}

	start := (page - 1) * limit
	if start >= len(matched) {
		return []domain.Task{}, meta
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], meta
}

func matchesFilter(t domain.Task, filter repository.TaskFilter) bool {
	if filter.Status != "" && t.Status != filter.Status {
		return false
	}
	if filter.Priority != "" && t.Priority != filter.Priority {
		return false
	}
	if filter.CategoryID != "" && t.CategoryID != filter.CategoryID {
		return false
	}
	if filter.AssignedUserID != "" && t.AssignedUserID != filter.AssignedUserID {
		return false
	}
	return true
}

// matchesSearch checks the needle against title, description and every tag,
// case-insensitively.
func matchesSearch(t domain.Task, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
