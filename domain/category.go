package domain

import "time"

// Category is a labeling entity used to group tasks. Tasks keep a categoryId
// reference but no referential integrity is enforced between the collections.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}
