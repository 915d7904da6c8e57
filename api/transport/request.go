package transport

// CreateTaskRequest is the POST /tasks body. DueDate is RFC 3339.
type CreateTaskRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	CategoryID     string   `json:"categoryId"`
	AssignedUserID string   `json:"assignedUserId"`
	DueDate        string   `json:"dueDate"`
	Tags           []string `json:"tags"`
}

// UpdateTaskRequest is the PUT /tasks/{id} body. Pointer fields distinguish
// "absent" from "set to zero value" so updates stay partial.
type UpdateTaskRequest struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Status         *string   `json:"status"`
	Priority       *string   `json:"priority"`
	CategoryID     *string   `json:"categoryId"`
	AssignedUserID *string   `json:"assignedUserId"`
	DueDate        *string   `json:"dueDate"`
	Tags           *[]string `json:"tags"`
}

// StatusUpdateRequest is the PATCH /tasks/{id}/status body.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// BulkDeleteRequest is the POST /tasks/bulk/delete body.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
