package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/taskboard/backend/api/handler"
)

type Handlers struct {
	Task     *apiHandler.TaskHandler
	Category *apiHandler.CategoryHandler
	User     *apiHandler.UserHandler
	Health   *apiHandler.HealthHandler
}

// New registers every route. Cross-cutting middleware (CORS) wraps the
// resulting handler at the server level so preflight requests are covered
// without per-route registration.
func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Task routes. The static segments (stats, status, priority, bulk) are
	// registered alongside the {id} parameter; static matches take priority.
	r.GET("/api/v1/tasks", handlers.Task.GetTasks)
	r.POST("/api/v1/tasks", handlers.Task.CreateTask)
	r.GET("/api/v1/tasks/stats/summary", handlers.Task.Stats)
	r.GET("/api/v1/tasks/status/{status}", handlers.Task.GetByStatus)
	r.GET("/api/v1/tasks/priority/{priority}", handlers.Task.GetByPriority)
	r.POST("/api/v1/tasks/bulk/delete", handlers.Task.BulkDelete)
	r.GET("/api/v1/tasks/{id}", handlers.Task.GetTask)
	r.PUT("/api/v1/tasks/{id}", handlers.Task.UpdateTask)
	r.PATCH("/api/v1/tasks/{id}/status", handlers.Task.UpdateStatus)
	r.DELETE("/api/v1/tasks/{id}", handlers.Task.DeleteTask)

	// Category routes
	r.GET("/api/v1/categories", handlers.Category.GetCategories)
	r.POST("/api/v1/categories", handlers.Category.CreateCategory)
	r.GET("/api/v1/categories/{id}", handlers.Category.GetCategory)
	r.DELETE("/api/v1/categories/{id}", handlers.Category.DeleteCategory)

	// User routes
	r.GET("/api/v1/users", handlers.User.GetUsers)
	r.POST("/api/v1/users", handlers.User.CreateUser)
	r.GET("/api/v1/users/{id}", handlers.User.GetUser)
	r.DELETE("/api/v1/users/{id}", handlers.User.DeleteUser)

	return r
}
