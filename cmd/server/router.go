package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskwire/taskmanager-api/internal/api"
	apiMiddleware "github.com/taskwire/taskmanager-api/internal/api/middleware"
	"github.com/taskwire/taskmanager-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)

	// Task endpoint group
	r.Route("/task", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/create", taskHandler.CreateTask)
		r.Put("/update", taskHandler.UpdateTask)
		r.Delete("/delete", taskHandler.DeleteTask)
		r.Get("/{task_id}", taskHandler.GetTask)
	})

	// User endpoint group
	r.Route("/user", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Post("/create", userHandler.CreateUser)
		r.Put("/update", userHandler.UpdateUser)
		r.Delete("/delete", userHandler.DeleteUser)
		r.Get("/user_id/tasks", userHandler.ListUserTasks)
		r.Get("/{user_id}", userHandler.GetUser)
	})

	// Welcome route
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
			"message": "Welcome to Taskmanager",
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
