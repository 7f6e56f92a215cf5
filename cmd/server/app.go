package main

import (
	"database/sql"
	"log/slog"

	"github.com/taskwire/taskmanager-api/internal/config"
	"github.com/taskwire/taskmanager-api/internal/platform/postgres"
	"github.com/taskwire/taskmanager-api/internal/service"
	"github.com/taskwire/taskmanager-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	taskStore store.TaskStore

	// Service interfaces
	userService service.UserService
	taskService service.TaskService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	// Initialize services
	app.userService = service.NewUserService(app.userStore, app.taskStore, db, logger)
	app.taskService = service.NewTaskService(app.taskStore, app.userStore, logger)

	logger.Info("application dependencies initialized")
	return app
}
