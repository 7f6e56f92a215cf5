// Package main implements the entry point for the task manager API
// server, which exposes CRUD endpoints for users and their tasks over a
// PostgreSQL store.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/taskwire/taskmanager-api/internal/config"
	"github.com/taskwire/taskmanager-api/internal/platform/logger"
)

// main is the entry point for the taskmanager-api server.
// It initializes configuration, sets up logging, establishes the
// database connection, applies migrations, wires the dependencies, and
// starts the HTTP server.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration and sets up application components.
// Split out of main so every failure path flows through a single
// log.Fatalf call.
func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database connection", "error", err)
		}
	}()

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app := newApplication(cfg, appLogger, db)
	router := app.setupRouter()

	return app.startHTTPServer(ctx, router)
}
