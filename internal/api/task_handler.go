package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskwire/taskmanager-api/internal/api/shared"
	"github.com/taskwire/taskmanager-api/internal/domain"
	"github.com/taskwire/taskmanager-api/internal/platform/logger"
	"github.com/taskwire/taskmanager-api/internal/service"
	"github.com/taskwire/taskmanager-api/internal/store"
)

// CreateTaskRequest represents the request body for creating a new task.
// Priority is a pointer so that an explicit zero passes the required
// check; it is an unconstrained integer.
type CreateTaskRequest struct {
	Title    string `json:"title"    validate:"required"`
	Content  string `json:"content"  validate:"required"`
	Priority *int   `json:"priority" validate:"required"`
}

// UpdateTaskRequest represents the request body for updating a task.
// All mutable fields are replaced on update.
type UpdateTaskRequest struct {
	Title    string `json:"title"    validate:"required"`
	Content  string `json:"content"  validate:"required"`
	Priority *int   `json:"priority" validate:"required"`
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority int    `json:"priority"`
	UserID   int64  `json:"user_id"`
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /task/ requests.
// It returns all tasks, unfiltered, in storage-default order.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /task/{task_id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	taskID, err := getPathID(r, "task_id")
	if err != nil {
		log.Warn("invalid task_id path parameter", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task_id parameter")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), taskID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CreateTask handles POST /task/create?user_id={id} requests.
// The acknowledgment deliberately omits the new task's ID.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, err := getQueryID(r, "user_id")
	if err != nil {
		log.Warn("invalid user_id query parameter", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user_id parameter")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	_, err = h.taskService.CreateTask(r.Context(), userID, req.Title, req.Content, *req.Priority)
	if err != nil {
		msg := GetSafeErrorMessage(err)
		// The task routes phrase a missing owner differently from the
		// user routes.
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, store.ErrInvalidEntity) {
			msg = "User not found"
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), msg, err)
		return
	}

	shared.RespondWithAck(w, r, http.StatusCreated, "Task create is successful!")
}

// UpdateTask handles PUT /task/update?task_id={id} requests
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	taskID, err := getQueryID(r, "task_id")
	if err != nil {
		log.Warn("invalid task_id query parameter", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task_id parameter")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	err = h.taskService.UpdateTask(r.Context(), taskID, req.Title, req.Content, *req.Priority)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithAck(w, r, http.StatusOK, "Task update is successful!")
}

// DeleteTask handles DELETE /task/delete?task_id={id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	taskID, err := getQueryID(r, "task_id")
	if err != nil {
		log.Warn("invalid task_id query parameter", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task_id parameter")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), taskID); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithAck(w, r, http.StatusOK, "Task delete is successful!")
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:       task.ID,
		Title:    task.Title,
		Content:  task.Content,
		Priority: task.Priority,
		UserID:   task.UserID,
	}
}

// tasksToResponse converts a slice of domain tasks, preserving an empty
// (never null) JSON array for zero tasks.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskToResponse(task))
	}
	return responses
}
