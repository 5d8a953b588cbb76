package api

import (
	"log/slog"
	"net/http"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/api/shared"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/logger"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/service"
)

const (
	// WelcomeMessage is returned by the root endpoint.
	WelcomeMessage = "Welcome to the To-Do API!"

	// TaskDeletedMessage confirms a successful delete.
	TaskDeletedMessage = "Task deleted"

	taskIDParam = "id"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// Root handles GET /
func (h *TaskHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: WelcomeMessage})
}

// CreateTask handles POST /tasks/ requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Title, req.Completed)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// ListTasks handles GET /tasks/ requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, taskIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// UpdateTask handles PUT /tasks/{id} requests.
// Both fields are overwritten; a missing completed resets it to false.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, taskIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.Title, req.Completed)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, taskIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: TaskDeletedMessage})
}

// decodeTaskRequest parses and validates a TaskRequest body. On failure it
// writes a 400 response and returns false.
func (h *TaskHandler) decodeTaskRequest(w http.ResponseWriter, r *http.Request) (TaskRequest, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid task request body", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidRequest, err)
		return TaskRequest{}, false
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return TaskRequest{}, false
	}

	return req, true
}
