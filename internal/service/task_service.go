package service

import (
	"context"
	"log/slog"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/domain"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/logger"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// CreateTask validates and stores a new task
	CreateTask(ctx context.Context, title string, completed bool) (*domain.Task, error)

	// GetTask retrieves a task by its ID
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// ListTasks returns every task, served from the list cache when possible
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// UpdateTask overwrites title and completed of an existing task
	UpdateTask(ctx context.Context, id int64, title string, completed bool) (*domain.Task, error)

	// DeleteTask permanently removes a task
	DeleteTask(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks     store.TaskStore
	listCache *ListCache
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if taskStore is nil. A nil listCache disables caching.
func NewTaskService(
	taskStore store.TaskStore,
	listCache *ListCache,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}
	if listCache == nil {
		listCache = NewListCache(nil, 0, logger)
	}

	return &taskServiceImpl{
		tasks:     taskStore,
		listCache: listCache,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	title string,
	completed bool,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := domain.NewTask(title, completed); err != nil {
		log.Debug("rejected invalid task", slog.String("error", err.Error()))
		return nil, err
	}

	task, err := s.tasks.Create(ctx, title, completed)
	if err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	s.listCache.Invalidate(ctx)
	return task, nil
}

// GetTask implements TaskService.GetTask
// A non-positive id cannot belong to a stored task and is reported as not found.
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if domain.ValidateID(id) != nil {
		return nil, ErrTaskNotFound
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// ListTasks implements TaskService.ListTasks.
// A cache hit is returned as is; a miss reads the store and repopulates the cache.
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if tasks, ok := s.listCache.Load(ctx); ok {
		return tasks, nil
	}

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks",
			slog.String("error", err.Error()))
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	s.listCache.Store(ctx, tasks)
	return tasks, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	title string,
	completed bool,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	candidate := domain.Task{ID: id, Title: title, Completed: completed}
	if err := candidate.Validate(); err != nil {
		log.Debug("rejected invalid task update",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}
	if domain.ValidateID(id) != nil {
		return nil, ErrTaskNotFound
	}

	task, err := s.tasks.Update(ctx, id, title, completed)
	if err != nil {
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	s.listCache.Invalidate(ctx)
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if domain.ValidateID(id) != nil {
		return ErrTaskNotFound
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.listCache.Invalidate(ctx)
	return nil
}
