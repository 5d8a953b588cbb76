package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/domain"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/logger"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/store"
)

const (
	createTaskQuery = `INSERT INTO tasks (title, completed) VALUES ($1, $2) RETURNING id, title, completed`
	getTaskQuery    = `SELECT id, title, completed FROM tasks WHERE id = $1`
	listTasksQuery  = `SELECT id, title, completed FROM tasks`
	updateTaskQuery = `UPDATE tasks SET title = $1, completed = $2 WHERE id = $3 RETURNING id, title, completed`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = $1`
	taskEntityName  = "task"
)

// Pool hands out dedicated connections. *sql.DB satisfies it.
type Pool interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	pool   Pool
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a connection pool that is initialized and closed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(pool Pool, logger *slog.Logger) *PostgresTaskStore {
	if pool == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pool cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		pool:   pool,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// withConn checks out one connection for the duration of fn and returns it
// to the pool on every exit path.
func (s *PostgresTaskStore) withConn(
	ctx context.Context,
	operation string,
	fn func(conn store.DBTX) error,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conn, err := s.pool.Conn(ctx)
	if err != nil {
		log.Error("failed to acquire database connection",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return store.NewStoreError(taskEntityName, operation, "failed to acquire connection", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			log.Warn("failed to release database connection",
				slog.String("operation", operation),
				slog.String("error", closeErr.Error()))
		}
	}()

	return fn(conn)
}

// Create implements store.TaskStore.Create
// It inserts a new row and returns it with the generated ID.
func (s *PostgresTaskStore) Create(ctx context.Context, title string, completed bool) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var task domain.Task
	err := s.withConn(ctx, "create", func(conn store.DBTX) error {
		err := conn.QueryRowContext(ctx, createTaskQuery, title, completed).
			Scan(&task.ID, &task.Title, &task.Completed)
		if err != nil {
			log.Error("failed to create task", slog.String("error", err.Error()))
			return store.NewStoreError(taskEntityName, "create", "insert failed", MapError(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("task created successfully", slog.Int64("task_id", task.ID))
	return &task, nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.Int64("task_id", id))

	var task domain.Task
	err := s.withConn(ctx, "get", func(conn store.DBTX) error {
		err := conn.QueryRowContext(ctx, getTaskQuery, id).
			Scan(&task.ID, &task.Title, &task.Completed)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Debug("task not found", slog.Int64("task_id", id))
				return store.ErrTaskNotFound
			}
			log.Error("failed to get task by ID",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
			return store.NewStoreError(taskEntityName, "get", "query failed", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// List implements store.TaskStore.List
// Rows come back in the table's natural order.
func (s *PostgresTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks := make([]domain.Task, 0)
	err := s.withConn(ctx, "list", func(conn store.DBTX) error {
		rows, err := conn.QueryContext(ctx, listTasksQuery)
		if err != nil {
			log.Error("failed to list tasks", slog.String("error", err.Error()))
			return store.NewStoreError(taskEntityName, "list", "query failed", err)
		}
		defer func() {
			if closeErr := rows.Close(); closeErr != nil {
				log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
			}
		}()

		for rows.Next() {
			var task domain.Task
			if err := rows.Scan(&task.ID, &task.Title, &task.Completed); err != nil {
				log.Error("failed to scan task row", slog.String("error", err.Error()))
				return store.NewStoreError(taskEntityName, "list", "scan failed", err)
			}
			tasks = append(tasks, task)
		}

		if err := rows.Err(); err != nil {
			log.Error("error iterating task rows", slog.String("error", err.Error()))
			return store.NewStoreError(taskEntityName, "list", "row iteration failed", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Update implements store.TaskStore.Update
// It overwrites title and completed in one statement and returns the new row.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Update(
	ctx context.Context,
	id int64,
	title string,
	completed bool,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("updating task",
		slog.Int64("task_id", id),
		slog.Bool("completed", completed))

	var task domain.Task
	err := s.withConn(ctx, "update", func(conn store.DBTX) error {
		err := conn.QueryRowContext(ctx, updateTaskQuery, title, completed, id).
			Scan(&task.ID, &task.Title, &task.Completed)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.Debug("task not found for update", slog.Int64("task_id", id))
				return store.ErrTaskNotFound
			}
			log.Error("failed to update task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
			return store.NewStoreError(taskEntityName, "update", "update failed", MapError(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("task updated successfully", slog.Int64("task_id", id))
	return &task, nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.withConn(ctx, "delete", func(conn store.DBTX) error {
		result, err := conn.ExecContext(ctx, deleteTaskQuery, id)
		if err != nil {
			log.Error("failed to delete task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
			return store.NewStoreError(taskEntityName, "delete", "delete failed", err)
		}

		if err := CheckRowsAffected(result, taskEntityName); err != nil {
			if store.IsNotFoundError(err) {
				log.Debug("task not found for delete", slog.Int64("task_id", id))
				return store.ErrTaskNotFound
			}
			return store.NewStoreError(taskEntityName, "delete", "rows affected unavailable", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("task deleted successfully", slog.Int64("task_id", id))
	return nil
}
