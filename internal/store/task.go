package store

import (
	"context"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/domain"
)

// TaskStore defines the interface for task persistence. It is the source of
// truth for tasks; every method runs as a single statement.
type TaskStore interface {
	// Create inserts a new task and returns it with the store-assigned ID.
	Create(ctx context.Context, title string, completed bool) (*domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if no task has that ID.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List returns every stored task in the store's natural order.
	// An empty table yields an empty, non-nil slice.
	List(ctx context.Context) ([]domain.Task, error)

	// Update overwrites the title and completion flag of an existing task and
	// returns the updated row.
	// Returns ErrTaskNotFound if no task has that ID.
	Update(ctx context.Context, id int64, title string, completed bool) (*domain.Task, error)

	// Delete permanently removes a task.
	// Returns ErrTaskNotFound if no task has that ID.
	Delete(ctx context.Context, id int64) error
}
