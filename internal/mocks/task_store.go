package mocks

import (
	"context"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/domain"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	callCounter

	// Custom behavior functions
	CreateFn  func(ctx context.Context, title string, completed bool) (*domain.Task, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	ListFn    func(ctx context.Context) ([]domain.Task, error)
	UpdateFn  func(ctx context.Context, id int64, title string, completed bool) (*domain.Task, error)
	DeleteFn  func(ctx context.Context, id int64) error

	// Default return values
	Task         *domain.Task
	Tasks        []domain.Task
	DefaultError error
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements the TaskStore.Create method
func (m *MockTaskStore) Create(ctx context.Context, title string, completed bool) (*domain.Task, error) {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, title, completed)
	}
	return m.Task, m.DefaultError
}

// GetByID implements the TaskStore.GetByID method
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// List implements the TaskStore.List method
func (m *MockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	m.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Tasks, m.DefaultError
}

// Update implements the TaskStore.Update method
func (m *MockTaskStore) Update(ctx context.Context, id int64, title string, completed bool) (*domain.Task, error) {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, title, completed)
	}
	return m.Task, m.DefaultError
}

// Delete implements the TaskStore.Delete method
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}
