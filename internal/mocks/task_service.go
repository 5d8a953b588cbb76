package mocks

import (
	"context"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/domain"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	callCounter

	CreateTaskFn func(ctx context.Context, title string, completed bool) (*domain.Task, error)
	GetTaskFn    func(ctx context.Context, id int64) (*domain.Task, error)
	ListTasksFn  func(ctx context.Context) ([]domain.Task, error)
	UpdateTaskFn func(ctx context.Context, id int64, title string, completed bool) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id int64) error

	// Default return values
	Task         *domain.Task
	Tasks        []domain.Task
	DefaultError error
}

// CreateTask implements the TaskService.CreateTask method
func (m *MockTaskService) CreateTask(ctx context.Context, title string, completed bool) (*domain.Task, error) {
	m.record("CreateTask")
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, title, completed)
	}
	return m.Task, m.DefaultError
}

// GetTask implements the TaskService.GetTask method
func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	m.record("GetTask")
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// ListTasks implements the TaskService.ListTasks method
func (m *MockTaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	m.record("ListTasks")
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return m.Tasks, m.DefaultError
}

// UpdateTask implements the TaskService.UpdateTask method
func (m *MockTaskService) UpdateTask(ctx context.Context, id int64, title string, completed bool) (*domain.Task, error) {
	m.record("UpdateTask")
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, title, completed)
	}
	return m.Task, m.DefaultError
}

// DeleteTask implements the TaskService.DeleteTask method
func (m *MockTaskService) DeleteTask(ctx context.Context, id int64) error {
	m.record("DeleteTask")
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return m.DefaultError
}
