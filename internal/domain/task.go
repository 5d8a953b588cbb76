package domain

import "strings"

// Task is a single to-do item. ID is assigned by the store on creation and
// never changes afterwards; Title and Completed are mutable.
type Task struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewTask builds an unsaved Task (ID zero) from client input.
// Returns a ValidationError if the title is blank.
func NewTask(title string, completed bool) (*Task, error) {
	task := &Task{
		Title:     title,
		Completed: completed,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the mutable fields of the task.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTaskTitle)
	}
	return nil
}

// ValidateID checks that id can reference a stored task.
func ValidateID(id int64) error {
	if id <= 0 {
		return NewValidationError("id", "must be a positive integer", ErrInvalidID)
	}
	return nil
}
