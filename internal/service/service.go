// Package service defines the backend-agnostic interface for list and task
// operations.
package service

import (
	"context"
	"errors"

	"taskcal/internal/store"
	"taskcal/internal/tasklist"
)

var (
	// ErrListNotFound is returned when no list has the requested title or id.
	ErrListNotFound = errors.New("list not found")

	// ErrTaskOutOfRange is returned for a task number outside the list.
	ErrTaskOutOfRange = errors.New("task number out of range")

	// ErrEmptyDescription is returned when adding a task without text.
	ErrEmptyDescription = errors.New("description required")

	// ErrInvalidDueDate is returned when adding a task whose due date does
	// not parse.
	ErrInvalidDueDate = errors.New("invalid due date")
)

// Service defines the interface for task list operations.
// Commands never touch the store directly.
type Service interface {
	// Lists returns every stored list in store order, plus the records that
	// failed to decode.
	Lists(ctx context.Context) (store.Snapshot, error)

	// ResolveList finds a list by exact title.
	// Returns ErrListNotFound if no list matches.
	ResolveList(ctx context.Context, title string) (tasklist.TaskList, error)

	// CreateList validates title and stores a new empty list.
	// Returns tasklist.ErrEmptyTitle, *tasklist.TitleError or
	// *tasklist.DuplicateError on invalid input.
	CreateList(ctx context.Context, title string) (tasklist.TaskList, error)

	// DeleteList deletes a list by id.
	DeleteList(ctx context.Context, listID int) error

	// AddTask appends a task to a list.
	AddTask(ctx context.Context, listID int, task tasklist.Task) error

	// DeleteTask removes the task with 1-based number num.
	DeleteTask(ctx context.Context, listID int, num int) error
}
