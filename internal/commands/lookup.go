package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"taskcal/internal/exitcode"
	"taskcal/internal/output"
	"taskcal/internal/service"
	"taskcal/internal/store"
	"taskcal/internal/tasklist"
)

// loadLists enumerates the store and warns about records that were skipped.
func loadLists(ctx context.Context, svc service.Service, errOut io.Writer) (store.Snapshot, int) {
	snap, err := svc.Lists(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return store.Snapshot{}, exitcode.BackendError
	}
	for _, m := range snap.Malformed {
		output.FormatMalformed(errOut, m)
	}
	return snap, exitcode.Success
}

// resolveList looks up a list by title and maps lookup failures to exit codes.
func resolveList(ctx context.Context, svc service.Service, name string, errOut io.Writer) (tasklist.TaskList, int) {
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return tasklist.TaskList{}, exitcode.UserError
	}
	list, err := svc.ResolveList(ctx, name)
	if err != nil {
		return tasklist.TaskList{}, reportError(errOut, name, err)
	}
	return list, exitcode.Success
}

// reportError prints err and returns the matching exit code. subject names
// the list or task the error is about.
func reportError(errOut io.Writer, subject string, err error) int {
	var titleErr *tasklist.TitleError
	var dupErr *tasklist.DuplicateError

	switch {
	case errors.As(err, &titleErr), errors.As(err, &dupErr):
		fmt.Fprintf(errOut, "error: %v\n", err)
	case errors.Is(err, service.ErrListNotFound):
		fmt.Fprintf(errOut, "error: list not found: %s\n", subject)
	case errors.Is(err, service.ErrTaskOutOfRange):
		fmt.Fprintf(errOut, "error: task number out of range: %s\n", subject)
	case errors.Is(err, service.ErrEmptyDescription):
		fmt.Fprintln(errOut, "error: description required")
	case errors.Is(err, service.ErrInvalidDueDate):
		fmt.Fprintf(errOut, "error: invalid due date: %s\n", subject)
	default:
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.UserError
}
