package commands

import (
	"errors"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/tasklist"
)

// reportError prints err to errOut and returns the matching exit code.
// Validation and lookup failures are user errors; anything else came from
// the storage backend.
func reportError(errOut io.Writer, err error) int {
	var rangeErr *outOfRangeError
	switch {
	case errors.Is(err, ErrTaskRefRequired),
		errors.Is(err, ErrInvalidTaskRef),
		errors.Is(err, tasklist.ErrEmptyTitle),
		errors.Is(err, tasklist.ErrNotFound),
		errors.Is(err, tasklist.ErrNoEdit),
		errors.Is(err, tasklist.ErrInvalidPriority),
		errors.Is(err, tasklist.ErrInvalidFilter),
		errors.Is(err, errCompletedTask),
		errors.Is(err, errEditInProgress),
		errors.As(err, &rangeErr):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}
}

// errCompletedTask is returned when editing a task that is already done.
var errCompletedTask = errors.New("cannot edit completed task")
