package executor

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/sophiekatz/workbench/internal/taskpath"
)

// TaskNotFoundError reports a task path that does not resolve in the
// loaded config.
type TaskNotFoundError struct {
	Path taskpath.TaskPath
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", taskpath.Display(e.Path))
}

// AggregateError preserves every sibling error from one dependency
// fan-out, rather than collapsing to the first. It never loses information:
// formatting it prints every wrapped error on its own line.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d task(s) failed:\n%s", len(e.Errors), strings.Join(parts, "\n"))
}

// Unwrap exposes the wrapped errors to errors.Is/errors.As chains.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// aggregate folds errs (which may contain nils) into an *AggregateError
// built on top of hashicorp/go-multierror, so every sibling failure
// survives rather than only the first one encountered.
func aggregate(errs []error) error {
	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if merr == nil || len(merr.Errors) == 0 {
		return nil
	}
	return &AggregateError{Errors: merr.Errors}
}
