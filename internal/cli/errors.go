package cli

import (
	"errors"
	"fmt"
)

// ErrMultipleChoices means the single-select chooser returned more than
// one key
var ErrMultipleChoices = errors.New("bug: there should be only one entry selected")

// ExitError carries the process exit code for an error
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
