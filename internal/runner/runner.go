package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"iforgor/internal/config"
	"iforgor/internal/interrupt"
)

// Status describes how a script ended
type Status struct {
	Code     int
	Signaled bool // terminated by a signal, Code is meaningless
}

// Success reports whether the script exited with code 0
func (s Status) Success() bool {
	return !s.Signaled && s.Code == 0
}

// Runner executes a user script with positional arguments. A non-zero
// exit is reported through Status, not as an error.
type Runner interface {
	Run(ctx context.Context, script string, args []string) (Status, error)
}

// IO holds the standard streams given to scripts
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdIO returns the process streams
func StdIO() IO {
	return IO{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// New returns the runner selected by the configuration. The guard ignores
// interrupts while a script runs so Ctrl+C only reaches the script.
func New(cfg *config.Config, guard *interrupt.Guard, streams IO) (Runner, error) {
	switch cfg.Runner {
	case config.RunnerShell:
		return &Script{Shell: cfg.Shell, Guard: guard, IO: streams}, nil
	case config.RunnerBuiltin:
		return &Interp{Guard: guard, IO: streams}, nil
	default:
		return nil, fmt.Errorf("unknown runner %q", cfg.Runner)
	}
}

// ignoreInterrupts switches the guard to Ignore; the guard may be nil
func ignoreInterrupts(guard *interrupt.Guard) (restore func()) {
	if guard == nil {
		return func() {}
	}
	return guard.Enter(interrupt.Ignore)
}
