package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"iforgor/internal/interrupt"
)

// Interp runs scripts in-process with a POSIX shell interpreter, so no
// system shell is needed
type Interp struct {
	Guard *interrupt.Guard
	IO    IO
	// Env defaults to the process environment
	Env []string
}

// Run parses and interprets the script with args as positional parameters
func (r *Interp) Run(ctx context.Context, script string, args []string) (Status, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
	if err != nil {
		return Status{}, fmt.Errorf("failed to parse script: %w", err)
	}

	env := r.Env
	if env == nil {
		env = os.Environ()
	}

	opts := []interp.RunnerOption{
		interp.StdIO(r.IO.Stdin, r.IO.Stdout, r.IO.Stderr),
		interp.Env(expand.ListEnviron(env...)),
	}
	// "--" keeps args such as "-v" from being read as shell options
	if len(args) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, args...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return Status{}, fmt.Errorf("failed to create interpreter: %w", err)
	}

	restore := ignoreInterrupts(r.Guard)
	defer restore()

	log.Debug("runner: interpreting script", "args", len(args))
	err = runner.Run(ctx, prog)
	if err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return Status{Code: int(exitStatus)}, nil
		}
		return Status{}, fmt.Errorf("script execution failed: %w", err)
	}
	return Status{}, nil
}
