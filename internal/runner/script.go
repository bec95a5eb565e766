package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"

	"iforgor/internal/interrupt"
)

// Script runs scripts as executable files in a temporary directory
type Script struct {
	// Shell is written in the shebang line, /bin/sh when empty
	Shell string
	Guard *interrupt.Guard
	IO    IO
}

// Run writes the script to a temp file, runs it with args and waits for it.
// The temp directory is removed afterwards.
func (s *Script) Run(ctx context.Context, script string, args []string) (Status, error) {
	dir, err := os.MkdirTemp("", "iforgor-*")
	if err != nil {
		return Status{}, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path, err := s.writeScript(dir, script)
	if err != nil {
		return Status{}, err
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = s.IO.Stdin
	cmd.Stdout = s.IO.Stdout
	cmd.Stderr = s.IO.Stderr

	restore := ignoreInterrupts(s.Guard)
	defer restore()

	log.Debug("runner: starting script", "path", path, "args", len(args))
	err = cmd.Run()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return Status{}, fmt.Errorf("failed to run script: %w", err)
	}

	state := cmd.ProcessState
	code := state.ExitCode()
	status := Status{Code: code, Signaled: code == -1}
	log.Debug("runner: script finished", "code", status.Code, "signaled", status.Signaled)
	return status, nil
}

// writeScript creates the executable file, read and execute only for the
// owner
func (s *Script) writeScript(dir, script string) (string, error) {
	name, header := "script", "#!"+s.shell()+"\n"
	if runtime.GOOS == "windows" {
		name, header = "script.bat", "@echo off\r\n"
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(header+script), 0700); err != nil {
		return "", fmt.Errorf("failed to write script: %w", err)
	}
	if err := os.Chmod(path, 0500); err != nil {
		return "", fmt.Errorf("failed to set script permissions: %w", err)
	}
	return path, nil
}

func (s *Script) shell() string {
	if s.Shell == "" {
		return "/bin/sh"
	}
	return s.Shell
}
