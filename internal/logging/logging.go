package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup routes the default logger to the file at path. The terminal belongs
// to the chooser, so nothing is logged to stdout or stderr. When the file
// can't be opened logs are discarded and the error is returned for the
// caller to report; the returned closer is always usable.
func Setup(path, level, prefix string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		Discard()
		return nopCloser{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		Discard()
		return nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Discard()
		return nopCloser{}, fmt.Errorf("could not open log file: %w", err)
	}

	log.SetDefault(log.NewWithOptions(f, log.Options{
		Prefix:          prefix,
		Level:           lvl,
		ReportTimestamp: true,
	}))
	return f, nil
}

// Discard drops every log line
func Discard() {
	log.SetDefault(log.New(io.Discard))
}
