package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrNotFound is returned by Open when the file doesn't exist
var ErrNotFound = errors.New("file not found")

// OnDisk is a value of type T backed by a TOML file
type OnDisk[T any] struct {
	Value T
	path  string
}

// New returns a zero value bound to path, without reading the file
func New[T any](path string) *OnDisk[T] {
	return &OnDisk[T]{path: path}
}

// Open loads the value from path. The file must exist.
func Open[T any](path string) (*OnDisk[T], error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	d := New[T](path)
	if err := toml.Unmarshal(data, &d.Value); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return d, nil
}

// OpenOrDefault loads the value from path. A missing or blank file gives
// the zero value.
func OpenOrDefault[T any](path string) (*OnDisk[T], error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New[T](path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	d := New[T](path)
	if strings.TrimSpace(string(data)) == "" {
		return d, nil
	}
	if err := toml.Unmarshal(data, &d.Value); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return d, nil
}

// Path returns the file the value is saved to
func (d *OnDisk[T]) Path() string {
	return d.path
}

// Save writes the value to its file, creating parent directories
func (d *OnDisk[T]) Save() error {
	if err := os.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := toml.Marshal(d.Value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", d.path, err)
	}

	if err := os.WriteFile(d.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.path, err)
	}
	return nil
}
