package registry

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"iforgor/internal/choose"
)

var (
	// ErrUnknownCommand is returned when an ID isn't in the registry
	ErrUnknownCommand = errors.New("unknown command ID")
	// ErrUnknownSource is returned when removing a path that isn't registered
	ErrUnknownSource = errors.New("path was not a registered source")
)

// Registry holds the registered source files and the commands loaded from
// them, keyed by command ID
type Registry struct {
	Sources  []string               `toml:"sources"`
	Commands map[string]UserCommand `toml:"commands"`
}

// LoadFunc is called once per loaded source with the commands it added
type LoadFunc func(path string, added []UserCommand)

// AddSource loads the commands of a source file and records its path.
// Commands with the same ID as an existing one replace it.
func (r *Registry) AddSource(path string) ([]UserCommand, error) {
	src, err := LoadSource(path)
	if err != nil {
		return nil, err
	}

	if r.Commands == nil {
		r.Commands = make(map[string]UserCommand)
	}
	for _, cmd := range src.Entries {
		r.Commands[cmd.ID()] = cmd
	}
	r.addPath(path)

	log.Debug("registry: source added", "path", path, "commands", len(src.Entries))
	return src.Entries, nil
}

// RemoveSource forgets a source path. The raw path is tried first, so
// sources deleted from disk can still be removed, then its canonical form.
// Commands loaded from the source stay until the next Reload. It returns
// the path that was removed.
func (r *Registry) RemoveSource(path string) (string, error) {
	if r.removePath(path) {
		return path, nil
	}

	canonical, err := Canonical(path)
	if err != nil {
		return "", err
	}
	if !r.removePath(canonical) {
		return "", fmt.Errorf("%w: %s", ErrUnknownSource, path)
	}
	return canonical, nil
}

// Reload rebuilds the commands from every registered source. The registry
// is left untouched if any source fails to load.
func (r *Registry) Reload(onLoad LoadFunc) error {
	commands := make(map[string]UserCommand)
	for _, path := range r.Sources {
		src, err := LoadSource(path)
		if err != nil {
			return err
		}
		for _, cmd := range src.Entries {
			commands[cmd.ID()] = cmd
		}
		if onLoad != nil {
			onLoad(path, src.Entries)
		}
	}

	r.Commands = commands
	log.Debug("registry: reloaded", "sources", len(r.Sources), "commands", len(commands))
	return nil
}

// Lookup returns the command with the given ID
func (r *Registry) Lookup(id string) (UserCommand, error) {
	cmd, ok := r.Commands[id]
	if !ok {
		return UserCommand{}, fmt.Errorf("%w %s", ErrUnknownCommand, id)
	}
	return cmd, nil
}

// Entries returns every command as a chooser entry, ordered by ID
func (r *Registry) Entries() []choose.Entry[string] {
	ids := lo.Keys(r.Commands)
	slices.Sort(ids)
	return lo.Map(ids, func(id string, _ int) choose.Entry[string] {
		return choose.Entry[string]{Key: id, Name: r.Commands[id].Name}
	})
}

// addPath inserts path keeping Sources sorted and unique
func (r *Registry) addPath(path string) {
	i, found := slices.BinarySearch(r.Sources, path)
	if !found {
		r.Sources = slices.Insert(r.Sources, i, path)
	}
}

func (r *Registry) removePath(path string) bool {
	i, found := slices.BinarySearch(r.Sources, path)
	if !found {
		return false
	}
	r.Sources = slices.Delete(r.Sources, i, i+1)
	return true
}

// Canonical returns the absolute path with symlinks resolved. The path
// must exist.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return resolved, nil
}
