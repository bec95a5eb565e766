package registry

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"iforgor/internal/store"
)

// UserCommand is a named script the user registered through a source file
type UserCommand struct {
	Name   string   `toml:"name"`
	Script string   `toml:"script"`
	Args   []string `toml:"args,omitempty"`
}

// ID identifies a command by the SHA3-256 of its script, in lower hex.
// Renaming a command keeps its history; editing the script doesn't.
func (c UserCommand) ID() string {
	sum := sha3.Sum256([]byte(c.Script))
	return hex.EncodeToString(sum[:])
}

// Source is the content of a user source file
type Source struct {
	Entries []UserCommand `toml:"entries"`
}

// LoadSource reads a source file
func LoadSource(path string) (Source, error) {
	d, err := store.Open[Source](path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to load source: %w", err)
	}
	return d.Value, nil
}
