package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"iforgor/internal/choose"
)

const entrySeparator = " @ "

// parseEntries reads one choice per line as "ID @ NAME". Without a
// separator the whole line is both key and name. Blank lines are skipped.
func parseEntries(r io.Reader) ([]choose.Entry[string], error) {
	var entries []choose.Entry[string]

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, name, found := strings.Cut(line, entrySeparator)
		key = strings.TrimSpace(key)
		if !found {
			name = key
		}
		entries = append(entries, choose.Entry[string]{Key: key, Name: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}
	return entries, nil
}
