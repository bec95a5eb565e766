package registry

import (
	"slices"

	"github.com/samber/lo"

	"iforgor/internal/choose"
)

// History lists command IDs in run order, most recent last
type History struct {
	History []string `toml:"history"`
}

// Touch records a run of id. A previous occurrence is dropped so every ID
// appears once. With a positive limit only the most recent runs are kept.
func (h *History) Touch(id string, limit int) {
	h.History = append(lo.Without(h.History, id), id)
	if limit > 0 && len(h.History) > limit {
		h.History = slices.Clone(h.History[len(h.History)-limit:])
	}
}

// Entries returns the chooser entries for the history, most recent first.
// IDs that are no longer registered are skipped.
func (h History) Entries(reg *Registry) []choose.Entry[string] {
	entries := lo.FilterMap(h.History, func(id string, _ int) (choose.Entry[string], bool) {
		cmd, ok := reg.Commands[id]
		return choose.Entry[string]{Key: id, Name: cmd.Name}, ok
	})
	slices.Reverse(entries)
	return entries
}
