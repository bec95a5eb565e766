package choose

import "cmp"

// Entry is one selectable item: a key handed back to the caller and the
// label shown to the user. Names don't have to be unique.
type Entry[K cmp.Ordered] struct {
	Key  K
	Name string
}

// Options configures a selection session
type Options[K cmp.Ordered] struct {
	// Title of the frame
	Title string
	// Text shown below the list, usually giving context for the selection
	Text string
	// MultiSelect enables toggling entries and disables auto-selection on confirm
	MultiSelect bool
	// Items is the list being searched. It is borrowed, never modified.
	Items []Entry[K]
	// DefaultList replaces Items while the search text is empty (history for
	// iforgor). A nil slice means there is no default list; a non-nil empty
	// slice shows an empty list.
	DefaultList []Entry[K]
}
