package choose

import (
	"cmp"
	"slices"
	"strings"
)

// Displayed is the list currently shown to the user, as indices into the
// source slice that produced it
type Displayed[K cmp.Ordered] struct {
	source  []Entry[K]
	indices []int
}

// Len returns the number of displayed entries
func (d Displayed[K]) Len() int {
	return len(d.indices)
}

// At returns the i-th displayed entry
func (d Displayed[K]) At(i int) Entry[K] {
	return d.source[d.indices[i]]
}

// Entries returns a copy of the displayed entries in display order
func (d Displayed[K]) Entries() []Entry[K] {
	out := make([]Entry[K], len(d.indices))
	for i, idx := range d.indices {
		out[i] = d.source[idx]
	}
	return out
}

// Keys returns the keys of the displayed entries in display order
func (d Displayed[K]) Keys() []K {
	out := make([]K, len(d.indices))
	for i, idx := range d.indices {
		out[i] = d.source[idx].Key
	}
	return out
}

// Filter computes the displayed list for a search text.
//
// An empty search with a default list present returns the default list as is.
// Otherwise the search is lower-cased and split on commas into trimmed terms,
// and every term must be a substring of the lower-cased entry name. Empty
// terms match everything. Matches are sorted by name with a stable sort.
func Filter[K cmp.Ordered](items, defaults []Entry[K], search string) Displayed[K] {
	if search == "" && defaults != nil {
		indices := make([]int, len(defaults))
		for i := range defaults {
			indices[i] = i
		}
		return Displayed[K]{source: defaults, indices: indices}
	}

	terms := SearchTerms(search)
	indices := make([]int, 0, len(items))
	for i, item := range items {
		if MatchesTerms(item.Name, terms) {
			indices = append(indices, i)
		}
	}

	// equal names keep their source order
	slices.SortStableFunc(indices, func(a, b int) int {
		return strings.Compare(items[a].Name, items[b].Name)
	})

	return Displayed[K]{source: items, indices: indices}
}

// SearchTerms splits a search text into lower-cased, trimmed terms
func SearchTerms(search string) []string {
	terms := strings.Split(strings.ToLower(search), ",")
	for i, term := range terms {
		terms[i] = strings.TrimSpace(term)
	}
	return terms
}

// MatchesTerms reports whether name contains every term, ignoring case
func MatchesTerms(name string, terms []string) bool {
	lower := strings.ToLower(name)
	for _, term := range terms {
		if !strings.Contains(lower, term) {
			return false
		}
	}
	return true
}
