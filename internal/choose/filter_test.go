package choose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func greekItems() []Entry[string] {
	return []Entry[string]{
		{Key: "a", Name: "Alpha"},
		{Key: "b", Name: "Beta"},
		{Key: "c", Name: "Gamma"},
	}
}

func names[K string | int](d Displayed[K]) []string {
	out := make([]string, 0, d.Len())
	for _, e := range d.Entries() {
		out = append(out, e.Name)
	}
	return out
}

func TestFilterEmptySearchWithoutDefaultsShowsSortedItems(t *testing.T) {
	items := []Entry[string]{
		{Key: "c", Name: "Gamma"},
		{Key: "a", Name: "Alpha"},
		{Key: "b", Name: "Beta"},
	}

	got := Filter(items, nil, "")

	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names(got))
}

func TestFilterTermsAreAnded(t *testing.T) {
	got := Filter(greekItems(), nil, "a,m")

	assert.Equal(t, []string{"Gamma"}, names(got))
}

func TestFilterDefaultListOnlyForEmptySearch(t *testing.T) {
	history := []Entry[string]{
		{Key: "c", Name: "Gamma"},
		{Key: "a", Name: "Alpha"},
	}

	t.Run("empty search keeps default order", func(t *testing.T) {
		got := Filter(greekItems(), history, "")
		assert.Equal(t, []string{"Gamma", "Alpha"}, names(got))
	})

	t.Run("non-empty search uses items", func(t *testing.T) {
		got := Filter(greekItems(), history, "e")
		assert.Equal(t, []string{"Beta"}, names(got))
	})

	t.Run("empty default list is still a default list", func(t *testing.T) {
		got := Filter(greekItems(), []Entry[string]{}, "")
		assert.Equal(t, 0, got.Len())
	})

	t.Run("a space is a search", func(t *testing.T) {
		got := Filter(greekItems(), history, " ")
		assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names(got))
	})
}

func TestFilterCases(t *testing.T) {
	items := []Entry[string]{
		{Key: "1", Name: "Deploy Staging"},
		{Key: "2", Name: "deploy production"},
		{Key: "3", Name: "Backup DB"},
		{Key: "4", Name: "Restore DB, staging"},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"case insensitive", "DEPLOY", []string{"Deploy Staging", "deploy production"}},
		{"terms trimmed", " deploy ,  staging ", []string{"Deploy Staging"}},
		{"empty term matches everything", "db,", []string{"Backup DB", "Restore DB, staging"}},
		{"only commas", ",,", []string{"Backup DB", "Deploy Staging", "Restore DB, staging", "deploy production"}},
		{"no match", "zzz", []string{}},
		{"substring inside word", "ack", []string{"Backup DB"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, nil, tt.search)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilterSortIsCaseSensitiveAndStable(t *testing.T) {
	items := []Entry[int]{
		{Key: 1, Name: "same"},
		{Key: 2, Name: "Upper"},
		{Key: 3, Name: "same"},
		{Key: 4, Name: "lower"},
		{Key: 5, Name: "same"},
	}

	got := Filter(items, nil, "")

	// uppercase sorts before lowercase as stored
	assert.Equal(t, []string{"Upper", "lower", "same", "same", "same"}, names(got))
	assert.Equal(t, []int{2, 4, 1, 3, 5}, got.Keys())
}

func TestFilterEveryResultContainsEveryTerm(t *testing.T) {
	items := []Entry[string]{
		{Key: "1", Name: "git push origin"},
		{Key: "2", Name: "git pull"},
		{Key: "3", Name: "Docker Compose Up"},
		{Key: "4", Name: "docker ps"},
		{Key: "5", Name: "kubectl get pods"},
		{Key: "6", Name: "PUSH image"},
	}
	searches := []string{"p", "git,p", "DOCKER, up", "o,o", "push", "s, ", "pod,get,kube"}

	for _, search := range searches {
		got := Filter(items, nil, search)
		terms := SearchTerms(search)
		for _, e := range got.Entries() {
			for _, term := range terms {
				assert.Contains(t, strings.ToLower(e.Name), term, "search %q", search)
			}
		}
		// nothing matching was dropped
		count := 0
		for _, e := range items {
			if MatchesTerms(e.Name, terms) {
				count++
			}
		}
		assert.Equal(t, count, got.Len(), "search %q", search)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	items := greekItems()
	history := []Entry[string]{{Key: "b", Name: "Beta"}}

	for _, search := range []string{"", "a", "a,m", "zz"} {
		first := Filter(items, history, search)
		second := Filter(items, history, search)
		require.Equal(t, first.Entries(), second.Entries(), "search %q", search)
	}
}

func TestFilterDoesNotModifyItems(t *testing.T) {
	items := []Entry[string]{
		{Key: "c", Name: "Gamma"},
		{Key: "a", Name: "Alpha"},
	}
	original := append([]Entry[string](nil), items...)

	Filter(items, nil, "a")

	assert.Equal(t, original, items)
}

func TestSearchTerms(t *testing.T) {
	assert.Equal(t, []string{""}, SearchTerms(""))
	assert.Equal(t, []string{"foo", "bar baz"}, SearchTerms(" FOO , Bar Baz"))
	assert.Equal(t, []string{"a", "", "b"}, SearchTerms("a,,b"))
}
