package choose

import (
	"cmp"

	"github.com/emirpasic/gods/v2/sets/treeset"
)

// Selection is the set of chosen keys. It is ordered so that results come
// back in a deterministic order.
type Selection[K cmp.Ordered] struct {
	keys *treeset.Set[K]
}

// NewSelection creates an empty selection
func NewSelection[K cmp.Ordered]() *Selection[K] {
	return &Selection[K]{keys: treeset.New[K]()}
}

// Toggle flips the membership of key
func (s *Selection[K]) Toggle(key K) {
	if s.keys.Contains(key) {
		s.keys.Remove(key)
	} else {
		s.keys.Add(key)
	}
}

// Add selects keys
func (s *Selection[K]) Add(keys ...K) {
	s.keys.Add(keys...)
}

// Remove deselects keys
func (s *Selection[K]) Remove(keys ...K) {
	s.keys.Remove(keys...)
}

// Replace makes key the only selected key
func (s *Selection[K]) Replace(key K) {
	s.keys.Clear()
	s.keys.Add(key)
}

// Clear empties the selection
func (s *Selection[K]) Clear() {
	s.keys.Clear()
}

// IsSelected checks if a key is selected
func (s *Selection[K]) IsSelected(key K) bool {
	return s.keys.Contains(key)
}

// Keys returns the selected keys in ascending order
func (s *Selection[K]) Keys() []K {
	return s.keys.Values()
}

// Len returns the number of selected keys
func (s *Selection[K]) Len() int {
	return s.keys.Size()
}
