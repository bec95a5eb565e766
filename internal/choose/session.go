package choose

import (
	"cmp"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// NoHighlight is returned by Highlighted when the displayed list is empty
const NoHighlight = -1

// Session holds the whole interaction state of one chooser run. It is driven
// one action at a time and never touches the terminal itself.
type Session[K cmp.Ordered] struct {
	opts Options[K]

	search      string
	displayed   Displayed[K]
	selected    *Selection[K]
	highlighted int
	exit        bool
}

// NewSession creates a session showing the list for an empty search
func NewSession[K cmp.Ordered](opts Options[K]) *Session[K] {
	s := &Session[K]{
		opts:     opts,
		selected: NewSelection[K](),
	}
	s.refresh()
	return s
}

// Apply processes one action. Actions that don't apply to the current mode
// are ignored.
func (s *Session[K]) Apply(action Action) {
	if s.exit {
		return
	}

	switch a := action.(type) {
	case CancelAction:
		s.selected.Clear()
		s.exit = true

	case ConfirmAction:
		s.exit = true
		if s.opts.MultiSelect {
			return
		}
		if entry, ok := s.Current(); ok {
			s.selected.Replace(entry.Key)
		}

	case InsertTextAction:
		if a.Text == "" {
			return
		}
		s.search += a.Text
		s.refresh()

	case EraseAction:
		if s.search != "" {
			_, size := utf8.DecodeLastRuneInString(s.search)
			s.search = s.search[:len(s.search)-size]
		}
		s.refresh()

	case NavigateAction:
		s.navigate(a.Direction)

	case ToggleOneAction:
		if !s.opts.MultiSelect {
			return
		}
		if entry, ok := s.Current(); ok {
			s.selected.Toggle(entry.Key)
		}

	case ToggleAllAction:
		if !s.opts.MultiSelect {
			return
		}
		keys := s.displayed.Keys()
		if lo.SomeBy(keys, s.selected.IsSelected) {
			s.selected.Remove(keys...)
		} else {
			s.selected.Add(keys...)
		}
	}
}

// refresh recomputes the displayed list and resets the highlight
func (s *Session[K]) refresh() {
	s.displayed = Filter(s.opts.Items, s.opts.DefaultList, s.search)
	if s.displayed.Len() > 0 {
		s.highlighted = 0
	} else {
		s.highlighted = NoHighlight
	}
	log.Debug("choose: list updated", "search", s.search, "count", s.displayed.Len())
}

func (s *Session[K]) navigate(direction Direction) {
	if s.highlighted == NoHighlight {
		return
	}
	switch direction {
	case DirectionUp:
		if s.highlighted > 0 {
			s.highlighted--
		}
	case DirectionDown:
		if s.highlighted < s.displayed.Len()-1 {
			s.highlighted++
		}
	}
}

// Current returns the highlighted entry, if any
func (s *Session[K]) Current() (Entry[K], bool) {
	if s.highlighted < 0 || s.highlighted >= s.displayed.Len() {
		var zero Entry[K]
		return zero, false
	}
	return s.displayed.At(s.highlighted), true
}

// Search returns the current search text
func (s *Session[K]) Search() string {
	return s.search
}

// Displayed returns the list currently shown
func (s *Session[K]) Displayed() Displayed[K] {
	return s.displayed
}

// Highlighted returns the highlighted index, or NoHighlight
func (s *Session[K]) Highlighted() int {
	return s.highlighted
}

// IsSelected checks if a key is in the selection
func (s *Session[K]) IsSelected(key K) bool {
	return s.selected.IsSelected(key)
}

// Selected returns the selected keys in ascending order
func (s *Session[K]) Selected() []K {
	return s.selected.Keys()
}

// Done reports whether the session has ended
func (s *Session[K]) Done() bool {
	return s.exit
}

// Options returns the options the session was created with
func (s *Session[K]) Options() Options[K] {
	return s.opts
}
