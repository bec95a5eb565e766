package choose

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the chooser key bindings. The help text of each binding is
// what the frame legend shows.
type KeyMap struct {
	Navigate  key.Binding
	Up        key.Binding
	Down      key.Binding
	ToggleOne key.Binding
	ToggleAll key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the bindings for single or multi selection
func DefaultKeyMap(multiSelect bool) KeyMap {
	k := KeyMap{
		// legend only, Up and Down do the work
		Navigate: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("<Up/Down>", "Change Line"),
		),
		Up:   key.NewBinding(key.WithKeys("up")),
		Down: key.NewBinding(key.WithKeys("down")),
		ToggleOne: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("<Right>", "Toggle select"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("<Left>", "Toggle all"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("<Enter>", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("<Esc>", "Quit"),
		),
	}
	k.ToggleOne.SetEnabled(multiSelect)
	k.ToggleAll.SetEnabled(multiSelect)
	return k
}

// ShortHelp returns the bindings shown in the legend, in display order.
// Disabled bindings are skipped by the help renderer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.ToggleOne, k.ToggleAll, k.Confirm, k.Cancel}
}

// FullHelp returns the same bindings as ShortHelp in a single column
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ActionFor maps a key press to an action. It returns nil for keys the
// chooser ignores.
func (k KeyMap) ActionFor(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Cancel):
		return CancelAction{}
	case key.Matches(msg, k.Confirm):
		return ConfirmAction{}
	case key.Matches(msg, k.Up):
		return NavigateAction{Direction: DirectionUp}
	case key.Matches(msg, k.Down):
		return NavigateAction{Direction: DirectionDown}
	case key.Matches(msg, k.ToggleOne):
		return ToggleOneAction{}
	case key.Matches(msg, k.ToggleAll):
		return ToggleAllAction{}
	}

	switch msg.Type {
	case tea.KeyBackspace:
		return EraseAction{}
	case tea.KeySpace:
		return InsertTextAction{Text: " "}
	case tea.KeyRunes:
		// alt+<key> is a chord, not text
		if msg.Alt {
			return nil
		}
		return InsertTextAction{Text: string(msg.Runes)}
	}

	return nil
}
