package choose

import (
	"cmp"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"iforgor/internal/choose/views"
)

// Size used until the first window size message arrives
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the Bubble Tea model wrapping a selection session
type Model[K cmp.Ordered] struct {
	session  *Session[K]
	keys     KeyMap
	renderer *views.Renderer
	viewport views.Viewport

	width  int
	height int
}

// NewModel creates a model for a new session, drawing with the given
// lipgloss renderer
func NewModel[K cmp.Ordered](opts Options[K], r *lipgloss.Renderer) *Model[K] {
	m := &Model[K]{
		session:  NewSession(opts),
		keys:     DefaultKeyMap(opts.MultiSelect),
		renderer: views.NewRenderer(r),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.fitViewport()
	return m
}

// Init returns an initial command
func (m *Model[K]) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model[K]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fitViewport()

	case tea.KeyMsg:
		action := m.keys.ActionFor(msg)
		if action == nil {
			return m, nil
		}
		m.session.Apply(action)
		m.fitViewport()
		if m.session.Done() {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the current state. It only reads the session.
func (m *Model[K]) View() string {
	if m.session.Done() {
		// leave a clean screen behind when the alternate screen is off
		return ""
	}
	return m.renderer.Render(m.viewState())
}

// Session returns the underlying session
func (m *Model[K]) Session() *Session[K] {
	return m.session
}

// Selected returns the keys chosen when the session ended
func (m *Model[K]) Selected() []K {
	return m.session.Selected()
}

func (m *Model[K]) viewState() views.ViewState {
	opts := m.session.Options()
	displayed := m.session.Displayed()

	rows := make([]views.Row, displayed.Len())
	for i := range rows {
		entry := displayed.At(i)
		rows[i] = views.Row{
			Name:     entry.Name,
			Selected: opts.MultiSelect && m.session.IsSelected(entry.Key),
		}
	}

	return views.ViewState{
		Width:       m.width,
		Height:      m.height,
		Title:       opts.Title,
		Text:        opts.Text,
		Search:      m.session.Search(),
		MultiSelect: opts.MultiSelect,
		Rows:        rows,
		Highlighted: m.session.Highlighted(),
		Offset:      m.viewport.Offset,
		Keys:        m.keys.ShortHelp(),
	}
}

// fitViewport keeps the highlighted row on screen after a change
func (m *Model[K]) fitViewport() {
	m.viewport.Fit(m.session.Highlighted(), m.session.Displayed().Len(), views.ListHeight(m.height))
}
