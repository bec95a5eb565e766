package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Layout constants of the frame body
const (
	searchLabel      = "Search :"
	searchLabelWidth = 9
	minListHeight    = 3
	maxTextHeight    = 5
	// search row, blank row, blank row above the text
	fixedRows = 3

	highlightSymbol = "> "
	checkedMarker   = "[X] "
	uncheckedMarker = "[ ] "

	// smallest frame with both borders and padding
	minFrameWidth  = 4
	minFrameHeight = 2
)

// Row is one displayed entry as the renderer sees it
type Row struct {
	Name     string
	Selected bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	Title       string
	Text        string
	Search      string
	MultiSelect bool
	Rows        []Row
	Highlighted int // -1 when nothing is highlighted
	Offset      int // first visible row
	Keys        []key.Binding
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	help   help.Model
}

// NewRenderer creates a renderer drawing with the given lipgloss renderer
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	styles := NewStyles(r)
	h := help.New()
	h.ShortSeparator = " "
	h.Styles = styles.HelpStyles()
	return &Renderer{
		styles: styles,
		help:   h,
	}
}

// ListHeight returns how many list rows fit in a frame of the given height
func ListHeight(height int) int {
	inner := height - 2
	listHeight := inner - fixedRows - textHeight(height)
	if listHeight < 0 {
		return 0
	}
	return listHeight
}

// textHeight is the height of the text region: up to maxTextHeight rows,
// only taken once the list has its minimum height
func textHeight(height int) int {
	spare := height - 2 - fixedRows - minListHeight
	switch {
	case spare < 0:
		return 0
	case spare > maxTextHeight:
		return maxTextHeight
	default:
		return spare
	}
}

// Render produces the complete frame. A terminal too small for the borders
// gets an empty frame.
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width < minFrameWidth || state.Height < minFrameHeight {
		return ""
	}
	contentWidth := width - 4 // borders and horizontal padding

	body := make([]string, 0, state.Height)
	body = append(body, r.renderSearch(state.Search, contentWidth))
	body = append(body, "")
	body = append(body, r.renderList(state, contentWidth)...)
	body = append(body, "")
	body = append(body, r.renderText(state.Text, contentWidth, textHeight(state.Height))...)

	inner := state.Height - 2
	if len(body) > inner {
		body = body[:inner]
	}

	border := lipgloss.ThickBorder()
	lines := make([]string, 0, len(body)+2)
	lines = append(lines, r.borderLine(border.TopLeft, border.Top, border.TopRight,
		r.styles.Title.Render(state.Title), width))
	for _, line := range body {
		lines = append(lines, r.styles.Border.Render(border.Left)+" "+pad(line, contentWidth)+" "+
			r.styles.Border.Render(border.Right))
	}
	lines = append(lines, r.borderLine(border.BottomLeft, border.Bottom, border.BottomRight,
		r.renderLegend(state.Keys, width-4), width))

	return strings.Join(lines, "\n")
}

// renderSearch renders the search label and input. The input always shows
// at least one cell so the row stays visible when empty.
func (r *Renderer) renderSearch(search string, width int) string {
	inputWidth := width - searchLabelWidth
	if inputWidth < 1 {
		return truncate.String(searchLabel, uint(max(width, 0)))
	}
	if search == "" {
		search = " "
	}
	search = tail(search, inputWidth)
	return pad(r.styles.Label.Render(searchLabel), searchLabelWidth) + r.styles.Search.Render(search)
}

// renderList renders the visible window of rows, padded to the list height
func (r *Renderer) renderList(state ViewState, width int) []string {
	height := ListHeight(state.Height)
	lines := make([]string, 0, height)

	for i := state.Offset; i < len(state.Rows) && len(lines) < height; i++ {
		if i < 0 {
			continue
		}
		row := state.Rows[i]

		prefix := "  "
		if i == state.Highlighted {
			prefix = highlightSymbol
		}
		if state.MultiSelect {
			if row.Selected {
				prefix += checkedMarker
			} else {
				prefix += uncheckedMarker
			}
		}

		nameWidth := width - runewidth.StringWidth(prefix)
		name := row.Name
		if nameWidth < 1 {
			name = ""
		} else if runewidth.StringWidth(name) > nameWidth {
			name = runewidth.Truncate(name, nameWidth, "…")
		}

		style := r.styles.Row
		if i == state.Highlighted {
			style = r.styles.Highlight
		}
		lines = append(lines, style.Render(prefix+name))
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// renderText word-wraps the help text into a fixed number of rows
func (r *Renderer) renderText(text string, width, height int) []string {
	lines := make([]string, 0, height)
	if height == 0 {
		return lines
	}

	if text != "" && width > 0 {
		for _, line := range strings.Split(wordwrap.String(text, width), "\n") {
			if len(lines) == height {
				break
			}
			line = strings.TrimSpace(line)
			lines = append(lines, r.styles.Text.Render(truncate.String(line, uint(width))))
		}
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// renderLegend renders the key bindings for the bottom border
func (r *Renderer) renderLegend(keys []key.Binding, width int) string {
	if len(keys) == 0 || width <= 2 {
		return ""
	}
	r.help.Width = width - 2
	return " " + r.help.ShortHelpView(keys) + " "
}

// borderLine draws a horizontal border with a centered label
func (r *Renderer) borderLine(left, fill, right, label string, width int) string {
	inner := width - 2
	if lipgloss.Width(label) > inner {
		label = truncate.String(label, uint(inner))
	}
	labelWidth := lipgloss.Width(label)
	before := (inner - labelWidth) / 2
	after := inner - labelWidth - before

	return r.styles.Border.Render(left+strings.Repeat(fill, before)) + label +
		r.styles.Border.Render(strings.Repeat(fill, after)+right)
}

// pad fills a line with spaces up to width
func pad(line string, width int) string {
	w := lipgloss.Width(line)
	if w >= width {
		return line
	}
	return line + strings.Repeat(" ", width-w)
}

// tail keeps the end of s that fits in width cells, so the cursor end of a
// long search stays visible
func tail(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > width {
			break
		}
		used += w
		start--
	}
	return string(runes[start:])
}
