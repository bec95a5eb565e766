package views

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the chooser
type Styles struct {
	Border     lipgloss.Style
	Title      lipgloss.Style
	Label      lipgloss.Style
	Search     lipgloss.Style
	Row        lipgloss.Style
	Highlight  lipgloss.Style
	Text       lipgloss.Style
	LegendKey  lipgloss.Style
	LegendDesc lipgloss.Style
}

// NewStyles creates the styles bound to a renderer, so colors follow the
// profile of the output the frame is drawn on
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Border:     r.NewStyle(),
		Title:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")), // magenta
		Label:      r.NewStyle(),
		Search:     r.NewStyle().Underline(true),
		Row:        r.NewStyle(),
		Highlight:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),   // blue
		Text:       r.NewStyle().Italic(true).Foreground(lipgloss.Color("6")), // cyan
		LegendKey:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		LegendDesc: r.NewStyle(),
	}
}

// HelpStyles adapts the styles to the bubbles help renderer used for the legend
func (s *Styles) HelpStyles() help.Styles {
	return help.Styles{
		ShortKey:       s.LegendKey,
		ShortDesc:      s.LegendDesc,
		ShortSeparator: s.LegendDesc,
		Ellipsis:       s.LegendDesc,
		FullKey:        s.LegendKey,
		FullDesc:       s.LegendDesc,
		FullSeparator:  s.LegendDesc,
	}
}
