package tui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/lipgloss/v2"
	"github.com/xonecas/linepad/internal/highlight"
)

// Styles are the footer styles.
type Styles struct {
	BgFill     lipgloss.Style
	StatusText lipgloss.Style
	Error      lipgloss.Style
	Position   lipgloss.Style
	Help       help.Styles
}

func newStyles(p highlight.Palette) Styles {
	bg := lipgloss.Color(p.Bg)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim)).Background(bg)
	return Styles{
		BgFill:     lipgloss.NewStyle().Background(bg),
		StatusText: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Fg)).Background(bg),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)).Background(bg).Bold(true),
		Position:   dim,
		Help: help.Styles{
			Ellipsis:       dim,
			ShortKey:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Background(bg),
			ShortDesc:      dim,
			ShortSeparator: dim,
			FullKey:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Background(bg),
			FullDesc:       dim,
			FullSeparator:  dim,
		},
	}
}
