package viewer

import (
	"charm.land/lipgloss/v2"
	"github.com/xonecas/linepad/internal/highlight"
)

// Styles are the viewer colours. The hex fields feed the highlighter, which
// needs raw background colours.
type Styles struct {
	Title  lipgloss.Style
	Text   lipgloss.Style
	Cursor lipgloss.Style
	Blur   lipgloss.Style // cursor band while another component has focus

	BgHex     string
	CursorHex string
	BlurHex   string
}

// DefaultStyles derives viewer styles from a palette.
func DefaultStyles(p highlight.Palette) Styles {
	bg := lipgloss.Color(p.Bg)
	fg := lipgloss.Color(p.Fg)
	return Styles{
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Background(lipgloss.Color(p.Border)).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(fg).Background(bg),
		Cursor:    lipgloss.NewStyle().Foreground(fg).Background(lipgloss.Color(p.CursorBg)),
		Blur:      lipgloss.NewStyle().Foreground(fg).Background(lipgloss.Color(p.BlurBg)),
		BgHex:     p.Bg,
		CursorHex: p.CursorBg,
		BlurHex:   p.BlurBg,
	}
}

func (s Styles) isZero() bool { return s.BgHex == "" }
