package viewer

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// View renders the title bar and the visible lines. The cursor line is drawn
// as a full-width band; focused selects its colour.
func (m Model) View(focused bool) string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())

	textW := max(0, m.width-2*margin)
	visible := m.VisibleLines()
	for row := 0; row < visible; row++ {
		b.WriteByte('\n')
		i := m.first + row
		if i >= len(m.display) {
			b.WriteString(m.styles.Text.Render(strings.Repeat(" ", m.width)))
			continue
		}

		style, bgHex := m.styles.Text, m.styles.BgHex
		if i == m.current {
			if focused {
				style, bgHex = m.styles.Cursor, m.styles.CursorHex
			} else {
				style, bgHex = m.styles.Blur, m.styles.BlurHex
			}
		}

		text := m.display[i]
		var rendered string
		if m.hl.Enabled() {
			rendered = ansi.Cut(m.hl.Line(text, bgHex), m.clipX, m.clipX+textW)
		} else {
			rendered = style.Render(ansi.Cut(text, m.clipX, m.clipX+textW))
		}
		pad := textW - ansi.StringWidth(rendered)

		b.WriteString(style.Render(strings.Repeat(" ", margin)))
		b.WriteString(rendered)
		b.WriteString(style.Render(strings.Repeat(" ", max(0, pad)+margin)))
	}
	return b.String()
}

// renderTitle shows the file name, keeping its tail when it does not fit.
func (m Model) renderTitle() string {
	avail := max(0, m.width-2*margin)
	title := m.path
	if w := ansi.StringWidth(title); w > avail {
		title = ansi.Cut(title, w-avail, w)
	}
	pad := avail - ansi.StringWidth(title)
	line := strings.Repeat(" ", margin) + title + strings.Repeat(" ", max(0, pad)+margin)
	return m.styles.Title.Render(line)
}
