package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderContent produces the screen content, with any open modal drawn
// over the viewer.
func (m Model) renderContent() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.notice != nil {
		return m.notice.View(m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.viewer.View(!m.modalOpen()))
	b.WriteByte('\n')
	m.renderStatusBar(&b)
	b.WriteByte('\n')
	b.WriteString(m.renderHelp())
	base := b.String()

	var box string
	switch {
	case m.edit != nil:
		box = m.edit.Box(m.width, m.height)
	case m.actions != nil:
		box = m.actions.Box(m.width, m.height)
	case m.history != nil:
		box = m.history.Box(m.width, m.height)
	default:
		return base
	}
	return overlay(base, box, m.width, m.height)
}

func (m Model) modalOpen() bool {
	return m.actions != nil || m.edit != nil || m.history != nil || m.notice != nil
}

// overlay draws box centred on top of base.
func overlay(base, box string, width, height int) string {
	x := max(0, (width-lipgloss.Width(box))/2)
	y := max(0, (height-lipgloss.Height(box))/2)
	out := lipgloss.NewCanvas(
		lipgloss.NewLayer(base),
		lipgloss.NewLayer(box).X(x).Y(y).Z(1),
	).Render()
	return strings.ReplaceAll(out, "\r\n", "\n")
}

// renderStatusBar writes the status message on the left and the cursor
// position on the right.
func (m Model) renderStatusBar(b *strings.Builder) {
	left := ""
	if m.status != "" {
		text := ansi.Truncate(m.status, max(0, m.width/2), "…")
		if m.statusErr {
			left = m.styles.Error.Render(" ✗ " + text)
		} else {
			left = m.styles.StatusText.Render(" " + text)
		}
	}

	pos := fmt.Sprintf("ln %d/%d", m.viewer.Cursor()+1, len(m.viewer.Lines()))
	if x := m.viewer.ClipX(); x > 0 {
		pos += fmt.Sprintf("  col +%d", x)
	}
	right := m.styles.Position.Render(pos)

	gap := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right)-1)
	b.WriteString(left)
	b.WriteString(m.styles.BgFill.Render(strings.Repeat(" ", gap)))
	b.WriteString(right)
	b.WriteString(m.styles.BgFill.Render(" "))
}

func (m Model) renderHelp() string {
	// help can overrun its width when the ellipsis does not fit.
	line := ansi.Truncate(m.help.ShortHelpView(m.viewer.Keys().ShortHelp()), max(0, m.width-1), "")
	pad := max(0, m.width-1-lipgloss.Width(line))
	return m.styles.BgFill.Render(" ") + line + m.styles.BgFill.Render(strings.Repeat(" ", pad))
}
