package modal

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// History is a read-only scrolling modal listing past edits of a file.
// Lines may already carry ANSI styling.
type History struct {
	title  string
	lines  []string
	scroll int
	pageH  int // list rows at the last SetSize, 0 when unknown
	colors Colors
}

// NewHistory creates a history modal over content.
func NewHistory(title, content string, colors Colors) History {
	return History{
		title:  title,
		lines:  strings.Split(strings.TrimRight(content, "\n"), "\n"),
		colors: colors,
	}
}

// Scroll returns the index of the first visible line.
func (h History) Scroll() int { return h.scroll }

// SetSize records the terminal size the modal is drawn at. Scrolling stops at
// the last full page for that size.
func (h *History) SetSize(_, appHeight int) {
	h.pageH = historyListHeight(appHeight)
	h.scrollBy(0)
}

func historyListHeight(appHeight int) int {
	return max(1, appHeight*80/100-4) // border, title, divider
}

// HandleMsg processes key and mouse events. Returns ActionClose when the
// modal should close.
func (h *History) HandleMsg(msg tea.Msg) Action {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.Keystroke() {
		case "esc", "q", "enter":
			return ActionClose{}
		case "up", "k":
			h.scrollBy(-1)
		case keyDown, "j":
			h.scrollBy(1)
		case "pgup":
			h.scrollBy(-10)
		case "pgdown":
			h.scrollBy(10)
		case "home":
			h.scroll = 0
		}
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseRight || msg.Button == tea.MouseBackward {
			return ActionClose{}
		}
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			h.scrollBy(-1)
		case tea.MouseWheelDown:
			h.scrollBy(1)
		}
	}
	return nil
}

func (h *History) scrollBy(n int) {
	last := len(h.lines) - 1
	if h.pageH > 0 {
		last = len(h.lines) - h.pageH
	}
	h.scroll = max(0, min(h.scroll+n, last))
}

// View renders the modal centered in the terminal at appWidth x appHeight.
func (h History) View(appWidth, appHeight int) string {
	return h.colors.center(appWidth, appHeight, h.Box(appWidth, appHeight))
}

// Box renders the bordered history list without placement.
func (h History) Box(appWidth, appHeight int) string {
	innerW := boxInnerWidth(appWidth*80/100, appWidth)
	listH := historyListHeight(appHeight)
	scroll := min(h.scroll, max(0, len(h.lines)-listH))

	bg := lipgloss.Color(h.colors.Bg)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(h.colors.Accent)).Background(bg).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(h.colors.Dim)).Background(bg)
	fillStyle := lipgloss.NewStyle().Background(bg)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(padRight(ansi.Truncate(h.title, innerW, "…"), innerW)))
	sb.WriteByte('\n')
	sb.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))

	end := min(scroll+listH, len(h.lines))
	for _, l := range h.lines[scroll:end] {
		l = ansi.Truncate(l, innerW, "")
		sb.WriteByte('\n')
		sb.WriteString(l)
		sb.WriteString(fillStyle.Render(strings.Repeat(" ", max(0, innerW-ansi.StringWidth(l)))))
	}
	for i := end - scroll; i < listH; i++ {
		sb.WriteByte('\n')
		sb.WriteString(fillStyle.Render(strings.Repeat(" ", innerW)))
	}

	return h.colors.box(innerW, sb.String())
}
