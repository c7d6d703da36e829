// Package modal holds the small modal components layered over the viewer:
// the action dialog, the line editor and the edit history view.
package modal

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Action is the result of handling a message. nil means no action.
type Action any

// ActionClose signals the modal should be dismissed.
type ActionClose struct{}

// ActionSelect signals an option was chosen.
type ActionSelect struct{ Index int }

// ActionCommit carries the text accepted in a line editor.
type ActionCommit struct{ Text string }

// Colors holds the theme colors for modals.
type Colors struct {
	Fg     string
	Bg     string
	Dim    string
	SelFg  string
	SelBg  string
	Border string
	Accent string
}

const (
	keyDown      = "down"
	keyBackspace = "backspace"

	minBoxWidth = 24
)

// Dialog is a titled list of options. Up and down move the selection, enter
// or a digit picks an option.
type Dialog struct {
	title    string
	label    string
	options  []string
	selected int

	colors Colors
}

// NewDialog creates a dialog. label is an optional dim line under the title.
func NewDialog(title, label string, options []string, colors Colors) Dialog {
	return Dialog{
		title:   title,
		label:   label,
		options: options,
		colors:  colors,
	}
}

// Selected returns the highlighted option index.
func (d *Dialog) Selected() int { return d.selected }

// HandleMsg processes a tea.Msg and returns an optional Action.
func (d *Dialog) HandleMsg(msg tea.Msg) Action {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return d.handleKey(msg)
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseRight || msg.Button == tea.MouseBackward {
			return ActionClose{}
		}
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			d.move(-1)
		case tea.MouseWheelDown:
			d.move(1)
		}
	}
	return nil
}

func (d *Dialog) handleKey(msg tea.KeyPressMsg) Action {
	switch msg.Keystroke() {
	case "esc", "q", keyBackspace:
		return ActionClose{}
	case "enter", "space":
		if len(d.options) == 0 {
			return nil
		}
		return ActionSelect{Index: d.selected}
	case "up", "k", "shift+tab":
		d.move(-1)
		return nil
	case keyDown, "j", "tab":
		d.move(1)
		return nil
	}

	if n, err := strconv.Atoi(msg.Text); err == nil && n >= 1 && n <= 9 && n <= len(d.options) {
		d.selected = n - 1
		return ActionSelect{Index: d.selected}
	}
	return nil
}

// move shifts the selection by delta, wrapping at both ends.
func (d *Dialog) move(delta int) {
	n := len(d.options)
	if n == 0 {
		return
	}
	d.selected = ((d.selected+delta)%n + n) % n
}

// View renders the dialog centered in an appWidth x appHeight area.
func (d *Dialog) View(appWidth, appHeight int) string {
	return d.colors.center(appWidth, appHeight, d.Box(appWidth, appHeight))
}

// Box renders the bordered dialog without placement.
func (d *Dialog) Box(appWidth, _ int) string {
	contentW := ansi.StringWidth(d.title)
	contentW = max(contentW, ansi.StringWidth(d.label))
	for i, o := range d.options {
		contentW = max(contentW, ansi.StringWidth(optionLabel(i, o)))
	}
	innerW := boxInnerWidth(contentW, appWidth)

	bg := lipgloss.Color(d.colors.Bg)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(d.colors.Accent)).Background(bg).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(d.colors.Dim)).Background(bg)
	fgStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(d.colors.Fg)).Background(bg)
	selStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(d.colors.SelFg)).
		Background(lipgloss.Color(d.colors.SelBg))

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(padRight(ansi.Truncate(d.title, innerW, "…"), innerW)))
	if d.label != "" {
		sb.WriteByte('\n')
		sb.WriteString(dimStyle.Render(padRight(ansi.Truncate(d.label, innerW, "…"), innerW)))
	}
	sb.WriteByte('\n')
	sb.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
	for i, o := range d.options {
		line := padRight(ansi.Truncate(optionLabel(i, o), innerW, "…"), innerW)
		sb.WriteByte('\n')
		if i == d.selected {
			sb.WriteString(selStyle.Render(line))
		} else {
			sb.WriteString(fgStyle.Render(line))
		}
	}

	return d.colors.box(innerW, sb.String())
}

func optionLabel(i int, o string) string {
	if i < 9 {
		return strconv.Itoa(i+1) + ". " + o
	}
	return "   " + o
}

// boxInnerWidth fits content into the app width, leaving room for the
// border and padding.
func boxInnerWidth(contentW, appWidth int) int {
	w := max(contentW, minBoxWidth)
	return max(1, min(w, appWidth-4))
}

// box wraps content in a rounded border.
func (c Colors) box(innerW int, content string) string {
	bg := lipgloss.Color(c.Bg)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Border)).
		BorderBackground(bg).
		Foreground(lipgloss.Color(c.Fg)).
		Background(bg).
		Padding(0, 1).
		Width(innerW + 4).
		Render(content)
}

// center places box in the middle of an appWidth x appHeight area.
func (c Colors) center(appWidth, appHeight int, box string) string {
	return lipgloss.Place(appWidth, appHeight, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceStyle(lipgloss.NewStyle().Background(lipgloss.Color(c.Bg))))
}

func padRight(s string, w int) string {
	n := ansi.StringWidth(s)
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}
