package modal

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const defaultTabWidth = 4

// LineEdit is a single-line text editor. Unlike a generic text input it
// keeps tab characters, which are shown expanded.
type LineEdit struct {
	title    string
	input    []rune
	cursor   int
	tabWidth int

	colors Colors
}

// NewLineEdit creates an editor pre-filled with text, cursor at the end.
func NewLineEdit(title, text string, tabWidth int, colors Colors) LineEdit {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	input := []rune(text)
	return LineEdit{
		title:    title,
		input:    input,
		cursor:   len(input),
		tabWidth: tabWidth,
		colors:   colors,
	}
}

// Value returns the current text.
func (e *LineEdit) Value() string { return string(e.input) }

// Cursor returns the cursor position in runes.
func (e *LineEdit) Cursor() int { return e.cursor }

// HandleMsg processes a tea.Msg and returns an optional Action.
func (e *LineEdit) HandleMsg(msg tea.Msg) Action {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return e.handleKey(msg)
	case tea.PasteMsg:
		e.insert(strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(msg.Content))
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseRight || msg.Button == tea.MouseBackward {
			return ActionClose{}
		}
	}
	return nil
}

func (e *LineEdit) handleKey(msg tea.KeyPressMsg) Action {
	switch msg.Keystroke() {
	case "esc":
		return ActionClose{}
	case "enter":
		return ActionCommit{Text: string(e.input)}
	case "tab":
		e.insert("\t")
		return nil
	case keyBackspace, "delete", "ctrl+u", "ctrl+k":
		e.handleDelete(msg.Keystroke())
		return nil
	case "left", "right", "home", "end", "ctrl+a", "ctrl+e":
		e.handleCursor(msg.Keystroke())
		return nil
	}

	if msg.Text != "" && msg.Mod&(tea.ModCtrl|tea.ModAlt) == 0 {
		e.insert(msg.Text)
	}
	return nil
}

func (e *LineEdit) insert(s string) {
	rs := []rune(s)
	e.input = slices.Insert(e.input, e.cursor, rs...)
	e.cursor += len(rs)
}

func (e *LineEdit) handleDelete(key string) {
	switch key {
	case keyBackspace:
		if e.cursor > 0 {
			e.input = slices.Delete(e.input, e.cursor-1, e.cursor)
			e.cursor--
		}
	case "delete":
		if e.cursor < len(e.input) {
			e.input = slices.Delete(e.input, e.cursor, e.cursor+1)
		}
	case "ctrl+u":
		e.input = e.input[e.cursor:]
		e.cursor = 0
	case "ctrl+k":
		e.input = e.input[:e.cursor]
	}
}

func (e *LineEdit) handleCursor(key string) {
	switch key {
	case "left":
		if e.cursor > 0 {
			e.cursor--
		}
	case "right":
		if e.cursor < len(e.input) {
			e.cursor++
		}
	case "home", "ctrl+a":
		e.cursor = 0
	case "end", "ctrl+e":
		e.cursor = len(e.input)
	}
}

// View renders the editor centered in an appWidth x appHeight area.
func (e *LineEdit) View(appWidth, appHeight int) string {
	return e.colors.center(appWidth, appHeight, e.Box(appWidth, appHeight))
}

// Box renders the bordered editor without placement.
func (e *LineEdit) Box(appWidth, _ int) string {
	innerW := boxInnerWidth(max(appWidth*70/100, ansi.StringWidth(e.title)), appWidth)

	bg := lipgloss.Color(e.colors.Bg)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(e.colors.Accent)).Background(bg).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(e.colors.Dim)).Background(bg)
	fgStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(e.colors.Fg)).Background(bg)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(padRight(ansi.Truncate(e.title, innerW, "…"), innerW)))
	sb.WriteByte('\n')
	sb.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
	sb.WriteByte('\n')
	sb.WriteString(fgStyle.Render(padRight(e.renderInput(innerW), innerW)))
	sb.WriteByte('\n')
	sb.WriteString(dimStyle.Render(padRight(ansi.Truncate("enter save · esc cancel", innerW, ""), innerW)))

	return e.colors.box(innerW, sb.String())
}

// renderInput draws the visible window of the input, scrolled so the cursor
// cell is on screen.
func (e *LineEdit) renderInput(width int) string {
	before, cursorCell, after := e.cells()
	cursorCol := ansi.StringWidth(before)

	offset := 0
	if cursorCol >= width {
		offset = cursorCol - width + 1
	}

	// A tab under the cursor highlights only its first cell.
	head, tail := cursorCell, ""
	if len(cursorCell) > 1 && cursorCell[0] == ' ' {
		head, tail = " ", cursorCell[1:]
	}
	line := before + lipgloss.NewStyle().Reverse(true).Render(head) + tail + after
	return ansi.Cut(line, offset, offset+width)
}

// cells expands the input around the cursor. Tabs become spaces aligned to
// the tab width; the cursor cell is a space when past the end.
func (e *LineEdit) cells() (before, cursor, after string) {
	var b, a strings.Builder
	col := 0
	cursor = " "
	for i, r := range e.input {
		var cell string
		if r == '\t' {
			cell = strings.Repeat(" ", e.tabWidth-col%e.tabWidth)
		} else {
			cell = string(r)
		}
		col += ansi.StringWidth(cell)
		switch {
		case i < e.cursor:
			b.WriteString(cell)
		case i == e.cursor:
			cursor = cell
		default:
			a.WriteString(cell)
		}
	}
	return b.String(), cursor, a.String()
}
