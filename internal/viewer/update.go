package viewer

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
)

// OpenActionsMsg asks the host to show the action dialog for Line.
type OpenActionsMsg struct{ Line int }

// CloseMsg asks the host to close the viewer.
type CloseMsg struct{}

// HistoryMsg asks the host to show the edit history of the file.
type HistoryMsg struct{ Path string }

// UndoneMsg reports the outcome of an undo request.
type UndoneMsg struct {
	OK  bool
	Err error
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Update handles key and mouse input. Mouse coordinates are relative to the
// widget origin.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.IsRepeat && (!m.isMovement(msg) || !m.repeatDue()) {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		switch msg.Button {
		case tea.MouseLeft:
			if open, _ := m.Click(msg.Y); open {
				return m, emit(OpenActionsMsg{Line: m.current})
			}
		case tea.MouseRight, tea.MouseBackward:
			return m, emit(CloseMsg{})
		}

	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			m.Wheel(0, 1)
		case tea.MouseWheelDown:
			m.Wheel(0, -1)
		case tea.MouseWheelLeft:
			m.Wheel(-1, 0)
		case tea.MouseWheelRight:
			m.Wheel(1, 0)
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, emit(CloseMsg{})
	case key.Matches(msg, m.keys.Open):
		return m, emit(OpenActionsMsg{Line: m.current})
	case key.Matches(msg, m.keys.Up):
		m.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.MoveDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.PageDown()
	case key.Matches(msg, m.keys.Left):
		m.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.MoveRight()
	case key.Matches(msg, m.keys.Undo):
		ok, err := m.Undo()
		if err != nil {
			log.Error().Err(err).Str("file", m.path).Msg("undo failed")
		}
		return m, emit(UndoneMsg{OK: ok, Err: err})
	case key.Matches(msg, m.keys.History):
		return m, emit(HistoryMsg{Path: m.path})
	}
	return m, nil
}

// isMovement reports whether msg is bound to cursor or clip movement, the
// only bindings that re-fire while held.
func (m Model) isMovement(msg tea.KeyPressMsg) bool {
	k := m.keys
	return key.Matches(msg, k.Up, k.Down, k.PageUp, k.PageDown, k.Left, k.Right)
}

// repeatDue rate-limits held-key repeats to one per repeat interval.
func (m *Model) repeatDue() bool {
	if m.repeatInterval <= 0 {
		return true
	}
	now := m.now()
	if now.Sub(m.lastRepeat) < m.repeatInterval {
		return false
	}
	m.lastRepeat = now
	return true
}
