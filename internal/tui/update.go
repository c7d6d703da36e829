package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/linepad/internal/viewer"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case tea.KeyPressMsg:
		if msg.Keystroke() == "ctrl+c" {
			return m, m.quit()
		}
	}

	// Modals take every input while open.
	if mdl, cmd, handled := m.updateNotice(msg); handled {
		return mdl, cmd
	}
	if mdl, cmd, handled := m.updateLineEdit(msg); handled {
		return mdl, cmd
	}
	if mdl, cmd, handled := m.updateActions(msg); handled {
		return mdl, cmd
	}
	if mdl, cmd, handled := m.updateHistory(msg); handled {
		return mdl, cmd
	}

	switch msg := msg.(type) {
	case viewer.OpenActionsMsg:
		m.openActions()
		return m, nil

	case viewer.CloseMsg:
		return m, m.quit()

	case viewer.UndoneMsg:
		switch {
		case msg.Err != nil:
			m.setStatus("Undo failed: "+msg.Err.Error(), true)
		case msg.OK:
			m.setStatus("Undone", false)
		default:
			m.setStatus("Nothing to undo", false)
		}
		return m, nil

	case viewer.HistoryMsg:
		m.openHistory(msg.Path)
		return m, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseWheelMsg:
		if m.openErr != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleResize applies a window size change to the hosted components.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.help.SetWidth(max(0, m.width-1))
	if m.openErr == nil {
		m.viewer.SetSize(m.width, max(1, m.height-footerRows))
	}
	if m.history != nil {
		m.history.SetSize(m.width, m.height)
	}
	log.Debug().Int("width", m.width).Int("height", m.height).Msg("resize")
}
