package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/linepad/internal/highlight"
	"github.com/xonecas/linepad/internal/tui/modal"
	"github.com/xonecas/linepad/internal/viewer"
)

const timeLayout = "2006-01-02 15:04:05"

func (m *Model) openActions() {
	labels := make([]string, len(viewer.Actions))
	for i, a := range viewer.Actions {
		labels[i] = a.String()
	}
	d := modal.NewDialog(m.viewer.ActionTitle(), savedLabel, labels, m.modalColors())
	m.actions = &d
}

func (m *Model) openLineEdit() {
	title := fmt.Sprintf("Edit line %d", m.viewer.Cursor()+1)
	e := modal.NewLineEdit(title, m.viewer.Line(), m.cfg.UI.TabWidth, m.modalColors())
	m.edit = &e
}

func (m *Model) openHistory(path string) {
	if m.store == nil {
		m.setStatus("History is disabled", false)
		return
	}
	entries, err := m.store.History(path, m.cfg.History.MaxEntries)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("failed to load edit history")
		m.setStatus("History failed: "+err.Error(), true)
		return
	}
	if len(entries) == 0 {
		m.setStatus("No edit history", false)
		return
	}

	hl := highlight.New("diff", m.theme)
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.Created.Format(timeLayout))
		sb.WriteByte('\n')
		for l := range strings.SplitSeq(strings.TrimRight(e.Diff, "\n"), "\n") {
			sb.WriteString(hl.Line(l, m.palette.Bg))
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	h := modal.NewHistory(fmt.Sprintf("History: %s (%d)", path, len(entries)), sb.String(), m.modalColors())
	h.SetSize(m.width, m.height)
	m.history = &h
}

// isInput reports whether msg is user input that a modal swallows.
func isInput(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.KeyPressMsg, tea.MouseMsg, tea.PasteMsg:
		return true
	}
	return false
}

func (m *Model) updateNotice(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.notice == nil {
		return *m, nil, false
	}
	switch m.notice.HandleMsg(msg).(type) {
	case modal.ActionClose, modal.ActionSelect:
		m.notice = nil
		return *m, tea.Quit, true
	}
	return *m, nil, isInput(msg)
}

func (m *Model) updateActions(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.actions == nil {
		return *m, nil, false
	}
	switch a := m.actions.HandleMsg(msg).(type) {
	case modal.ActionClose:
		m.actions = nil
		return *m, nil, true
	case modal.ActionSelect:
		m.actions = nil
		action := viewer.Actions[a.Index]
		if action == viewer.ActionEdit {
			m.openLineEdit()
			return *m, nil, true
		}
		m.setSaveStatus(m.viewer.Apply(action))
		return *m, nil, true
	}
	return *m, nil, isInput(msg)
}

func (m *Model) updateLineEdit(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.edit == nil {
		return *m, nil, false
	}
	switch a := m.edit.HandleMsg(msg).(type) {
	case modal.ActionClose:
		m.edit = nil
		return *m, nil, true
	case modal.ActionCommit:
		m.edit = nil
		if a.Text == m.viewer.Line() {
			return *m, nil, true
		}
		m.setSaveStatus(m.viewer.ReplaceLine(a.Text))
		return *m, nil, true
	}
	return *m, nil, isInput(msg)
}

func (m *Model) updateHistory(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.history == nil {
		return *m, nil, false
	}
	if _, ok := m.history.HandleMsg(msg).(modal.ActionClose); ok {
		m.history = nil
		return *m, nil, true
	}
	return *m, nil, isInput(msg)
}
