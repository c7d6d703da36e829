package viewer

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/xonecas/linepad/internal/textfile"
)

// Action is a line-level edit offered by the action dialog.
type Action int

const (
	ActionEdit Action = iota
	ActionDuplicate
	ActionInsertBefore
	ActionInsertAfter
	ActionRemove
)

// Actions lists every action in dialog order.
var Actions = []Action{
	ActionEdit,
	ActionDuplicate,
	ActionInsertBefore,
	ActionInsertAfter,
	ActionRemove,
}

func (a Action) String() string {
	switch a {
	case ActionEdit:
		return "Edit line"
	case ActionDuplicate:
		return "Duplicate line"
	case ActionInsertBefore:
		return "Insert line before"
	case ActionInsertAfter:
		return "Insert line after"
	case ActionRemove:
		return "Remove line"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ActionTitle is the dialog title for the cursor line: its 1-based number
// and display text, shortened to 60 bytes.
func (m Model) ActionTitle() string {
	text := m.display[m.current]
	if len(text) > maxTitleLen {
		n := maxTitleLen - 3
		for n > 0 && !utf8.RuneStart(text[n]) {
			n--
		}
		text = text[:n] + "..."
	}
	return fmt.Sprintf("Line %d: %s", m.current+1, text)
}

// ReplaceLine sets the cursor line to text and saves. Unchanged text is not
// written.
func (m *Model) ReplaceLine(text string) error {
	if text == m.lines[m.current] {
		return nil
	}
	before := slices.Clone(m.lines)
	m.lines[m.current] = text
	m.display[m.current] = m.displayLine(text)
	return m.save(before)
}

// Apply performs a structural action on the cursor line and saves.
// ActionEdit needs the new text and goes through ReplaceLine instead.
func (m *Model) Apply(a Action) error {
	before := slices.Clone(m.lines)
	switch a {
	case ActionDuplicate:
		m.insert(m.current+1, m.lines[m.current])
		m.nudgeDown()
	case ActionInsertBefore:
		m.insert(m.current, "")
		m.current++
		if m.current > m.first+m.VisibleLines()-1 {
			m.nudgeDown()
		}
	case ActionInsertAfter:
		m.insert(m.current+1, "")
		m.nudgeDown()
	case ActionRemove:
		m.lines = slices.Delete(m.lines, m.current, m.current+1)
		m.display = slices.Delete(m.display, m.current, m.current+1)
		if len(m.lines) == 0 {
			m.lines = append(m.lines, "")
			m.display = append(m.display, "")
		}
		if m.current >= len(m.lines) {
			m.current = len(m.lines) - 1
		}
	default:
		return fmt.Errorf("action %v does not apply to a line directly", a)
	}
	m.ensureVisible()
	return m.save(before)
}

// Undo restores the newest journal snapshot and saves it. ok is false when
// there is nothing to undo or the buffer no longer matches the journaled
// edit. A failed write leaves both the buffer and the journal untouched.
func (m *Model) Undo() (ok bool, err error) {
	if m.journal == nil {
		return false, nil
	}
	return m.journal.Pop(m.path, m.lines, func(before []string) error {
		if len(before) == 0 {
			before = []string{""}
		}
		if err := textfile.Save(m.path, before); err != nil {
			return err
		}
		m.lines = before
		m.rebuildDisplay()
		m.current = min(m.current, len(m.lines)-1)
		m.ensureVisible()
		return nil
	})
}

func (m *Model) insert(i int, text string) {
	m.lines = slices.Insert(m.lines, i, text)
	m.display = slices.Insert(m.display, i, m.displayLine(text))
}

// nudgeDown scrolls one line down unless already at the bottom.
func (m *Model) nudgeDown() {
	if m.first < m.MaxFirstLine() {
		m.first++
	}
}

// save writes the buffer to disk and journals the previous content. The
// in-memory edit is kept when the write fails.
func (m *Model) save(before []string) error {
	if err := textfile.Save(m.path, m.lines); err != nil {
		log.Error().Err(err).Str("file", m.path).Msg("save failed")
		return err
	}
	if m.journal != nil {
		if err := m.journal.Record(m.path, before, m.lines); err != nil {
			log.Warn().Err(err).Str("file", m.path).Msg("failed to journal edit")
		}
	}
	log.Debug().Str("file", m.path).Int("lines", len(m.lines)).Msg("saved")
	return nil
}
