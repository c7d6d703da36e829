package viewer

import (
	"reflect"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func press(code rune, text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: text}
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestUpdateNavigationKeys(t *testing.T) {
	m := sized(numbered(20), 5)
	steps := []struct {
		msg        tea.KeyPressMsg
		wantCursor int
		wantClip   int
	}{
		{tea.KeyPressMsg{Code: tea.KeyDown}, 1, 0},
		{press('j', "j"), 2, 0},
		{tea.KeyPressMsg{Code: tea.KeyUp}, 1, 0},
		{press('k', "k"), 0, 0},
		{tea.KeyPressMsg{Code: tea.KeyPgDown}, 4, 0},
		{tea.KeyPressMsg{Code: tea.KeyPgUp}, 0, 0},
		{tea.KeyPressMsg{Code: tea.KeyRight}, 0, 8},
		{press('l', "l"), 0, 16},
		{press('h', "h"), 0, 8},
		{tea.KeyPressMsg{Code: tea.KeyLeft}, 0, 0},
	}
	for i, s := range steps {
		var cmd tea.Cmd
		m, cmd = m.Update(s.msg)
		if cmd != nil {
			t.Errorf("step %d: unexpected command", i)
		}
		if m.Cursor() != s.wantCursor || m.ClipX() != s.wantClip {
			t.Errorf("step %d (%s): cursor=%d clip=%d, want %d,%d",
				i, s.msg, m.Cursor(), m.ClipX(), s.wantCursor, s.wantClip)
		}
	}
}

func TestUpdateEmitsMessages(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		want tea.Msg
	}{
		{"q closes", press('q', "q"), CloseMsg{}},
		{"esc closes", tea.KeyPressMsg{Code: tea.KeyEscape}, CloseMsg{}},
		{"enter opens", tea.KeyPressMsg{Code: tea.KeyEnter}, OpenActionsMsg{Line: 2}},
		{"space opens", tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}, OpenActionsMsg{Line: 2}},
		{"undo without journal", press('u', "u"), UndoneMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sized(numbered(5), 5)
			m.SetPosition(2, 0)
			_, cmd := m.Update(tt.msg)
			if got := runCmd(t, cmd); got != tt.want {
				t.Errorf("msg = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestUpdateUndoKey(t *testing.T) {
	j := &fakeJournal{}
	m := editable(t, []string{"a", "b"}, Options{Journal: j})
	if err := m.Apply(ActionRemove); err != nil {
		t.Fatal(err)
	}
	m, cmd := m.Update(tea.KeyPressMsg{Code: 'z', Mod: tea.ModCtrl})
	got, ok := runCmd(t, cmd).(UndoneMsg)
	if !ok || !got.OK || got.Err != nil {
		t.Fatalf("msg = %#v", got)
	}
	if len(m.Lines()) != 2 {
		t.Errorf("lines = %q", m.Lines())
	}
}

func TestKeyOverride(t *testing.T) {
	keys := DefaultKeyMap()
	keys.Override(map[string][]string{"down": {"n"}})
	m := New("f", numbered(3), Options{Keys: keys})
	m.SetSize(40, 5)

	m, _ = m.Update(press('j', "j"))
	if m.Cursor() != 0 {
		t.Error("j should no longer move down")
	}
	m, _ = m.Update(press('n', "n"))
	if m.Cursor() != 1 {
		t.Error("n should move down")
	}
	if m.Keys().Down.Help().Desc != "down" {
		t.Error("override must keep help text")
	}
}

func TestRepeatThrottle(t *testing.T) {
	now := time.Unix(1000, 0)
	m := New("f", numbered(50), Options{
		RepeatInterval: 30 * time.Millisecond,
		Now:            func() time.Time { return now },
	})
	m.SetSize(40, 10)

	held := tea.KeyPressMsg{Code: tea.KeyDown, IsRepeat: true}
	m, _ = m.Update(held)
	if m.Cursor() != 1 {
		t.Fatalf("first repeat should move, cursor = %d", m.Cursor())
	}
	now = now.Add(10 * time.Millisecond)
	m, _ = m.Update(held)
	if m.Cursor() != 1 {
		t.Errorf("repeat inside the interval should be dropped, cursor = %d", m.Cursor())
	}
	now = now.Add(25 * time.Millisecond)
	m, _ = m.Update(held)
	if m.Cursor() != 2 {
		t.Errorf("repeat after the interval should move, cursor = %d", m.Cursor())
	}

	// Fresh presses are never throttled.
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Cursor() != 4 {
		t.Errorf("cursor = %d, want 4", m.Cursor())
	}
}

func TestRepeatOnlyMoves(t *testing.T) {
	now := time.Unix(1000, 0)
	j := &fakeJournal{}
	m := editable(t, []string{"a", "b", "c"}, Options{
		Journal:        j,
		RepeatInterval: 30 * time.Millisecond,
		Now:            func() time.Time { return now },
	})
	for range 2 {
		if err := m.Apply(ActionRemove); err != nil {
			t.Fatal(err)
		}
	}

	m, cmd := m.Update(press('u', "u"))
	if got, ok := runCmd(t, cmd).(UndoneMsg); !ok || !got.OK {
		t.Fatalf("msg = %#v", got)
	}
	now = now.Add(40 * time.Millisecond)
	m, cmd = m.Update(tea.KeyPressMsg{Code: 'u', Text: "u", IsRepeat: true})
	if cmd != nil {
		t.Errorf("held undo should not fire again, msg = %#v", runCmd(t, cmd))
	}
	if !reflect.DeepEqual(m.Lines(), []string{"b", "c"}) {
		t.Errorf("lines = %q, want one undo applied", m.Lines())
	}

	for _, held := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter, IsRepeat: true},
		{Code: 'H', Text: "H", IsRepeat: true},
		{Code: tea.KeyEscape, IsRepeat: true},
	} {
		now = now.Add(40 * time.Millisecond)
		if _, cmd := m.Update(held); cmd != nil {
			t.Errorf("held %s emitted %#v", held.String(), runCmd(t, cmd))
		}
	}
}

func TestUpdateMouse(t *testing.T) {
	m := sized(numbered(10), 4)

	m, cmd := m.Update(tea.MouseClickMsg{Button: tea.MouseLeft, Y: 3})
	if cmd != nil || m.Cursor() != 2 {
		t.Fatalf("click should move the cursor, cursor = %d", m.Cursor())
	}
	_, cmd = m.Update(tea.MouseClickMsg{Button: tea.MouseLeft, Y: 3})
	if got := runCmd(t, cmd); got != (OpenActionsMsg{Line: 2}) {
		t.Errorf("clicking the cursor line should open actions, got %#v", got)
	}

	_, cmd = m.Update(tea.MouseClickMsg{Button: tea.MouseRight, Y: 1})
	if got := runCmd(t, cmd); got != (CloseMsg{}) {
		t.Errorf("right click should close, got %#v", got)
	}
	_, cmd = m.Update(tea.MouseClickMsg{Button: tea.MouseBackward})
	if got := runCmd(t, cmd); got != (CloseMsg{}) {
		t.Errorf("back button should close, got %#v", got)
	}

	m, _ = m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if m.Cursor() != 3 {
		t.Errorf("wheel down: cursor = %d", m.Cursor())
	}
	m, _ = m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if m.Cursor() != 2 {
		t.Errorf("wheel up: cursor = %d", m.Cursor())
	}
	m, _ = m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelRight})
	if m.ClipX() != defaultXStep {
		t.Errorf("wheel right: clip = %d", m.ClipX())
	}
	m, _ = m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelLeft})
	if m.ClipX() != 0 {
		t.Errorf("wheel left: clip = %d", m.ClipX())
	}
}
