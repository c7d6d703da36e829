package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

const wheelInterval = 15 * time.Millisecond

var lastWheelEvent time.Time

// MouseEventFilter rate-limits wheel events. Pass to tea.WithFilter.
// Never drops clicks.
func MouseEventFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseWheelMsg); ok {
		now := time.Now()
		if now.Sub(lastWheelEvent) < wheelInterval {
			return nil
		}
		lastWheelEvent = now
	}
	return msg
}
