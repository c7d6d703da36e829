package viewer

// MoveUp moves the cursor up by step lines, stopping at the first line.
func (m *Model) MoveUp(step int) bool {
	changed := false
	if m.current > 0 {
		m.current = max(0, m.current-step)
		changed = true
	}
	if m.current < m.first {
		m.first = m.current
	}
	return changed
}

// MoveDown moves the cursor down by step lines, stopping at the last line.
func (m *Model) MoveDown(step int) bool {
	changed := false
	if m.current+1 < len(m.lines) {
		m.current = min(m.current+step, len(m.lines)-1)
		changed = true
	}
	visible := m.VisibleLines()
	if m.current > m.first+visible-1 {
		m.first = min(m.current-visible+1, m.MaxFirstLine())
	}
	return changed
}

// PageUp moves up by one viewport height minus one line.
func (m *Model) PageUp() bool { return m.MoveUp(m.pageStep()) }

// PageDown moves down by one viewport height minus one line.
func (m *Model) PageDown() bool { return m.MoveDown(m.pageStep()) }

func (m *Model) pageStep() int {
	return max(1, m.VisibleLines()-1)
}

// MoveLeft scrolls left by one step, stopping at column zero.
func (m *Model) MoveLeft() bool {
	if m.clipX == 0 {
		return false
	}
	m.clipX = max(0, m.clipX-m.xStep)
	return true
}

// MoveRight scrolls right by one step. There is no right bound.
func (m *Model) MoveRight() bool {
	m.clipX += m.xStep
	return true
}

// LineAt returns the buffer line shown at widget row y, or -1 when y is
// on the title bar, below the viewport, or past the end of the buffer.
func (m Model) LineAt(y int) int {
	row := y - headerRows
	if row < 0 || row >= m.VisibleLines() {
		return -1
	}
	line := m.first + row
	if line >= len(m.lines) {
		return -1
	}
	return line
}

// Click handles a primary click at widget row y. It returns open=true when
// the click landed on the cursor line, and changed=true when the cursor
// moved.
func (m *Model) Click(y int) (open, changed bool) {
	line := m.LineAt(y)
	if line < 0 {
		return false, false
	}
	if line == m.current {
		return true, false
	}
	m.current = line
	return false, true
}

// Wheel applies a wheel event: positive dy scrolls up, negative down;
// negative dx scrolls left, positive right.
func (m *Model) Wheel(dx, dy int) bool {
	changed := false
	if dy > 0 {
		changed = m.MoveUp(1) || changed
	} else if dy < 0 {
		changed = m.MoveDown(1) || changed
	}
	if dx < 0 {
		changed = m.MoveLeft() || changed
	} else if dx > 0 {
		changed = m.MoveRight() || changed
	}
	return changed
}
