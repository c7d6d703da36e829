// Package viewer provides a scrollable, line-editable text viewer component
// for bubbletea.
//
// The viewer keeps two parallel buffers: the raw lines as they are on disk
// and a display copy with tabs expanded. Both always have the same length and
// are never empty. Every edit is written back to disk immediately.
package viewer

import (
	"time"

	"github.com/xonecas/linepad/internal/highlight"
	"github.com/xonecas/linepad/internal/textfile"
)

const (
	headerRows = 1 // title bar
	margin     = 1 // cells left and right of the text

	defaultTabWidth = 4
	defaultXStep    = 8

	maxTitleLen = 60
)

// Journal records file snapshots before edits so they can be undone. Pop
// hands the newest snapshot to restore only while current matches what that
// edit saved, and forgets it once restore succeeds.
type Journal interface {
	Record(path string, before, after []string) error
	Pop(path string, current []string, restore func(before []string) error) (ok bool, err error)
}

// Options configures a viewer. Zero values select defaults.
type Options struct {
	TabWidth       int
	XStep          int // horizontal scroll step in cells
	RepeatInterval time.Duration
	Keys           KeyMap
	Styles         Styles
	Highlighter    *highlight.Highlighter
	Journal        Journal
	Now            func() time.Time
}

// Model is the viewer state.
type Model struct {
	path    string
	lines   []string // raw lines, one per file line
	display []string // lines with tabs expanded

	current int // cursor line
	first   int // first visible line
	clipX   int // horizontal offset in cells

	width  int
	height int

	tabWidth       int
	xStep          int
	repeatInterval time.Duration
	lastRepeat     time.Time

	keys    KeyMap
	styles  Styles
	hl      *highlight.Highlighter
	journal Journal
	now     func() time.Time
}

// Open loads path and returns a viewer over its lines. The error wraps
// textfile.ErrOpen when the file cannot be opened.
func Open(path string, opts Options) (Model, error) {
	lines, err := textfile.Load(path)
	if err != nil {
		return Model{}, err
	}
	return New(path, lines, opts), nil
}

// New returns a viewer over lines. path is where edits are saved.
func New(path string, lines []string, opts Options) Model {
	if len(lines) == 0 {
		lines = []string{""}
	}
	m := Model{
		path:           path,
		lines:          lines,
		tabWidth:       opts.TabWidth,
		xStep:          opts.XStep,
		repeatInterval: opts.RepeatInterval,
		keys:           opts.Keys,
		styles:         opts.Styles,
		hl:             opts.Highlighter,
		journal:        opts.Journal,
		now:            opts.Now,
	}
	if m.tabWidth <= 0 {
		m.tabWidth = defaultTabWidth
	}
	if m.xStep <= 0 {
		m.xStep = defaultXStep
	}
	if m.keys.isZero() {
		m.keys = DefaultKeyMap()
	}
	if m.styles.isZero() {
		m.styles = DefaultStyles(highlight.DefaultPalette())
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.rebuildDisplay()
	return m
}

func (m *Model) rebuildDisplay() {
	m.display = make([]string, len(m.lines))
	for i, l := range m.lines {
		m.display[i] = m.displayLine(l)
	}
}

func (m *Model) displayLine(raw string) string {
	return textfile.ExpandTabs(raw, m.tabWidth)
}

// Path returns the file the viewer saves to.
func (m Model) Path() string { return m.path }

// Lines returns the raw line buffer. Callers must not modify it.
func (m Model) Lines() []string { return m.lines }

// DisplayLines returns the tab-expanded buffer. Callers must not modify it.
func (m Model) DisplayLines() []string { return m.display }

// Line returns the raw text of the cursor line.
func (m Model) Line() string { return m.lines[m.current] }

// Cursor returns the cursor line index.
func (m Model) Cursor() int { return m.current }

// First returns the first visible line index.
func (m Model) First() int { return m.first }

// ClipX returns the horizontal scroll offset in cells.
func (m Model) ClipX() int { return m.clipX }

// Keys returns the key map in use.
func (m Model) Keys() KeyMap { return m.keys }

// SetSize sets the widget size in cells, title bar included, and re-clamps
// the scroll offset so the cursor stays visible.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.ensureVisible()
}

// VisibleLines is the number of lines that fit under the title bar.
func (m Model) VisibleLines() int {
	n := m.height - headerRows
	if n < 1 {
		return 1
	}
	return n
}

// MaxFirstLine is the largest valid first visible line.
func (m Model) MaxFirstLine() int {
	return max(0, len(m.lines)-m.VisibleLines())
}

// SetPosition moves the cursor and scroll offset, clamped to the buffer.
func (m *Model) SetPosition(cursor, first int) {
	m.current = clamp(cursor, 0, len(m.lines)-1)
	m.first = clamp(first, 0, m.MaxFirstLine())
	m.ensureVisible()
}

// ensureVisible scrolls the minimum amount needed to show the cursor and
// keeps first within [0, MaxFirstLine].
func (m *Model) ensureVisible() {
	visible := m.VisibleLines()
	if m.current < m.first {
		m.first = m.current
	}
	if m.current > m.first+visible-1 {
		m.first = m.current - visible + 1
	}
	m.first = clamp(m.first, 0, m.MaxFirstLine())
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
