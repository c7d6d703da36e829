// Package tui is the linepad application shell: it hosts the viewer, the
// action dialog, the line editor and the status footer.
package tui

import (
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/linepad/internal/config"
	"github.com/xonecas/linepad/internal/highlight"
	"github.com/xonecas/linepad/internal/store"
	"github.com/xonecas/linepad/internal/tui/modal"
	"github.com/xonecas/linepad/internal/viewer"
)

const (
	footerRows = 2 // status line + help line

	savedLabel = "Saved automatically"
)

// Options configures the application. A nil Store disables undo, history
// and position memory.
type Options struct {
	Config *config.Config
	Store  *store.Store
}

// Model is the application model.
type Model struct {
	width  int
	height int

	path    string
	viewer  viewer.Model
	openErr error

	// At most one modal is open at a time.
	actions *modal.Dialog
	edit    *modal.LineEdit
	history *modal.History
	notice  *modal.Dialog // fatal error, dismissing it quits

	status    string
	statusErr bool

	help    help.Model
	styles  Styles
	palette highlight.Palette
	theme   string

	cfg   *config.Config
	store *store.Store
}

// New opens path and returns the application model. A file that cannot be
// opened leaves the model showing an error notice; see Err.
func New(path string, opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	theme := ""
	palette := highlight.DefaultPalette()
	if cfg.HighlightEnabled() {
		theme = cfg.UI.SyntaxTheme
		palette = highlight.ThemePalette(theme)
	}

	m := Model{
		path:    path,
		help:    help.New(),
		styles:  newStyles(palette),
		palette: palette,
		theme:   theme,
		cfg:     cfg,
		store:   opts.Store,
	}
	m.help.Styles = m.styles.Help

	keys := viewer.DefaultKeyMap()
	keys.Override(cfg.Keys.Map())

	vopts := viewer.Options{
		TabWidth:       cfg.UI.TabWidth,
		XStep:          cfg.UI.ScrollStep,
		RepeatInterval: time.Duration(cfg.UI.RepeatIntervalMS) * time.Millisecond,
		Keys:           keys,
		Styles:         viewer.DefaultStyles(palette),
		Highlighter:    highlight.New(highlight.DetectLanguage(path), theme),
	}
	if opts.Store != nil {
		vopts.Journal = opts.Store
	}

	v, err := viewer.Open(path, vopts)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("failed to open file")
		m.openErr = err
		notice := modal.NewDialog("Unable to open file", err.Error(), []string{"OK"}, m.modalColors())
		m.notice = &notice
		return m
	}
	if cursor, first, ok := opts.Store.Position(path); ok {
		v.SetPosition(cursor, first)
	}
	m.viewer = v
	log.Info().Str("file", path).Int("lines", len(v.Lines())).Msg("opened")
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Err returns the error that prevented the file from opening, if any.
func (m Model) Err() error { return m.openErr }

// Viewer returns the hosted viewer.
func (m Model) Viewer() viewer.Model { return m.viewer }

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) modalColors() modal.Colors {
	return modal.Colors{
		Fg:     m.palette.Fg,
		Bg:     m.palette.Bg,
		Dim:    m.palette.Dim,
		SelFg:  m.palette.Bg,
		SelBg:  m.palette.Accent,
		Border: m.palette.Border,
		Accent: m.palette.Accent,
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status, m.statusErr = text, isErr
}

// setSaveStatus reports the outcome of an edit.
func (m *Model) setSaveStatus(err error) {
	if err != nil {
		m.setStatus("Save failed: "+err.Error(), true)
		return
	}
	m.setStatus("Saved", false)
}

// quit remembers the cursor position and ends the program.
func (m *Model) quit() tea.Cmd {
	if m.openErr == nil {
		m.store.SavePosition(m.path, m.viewer.Cursor(), m.viewer.First())
	}
	return tea.Quit
}
