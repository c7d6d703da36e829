// Package main is the entry point for linepad.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/linepad/internal/config"
	"github.com/xonecas/linepad/internal/store"
	"github.com/xonecas/linepad/internal/tui"
)

// Version information (set via ldflags during build).
var version = "dev"

type options struct {
	ConfigPath  string
	LogPath     string
	LogLevel    string
	ShowHistory bool
	File        string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	dataDir, err := config.EnsureDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create data directory: %v\n", err)
		return 1
	}

	closeLog, err := setupLogging(opts, dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	var st *store.Store
	if cfg.History.Enabled || opts.ShowHistory {
		st, err = store.Open(filepath.Join(dataDir, "linepad.db"), cfg.History.MaxEntries)
		if err != nil {
			// Editing still works without undo and position memory.
			log.Warn().Err(err).Msg("failed to open store, history disabled")
			st = nil
		}
		defer st.Close()
	}

	if opts.ShowHistory {
		if st == nil {
			fmt.Fprintln(os.Stderr, "Error: history store unavailable")
			return 1
		}
		if err := printHistory(os.Stdout, st, opts.File, cfg.History.MaxEntries); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	p := tea.NewProgram(
		tui.New(opts.File, tui.Options{Config: cfg, Store: st}),
		tea.WithFilter(tui.MouseEventFilter),
	)
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running linepad: %v\n", err)
		return 1
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", m.Err())
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.LogPath, "log", "", "Log file (default <data dir>/linepad.log)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.ShowHistory, "history", false, "Print the edit history of FILE and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "linepad - view and edit a text file line by line\n\n")
		fmt.Fprintf(os.Stderr, "Usage: linepad [options] FILE\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("linepad %s\n", version)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.File = flag.Arg(0)
	return opts
}

// setupLogging points the global logger at a file, since the terminal
// belongs to the UI.
func setupLogging(opts options, dataDir string) (func(), error) {
	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	path := opts.LogPath
	if path == "" {
		path = filepath.Join(dataDir, "linepad.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }, nil
}

func printHistory(w io.Writer, st *store.Store, path string, limit int) error {
	if limit < 1 {
		limit = config.Default().History.MaxEntries
	}
	entries, err := st.History(path, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(w, "no edit history for %s\n", path)
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "# %s\n%s\n", e.Created.Format("2006-01-02 15:04:05"), e.Diff)
	}
	return nil
}
