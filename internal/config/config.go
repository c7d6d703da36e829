// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/chroma/v2/styles"
)

// Config is the root configuration structure.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	History HistoryConfig `toml:"history"`
	Keys    KeysConfig    `toml:"keys"`
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// SyntaxTheme is the Chroma theme used for highlighting and for the UI
	// palette. "none" disables highlighting.
	SyntaxTheme      string `toml:"syntax_theme"`
	TabWidth         int    `toml:"tab_width"`
	ScrollStep       int    `toml:"scroll_step"`
	RepeatIntervalMS int    `toml:"repeat_interval_ms"`
}

// HistoryConfig controls the edit journal used for undo.
type HistoryConfig struct {
	Enabled    bool `toml:"enabled"`
	MaxEntries int  `toml:"max_entries"`
}

// KeysConfig overrides key bindings. Empty lists keep the defaults.
type KeysConfig struct {
	Up       []string `toml:"up"`
	Down     []string `toml:"down"`
	PageUp   []string `toml:"page_up"`
	PageDown []string `toml:"page_down"`
	Left     []string `toml:"left"`
	Right    []string `toml:"right"`
	Open     []string `toml:"open"`
	Back     []string `toml:"back"`
	Undo     []string `toml:"undo"`
	History  []string `toml:"history"`
}

// Map returns the overrides keyed by binding name.
func (k KeysConfig) Map() map[string][]string {
	return map[string][]string{
		"up":        k.Up,
		"down":      k.Down,
		"page_up":   k.PageUp,
		"page_down": k.PageDown,
		"left":      k.Left,
		"right":     k.Right,
		"open":      k.Open,
		"back":      k.Back,
		"undo":      k.Undo,
		"history":   k.History,
	}
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			SyntaxTheme:      "vulcan",
			TabWidth:         4,
			ScrollStep:       8,
			RepeatIntervalMS: 30,
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 100,
		},
	}
}

// Load reads configuration from a TOML file on top of the defaults and
// applies environment variable overrides. An empty path means the default
// location, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.toml")
	}

	if _, err := os.Stat(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.UI.TabWidth < 1 || c.UI.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("ui.tab_width=%d must be between 1 and 16", c.UI.TabWidth))
	}
	if c.UI.ScrollStep < 1 {
		errs = append(errs, fmt.Errorf("ui.scroll_step=%d must be positive", c.UI.ScrollStep))
	}
	if c.UI.RepeatIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("ui.repeat_interval_ms=%d must not be negative", c.UI.RepeatIntervalMS))
	}
	if c.HighlightEnabled() {
		if _, ok := styles.Registry[c.UI.SyntaxTheme]; !ok {
			errs = append(errs, fmt.Errorf("ui.syntax_theme=%q is not a known theme", c.UI.SyntaxTheme))
		}
	}
	if c.History.Enabled && c.History.MaxEntries < 1 {
		errs = append(errs, fmt.Errorf("history.max_entries=%d must be positive", c.History.MaxEntries))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// HighlightEnabled reports whether a syntax theme is configured.
func (c *Config) HighlightEnabled() bool {
	return c.UI.SyntaxTheme != "" && c.UI.SyntaxTheme != "none"
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"LINEPAD_THEME", func(v string) {
			if v != "" {
				cfg.UI.SyntaxTheme = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the linepad data directory. LINEPAD_DATA_DIR overrides the
// default of ~/.config/linepad.
func DataDir() (string, error) {
	if dir := os.Getenv("LINEPAD_DATA_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "linepad"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
