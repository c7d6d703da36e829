package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaultsWhenDefaultFileMissing(t *testing.T) {
	t.Setenv("LINEPAD_DATA_DIR", t.TempDir())
	t.Setenv("LINEPAD_THEME", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	t.Setenv("LINEPAD_THEME", "")
	path := writeConfig(t, `
[ui]
syntax_theme = "monokai"
tab_width = 8

[history]
enabled = false

[keys]
up = ["up", "w"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.SyntaxTheme != "monokai" || cfg.UI.TabWidth != 8 {
		t.Errorf("ui not applied: %+v", cfg.UI)
	}
	if cfg.UI.ScrollStep != 8 {
		t.Errorf("unset field lost its default: %d", cfg.UI.ScrollStep)
	}
	if cfg.History.Enabled {
		t.Error("history should be disabled")
	}
	if !reflect.DeepEqual(cfg.Keys.Up, []string{"up", "w"}) {
		t.Errorf("keys.up = %v", cfg.Keys.Up)
	}
}

func TestEnvThemeOverride(t *testing.T) {
	t.Setenv("LINEPAD_THEME", "dracula")
	cfg, err := Load(writeConfig(t, `[ui]
syntax_theme = "monokai"
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.SyntaxTheme != "dracula" {
		t.Errorf("theme = %q, want dracula", cfg.UI.SyntaxTheme)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.UI.TabWidth = 0
	cfg.UI.ScrollStep = 0
	cfg.UI.SyntaxTheme = "no-such-theme"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"tab_width", "scroll_step", "syntax_theme"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("missing %q in %v", want, err)
		}
	}
}

func TestThemeNoneDisablesHighlight(t *testing.T) {
	cfg := Default()
	cfg.UI.SyntaxTheme = "none"
	if cfg.HighlightEnabled() {
		t.Error("expected highlighting disabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "[ui\n"))
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestKeysMap(t *testing.T) {
	k := KeysConfig{Down: []string{"n"}, History: []string{"ctrl+h"}}
	m := k.Map()
	if got := m["down"]; len(got) != 1 || got[0] != "n" {
		t.Errorf("down = %v", got)
	}
	if got := m["history"]; len(got) != 1 || got[0] != "ctrl+h" {
		t.Errorf("history = %v", got)
	}
	if len(m["up"]) != 0 {
		t.Errorf("up should be empty, got %v", m["up"])
	}
}
