package highlight

import (
	"strings"
	"testing"
)

func TestDetectLanguage(t *testing.T) {
	cases := map[string]string{
		"main.go":            "go",
		"/etc/app/conf.toml": "toml",
		"README.md":          "markdown",
		"notes.txt":          "text",
		"Makefile":           "make",
		"no-extension":       "text",
		"UPPER.JSON":         "json",
	}
	for path, want := range cases {
		if got := DetectLanguage(path); got != want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestNewDisabledForPlainText(t *testing.T) {
	for _, lang := range []string{"", "text"} {
		if h := New(lang, "vulcan"); h.Enabled() {
			t.Errorf("language %q: expected disabled highlighter", lang)
		}
	}
	if h := New("go", "no-such-theme"); h.Enabled() {
		t.Error("unknown theme: expected disabled highlighter")
	}
}

func TestNilHighlighterPassesThrough(t *testing.T) {
	var h *Highlighter
	if got := h.Line("func main() {}", "#000000"); got != "func main() {}" {
		t.Errorf("got %q", got)
	}
}

func TestLineHighlightsAndCaches(t *testing.T) {
	h := New("go", "vulcan")
	if !h.Enabled() {
		t.Fatal("expected enabled highlighter")
	}
	first := h.Line("package main", "#101010")
	if !strings.Contains(first, "\x1b[") {
		t.Fatalf("expected ANSI output, got %q", first)
	}
	if !strings.HasPrefix(first, "\x1b[48;2;16;16;16m") {
		t.Errorf("expected background prefix, got %q", first)
	}
	if again := h.Line("package main", "#101010"); again != first {
		t.Error("cached result differs")
	}
	if len(h.cache) != 1 {
		t.Errorf("cache size = %d, want 1", len(h.cache))
	}
}

func TestHexToBgSeq(t *testing.T) {
	if got := hexToBgSeq("#ff0080"); got != "\x1b[48;2;255;0;128m" {
		t.Errorf("got %q", got)
	}
	if got := hexToBgSeq("bad"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestThemePaletteDeterministic(t *testing.T) {
	a := ThemePalette("vulcan")
	b := ThemePalette("vulcan")
	if a != b {
		t.Fatal("palette not deterministic")
	}
	if a.CursorBg == a.Bg {
		t.Error("cursor band should differ from background")
	}
	if ThemePalette("no-such-theme") != DefaultPalette() {
		t.Error("unknown theme should fall back to default palette")
	}
}
