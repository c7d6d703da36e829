package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadNormalisesLines(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{"trailing newline", "a\nb\nc\n", []string{"a", "b", "c"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"empty file", "", []string{""}},
		{"single newline", "\n", []string{""}},
		{"blank last line kept once", "a\n\n", []string{"a", ""}},
		{"bom", "\uFEFFhello\nworld\n", []string{"hello", "world"}},
		{"bom only stripped once", "\uFEFF\uFEFFx\n", []string{"\uFEFFx"}},
		{"bom on later line kept", "a\n\uFEFFb\n", []string{"a", "\uFEFFb"}},
		{"tabs preserved", "\tx\n", []string{"\tx"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(writeTemp(t, tc.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestSaveTruncatesAndTerminates(t *testing.T) {
	path := writeTemp(t, "a much longer previous content\nwith lines\n")
	if err := Save(path, []string{"x", "", "y"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "x\n\ny\n" {
		t.Errorf("got %q", data)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := writeTemp(t, "\uFEFFone\r\n\ttwo\r\n\r\nthree")
	first, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(path, first); err != nil {
		t.Fatal(err)
	}
	second, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed lines: %q vs %q", first, second)
	}
	data, _ := os.ReadFile(path)
	if strings.HasPrefix(string(data), "\uFEFF") {
		t.Error("BOM must not be re-added on save")
	}
}

func TestSaveUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "file.txt")
	if err := Save(path, []string{"a"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestExpandTabs(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"\thello", 4, "    hello"},
		{"\t\thello", 4, "        hello"},
		{"ab\tc", 4, "ab  c"},
		{"abcd\te", 4, "abcd    e"},
		{"no tabs", 4, "no tabs"},
		{"a\tb", 8, "a       b"},
		{"a\tb", 0, "a\tb"},
	}
	for _, tc := range cases {
		if got := ExpandTabs(tc.in, tc.width); got != tc.want {
			t.Errorf("ExpandTabs(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
