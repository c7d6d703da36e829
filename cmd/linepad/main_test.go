package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xonecas/linepad/internal/store"
)

func TestPrintHistory(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "linepad.db"), 10)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	path := filepath.Join(t.TempDir(), "f.txt")
	var buf bytes.Buffer
	if err := printHistory(&buf, st, path, 0); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "no edit history") {
		t.Errorf("output = %q", buf.String())
	}

	if err := st.Record(path, []string{"old"}, []string{"new"}); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := printHistory(&buf, st, path, 5); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "# ") || !strings.Contains(out, "-old") || !strings.Contains(out, "+new") {
		t.Errorf("output = %q", out)
	}
}

func TestSetupLoggingRejectsLevel(t *testing.T) {
	if _, err := setupLogging(options{LogLevel: "loud"}, t.TempDir()); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	dir := t.TempDir()
	closeLog, err := setupLogging(options{LogLevel: "debug"}, dir)
	if err != nil {
		t.Fatal(err)
	}
	closeLog()
	if _, err := os.Stat(filepath.Join(dir, "linepad.log")); err != nil {
		t.Fatal(err)
	}
}
