// Package textfile loads and saves plain-text files as a slice of lines.
//
// Loading normalises line endings: a trailing "\r" is dropped from every
// line, a UTF-8 byte-order mark is dropped from the first line, and the empty
// line that follows a final newline is not kept. Saving writes every line
// followed by a single "\n".
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrOpen is wrapped by Load when the file cannot be opened.
var ErrOpen = errors.New("unable to open file")

const bom = "\uFEFF"

// Load reads path line by line. The returned slice is never empty.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	defer f.Close()

	lines, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// Read splits r into normalised lines. The returned slice is never empty.
func Read(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	lines[0] = strings.TrimPrefix(lines[0], bom)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines, nil
}

// Save truncates path and writes lines, one per line, "\n" terminated.
func Save(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		w.WriteString(line) //nolint:errcheck // surfaced by Flush
		w.WriteByte('\n')   //nolint:errcheck // surfaced by Flush
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// ExpandTabs replaces tabs with spaces up to the next multiple of width.
func ExpandTabs(s string, width int) string {
	if width <= 0 || !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			spaces := width - (col % width)
			b.WriteString(strings.Repeat(" ", spaces))
			col += spaces
		} else {
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
