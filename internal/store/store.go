// Package store persists the edit journal and remembered viewer positions in
// SQLite. All methods are safe to call on a nil *Store, which stores nothing.
package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS edit_journal (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	file_path TEXT NOT NULL,
	before    TEXT NOT NULL,
	after_hash TEXT NOT NULL DEFAULT '',
	diff      TEXT NOT NULL,
	created   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS positions (
	file_path TEXT PRIMARY KEY,
	cursor    INTEGER NOT NULL,
	first     INTEGER NOT NULL,
	updated   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_journal_path ON edit_journal(file_path, id);
`

// Store is a SQLite-backed journal of file snapshots plus per-file positions.
type Store struct {
	mu         sync.Mutex
	db         *sql.DB
	maxEntries int
}

// Open creates or opens a store database at dbPath. maxEntries bounds the
// journal length per file.
func Open(dbPath string, maxEntries int) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	// Journals written before after_hash existed get an empty hash, which
	// never matches, so their entries cannot be undone.
	if !hasColumn(db, "edit_journal", "after_hash") {
		db.Exec(`ALTER TABLE edit_journal ADD COLUMN after_hash TEXT NOT NULL DEFAULT ''`) //nolint:errcheck // best-effort migration
	}

	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Store{db: db, maxEntries: maxEntries}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// fileKey makes paths comparable across working directories.
func fileKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func hasColumn(db *sql.DB, table, column string) bool {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table)) //nolint:gosec // table name is hardcoded by caller
	if err != nil {
		return false
	}
	defer rows.Close()
	for rows.Next() {
		var cid, notNull, pk int
		var name, typ string
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			continue
		}
		if name == column {
			return true
		}
	}
	return false
}
