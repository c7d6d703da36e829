package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// SavePosition remembers the cursor and first visible line for path.
func (s *Store) SavePosition(path string, cursor, first int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO positions (file_path, cursor, first, updated) VALUES (?, ?, ?, ?)`,
		fileKey(path), cursor, first, time.Now().Unix(),
	)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("failed to save position")
	}
}

// Position returns the remembered position for path.
func (s *Store) Position(path string) (cursor, first int, ok bool) {
	if s == nil {
		return 0, 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.QueryRow(
		`SELECT cursor, first FROM positions WHERE file_path = ?`,
		fileKey(path),
	).Scan(&cursor, &first)
	if err != nil {
		if !isNoRows(err) {
			log.Warn().Err(err).Str("file", path).Msg("failed to read position")
		}
		return 0, 0, false
	}
	return cursor, first, true
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
