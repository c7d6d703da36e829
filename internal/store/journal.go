package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	diff "github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/rs/zerolog/log"
)

// Entry is one journal record, newest first when listed.
type Entry struct {
	ID      int64
	Created time.Time
	Diff    string // unified diff from the snapshot to the saved content
}

// Record stores the content of path before an edit, together with a unified
// diff and a hash of the content after it. Older entries beyond the per-file
// limit are dropped.
func (s *Store) Record(path string, before, after []string) error {
	if s == nil {
		return nil
	}
	key := fileKey(path)
	a := joinLines(before)
	b := joinLines(after)
	edits := myers.ComputeEdits(span.URIFromPath(key), a+"\n", b+"\n")
	unified := fmt.Sprint(diff.ToUnified(key, key, a+"\n", edits))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(
		`INSERT INTO edit_journal (file_path, before, after_hash, diff, created) VALUES (?, ?, ?, ?, ?)`,
		key, a, hashLines(after), unified, time.Now().Unix(),
	); err != nil {
		return fmt.Errorf("record journal entry: %w", err)
	}

	res, err := s.db.Exec(
		`DELETE FROM edit_journal WHERE file_path = ? AND id NOT IN (
			SELECT id FROM edit_journal WHERE file_path = ? ORDER BY id DESC LIMIT ?
		)`,
		key, key, s.maxEntries,
	)
	if err != nil {
		log.Warn().Err(err).Str("file", key).Msg("failed to trim edit journal")
		return nil
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Debug().Int64("deleted", n).Str("file", key).Msg("trimmed edit journal")
	}
	return nil
}

// Pop undoes the newest edit of path. The entry only applies while current
// is exactly the content it recorded after the edit; otherwise the file has
// changed since and ok is false. restore receives the snapshot and must write
// it; the entry is removed only once restore succeeds.
func (s *Store) Pop(path string, current []string, restore func(before []string) error) (ok bool, err error) {
	if s == nil {
		return false, nil
	}
	key := fileKey(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	var id int64
	var before, afterHash string
	err = s.db.QueryRow(
		`SELECT id, before, after_hash FROM edit_journal WHERE file_path = ? ORDER BY id DESC LIMIT 1`,
		key,
	).Scan(&id, &before, &afterHash)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("read journal: %w", err)
	}
	if afterHash != hashLines(current) {
		log.Debug().Str("file", key).Int64("entry", id).Msg("file changed since last journaled edit")
		return false, nil
	}
	if err := restore(strings.Split(before, "\n")); err != nil {
		return false, err
	}
	if _, err := s.db.Exec(`DELETE FROM edit_journal WHERE id = ?`, id); err != nil {
		log.Warn().Err(err).Str("file", key).Int64("entry", id).Msg("failed to delete journal entry")
	}
	return true, nil
}

// History lists up to limit journal entries for path, newest first.
func (s *Store) History(path string, limit int) ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT id, diff, created FROM edit_journal WHERE file_path = ? ORDER BY id DESC LIMIT ?`,
		fileKey(path), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.ID, &e.Diff, &created); err != nil {
			log.Warn().Err(err).Msg("failed to scan journal row")
			continue
		}
		e.Created = time.Unix(created, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

func hashLines(lines []string) string {
	h := sha256.Sum256([]byte(joinLines(lines)))
	return hex.EncodeToString(h[:])
}

// joinLines is the inverse of the strings.Split in Pop.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
