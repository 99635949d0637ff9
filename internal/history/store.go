// Package history persists a local record of past translate/match CLI
// invocations to a SQLite database so a user can review what they tried in
// earlier sessions.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id         TEXT PRIMARY KEY,
	command    TEXT NOT NULL,
	pattern    TEXT NOT NULL,
	result     TEXT NOT NULL,
	succeeded  INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);`

// Record is one row of the history store.
type Record struct {
	ID        string
	Command   string // "translate" or "match"; the CLI appends " from <source description>"
	Pattern   string
	Result    string // translated regex, or the error message on failure
	Succeeded bool
	Duration  time.Duration
	CreatedAt time.Time
}

// Store is a handle to the local SQLite-backed history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a new history row, stamping it with a fresh uuid.
func (s *Store) Record(r Record) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	_, err := s.db.Exec(
		`INSERT INTO history (id, command, pattern, result, succeeded, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Command, r.Pattern, r.Result, boolToInt(r.Succeeded),
		r.Duration.Milliseconds(), r.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording history entry: %w", err)
	}
	return nil
}

// Recent returns up to limit history rows, most recent first.
func (s *Store) Recent(limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, command, pattern, result, succeeded, duration_ms, created_at
		 FROM history ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r          Record
			succeeded  int
			durationMs int64
			createdAt  string
		)
		if err := rows.Scan(&r.ID, &r.Command, &r.Pattern, &r.Result, &succeeded, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		r.Succeeded = succeeded != 0
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		records = append(records, r)
	}
	return records, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
