// Package storage provides a SQLite archive of generated maze rounds.
// Only the layout parameters are stored (mode, tier, size, seed) so a round
// can be listed and replayed; move counts and times are never recorded.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when no round matches a lookup.
var ErrNotFound = errors.New("storage: round not found")

// ErrAmbiguous is returned when an ID prefix matches more than one round.
var ErrAmbiguous = errors.New("storage: round id prefix is ambiguous")

// Store manages the SQLite database connection for the maze archive.
type Store struct {
	db *sql.DB
}

// Round is one archived maze layout.
type Round struct {
	ID        string
	Mode      string
	Tier      string
	Cols      int
	Rows      int
	Seed      int64
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			tier TEXT NOT NULL,
			cols INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_mode ON rounds(mode);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound archives a round layout. A new UUID is assigned when r.ID is empty.
// Returns the ID of the stored round.
func (s *Store) SaveRound(r Round) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		"INSERT INTO rounds (id, mode, tier, cols, rows, seed) VALUES (?, ?, ?, ?, ?, ?)",
		r.ID, r.Mode, r.Tier, r.Cols, r.Rows, r.Seed,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}

	return r.ID, nil
}

// RecentRounds returns the newest rounds first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	return s.RecentRoundsForMode("", limit)
}

// RecentRoundsForMode returns the newest rounds of one mode first. An empty
// mode matches every round.
func (s *Store) RecentRoundsForMode(mode string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, tier, cols, rows, seed, created_at
		 FROM rounds
		 WHERE ? = '' OR mode = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// likePrefix escapes LIKE wildcards so a prefix matches literally.
var likePrefix = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// RoundByID looks up a round by its full ID or by a unique ID prefix.
func (s *Store) RoundByID(id string) (*Round, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	rows, err := s.db.Query(
		`SELECT id, mode, tier, cols, rows, seed, created_at
		 FROM rounds
		 WHERE id = ? OR id LIKE ? || '%' ESCAPE '\'
		 ORDER BY id = ? DESC
		 LIMIT 2`,
		id, likePrefix.Replace(id), id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	defer rows.Close()

	var found []Round
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch {
	case len(found) == 0:
		return nil, ErrNotFound
	case found[0].ID == id, len(found) == 1:
		return &found[0], nil
	default:
		return nil, ErrAmbiguous
	}
}

// CountRounds returns the number of archived rounds for a mode, or all
// rounds when mode is empty.
func (s *Store) CountRounds(mode string) (int, error) {
	var n int
	var err error
	if mode == "" {
		err = s.db.QueryRow("SELECT COUNT(*) FROM rounds").Scan(&n)
	} else {
		err = s.db.QueryRow("SELECT COUNT(*) FROM rounds WHERE mode = ?", mode).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return n, nil
}

// ClearRounds deletes every archived round.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRound(row rowScanner) (Round, error) {
	var r Round
	var createdAt any
	if err := row.Scan(&r.ID, &r.Mode, &r.Tier, &r.Cols, &r.Rows, &r.Seed, &createdAt); err != nil {
		return Round{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// The driver may hand back either time.Time or a string.
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}
