// Package storage provides SQLite-based persistence for the best-time ranking.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-garden/internal/ranking"
)

// Store manages the SQLite database connection for ranking persistence.
type Store struct {
	db *sql.DB
}

// Stats contains aggregated statistics over the stored ranking.
type Stats struct {
	Entries  int
	BestMs   int64
	AvgMs    float64
	BestName string
}

// Ensure Store can back a ranking board and record concurrently.
var (
	_ ranking.Store    = (*Store)(nil)
	_ ranking.Appender = (*Store)(nil)
)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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

	// One writer at a time; SSH sessions share this handle.
	db.SetMaxOpenConns(1)

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
// position keeps insertion order among equal times.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS ranking (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			time_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_ranking_time ON ranking(time_ms ASC, position ASC);
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

// LoadEntries returns every stored entry, fastest first.
func (s *Store) LoadEntries() ([]ranking.Entry, error) {
	rows, err := s.db.Query(
		`SELECT name, time_ms
		 FROM ranking
		 ORDER BY time_ms ASC, position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ranking: %w", err)
	}
	defer rows.Close()

	var entries []ranking.Entry
	for rows.Next() {
		var e ranking.Entry
		if err := rows.Scan(&e.Name, &e.TimeMs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SaveEntries replaces the stored ranking in one transaction.
func (s *Store) SaveEntries(entries []ranking.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM ranking"); err != nil {
		return fmt.Errorf("storage: cannot clear ranking: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO ranking (position, name, time_ms) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.Exec(i, e.Name, e.TimeMs); err != nil {
			return fmt.Errorf("storage: cannot save entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit ranking: %w", err)
	}
	return nil
}

// AppendEntry inserts one entry and deletes everything outside the best topN,
// in one transaction.
func (s *Store) AppendEntry(e ranking.Entry, topN int) error {
	if topN <= 0 {
		topN = ranking.DefaultTopN
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	var next int
	if err := tx.QueryRow("SELECT COALESCE(MAX(position), -1) + 1 FROM ranking").Scan(&next); err != nil {
		return fmt.Errorf("storage: cannot query position: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO ranking (position, name, time_ms) VALUES (?, ?, ?)", next, e.Name, e.TimeMs); err != nil {
		return fmt.Errorf("storage: cannot save entry: %w", err)
	}
	_, err = tx.Exec(`DELETE FROM ranking WHERE id NOT IN (
		SELECT id FROM ranking ORDER BY time_ms ASC, position ASC LIMIT ?
	)`, topN)
	if err != nil {
		return fmt.Errorf("storage: cannot trim ranking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit entry: %w", err)
	}
	return nil
}

// Clear deletes all stored entries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM ranking"); err != nil {
		return fmt.Errorf("storage: cannot clear ranking: %w", err)
	}
	return nil
}

// GetStats retrieves aggregated statistics over the ranking.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(time_ms), 0), COALESCE(AVG(time_ms), 0)
		 FROM ranking`,
	).Scan(&stats.Entries, &stats.BestMs, &stats.AvgMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if stats.Entries == 0 {
		return stats, nil
	}

	err = s.db.QueryRow(
		`SELECT name FROM ranking ORDER BY time_ms ASC, position ASC LIMIT 1`,
	).Scan(&stats.BestName)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get best name: %w", err)
	}

	return stats, nil
}
