// Package storage provides SQLite-based persistence for the completion history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// History is write-mostly: nothing here is read back to resume progress.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/ratio/internal/games/ratio"
	"github.com/vovakirdan/ratio/internal/games/ratio/core"
)

// Store manages the SQLite database connection for completion history.
type Store struct {
	db *sql.DB
}

// Completion is one closed path as it was judged.
type Completion struct {
	ID         int64
	RunID      string
	LevelID    string
	LevelIndex int
	Policy     string
	Solved     bool
	Regions    int
	PathLen    int
	CreatedAt  time.Time
}

// LevelStats contains aggregated history for one level.
type LevelStats struct {
	LevelID     string
	Attempts    int
	Solved      int
	BestPathLen int // Shortest solving path, 0 if never solved
	LastPlayed  time.Time
}

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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			level_id TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			policy TEXT NOT NULL,
			solved INTEGER NOT NULL,
			regions INTEGER NOT NULL,
			path_len INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level_id ON completions(level_id);
		CREATE INDEX IF NOT EXISTS idx_completions_run_id ON completions(run_id);
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

// SaveCompletion records a completion.
// Returns the ID of the inserted record.
func (s *Store) SaveCompletion(c Completion) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO completions (run_id, level_id, level_index, policy, solved, regions, path_len)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.RunID, c.LevelID, c.LevelIndex, c.Policy, c.Solved, c.Regions, c.PathLen,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordEvaluation implements ratio.Recorder.
func (s *Store) RecordEvaluation(runID string, ev core.Evaluation) error {
	_, err := s.SaveCompletion(Completion{
		RunID:      runID,
		LevelID:    ev.LevelID,
		LevelIndex: ev.LevelIndex,
		Policy:     ev.Policy,
		Solved:     ev.Solved,
		Regions:    len(ev.Regions),
		PathLen:    ev.PathLen,
	})
	return err
}

// Ensure Store implements Recorder
var _ ratio.Recorder = (*Store)(nil)

// RecentCompletions retrieves the most recent completions, newest first.
func (s *Store) RecentCompletions(limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level_id, level_index, policy, solved, regions, path_len, created_at
		 FROM completions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var c Completion
		var createdAt any
		if err := rows.Scan(&c.ID, &c.RunID, &c.LevelID, &c.LevelIndex, &c.Policy,
			&c.Solved, &c.Regions, &c.PathLen, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RunCompletions retrieves all completions of one run in play order.
func (s *Store) RunCompletions(runID string) ([]Completion, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, level_id, level_index, policy, solved, regions, path_len, created_at
		 FROM completions
		 WHERE run_id = ?
		 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var c Completion
		var createdAt any
		if err := rows.Scan(&c.ID, &c.RunID, &c.LevelID, &c.LevelIndex, &c.Policy,
			&c.Solved, &c.Regions, &c.PathLen, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LevelStats retrieves aggregated history for every level played, ordered by level ID.
func (s *Store) LevelStats() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), COALESCE(SUM(solved), 0),
		        COALESCE(MIN(CASE WHEN solved THEN path_len END), 0), MAX(created_at)
		 FROM completions
		 GROUP BY level_id
		 ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Attempts, &st.Solved, &st.BestPathLen, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// CompletionByID retrieves one completion. Returns nil if it does not exist.
func (s *Store) CompletionByID(id int64) (*Completion, error) {
	var c Completion
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, run_id, level_id, level_index, policy, solved, regions, path_len, created_at
		 FROM completions
		 WHERE id = ?`,
		id,
	).Scan(&c.ID, &c.RunID, &c.LevelID, &c.LevelIndex, &c.Policy,
		&c.Solved, &c.Regions, &c.PathLen, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completion: %w", err)
	}

	c.CreatedAt = parseTime(createdAt)
	return &c, nil
}

// ClearHistory deletes all completions.
func (s *Store) ClearHistory() error {
	_, err := s.db.Exec("DELETE FROM completions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
