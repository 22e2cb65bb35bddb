// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/winstate/store.go
// Summary: SQLite-backed store for per-window preferences keyed by window title.
//
// A row holds the window's background color and fullscreen flag as they
// were when the window was last removed.

package winstate

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// State is the remembered presentation of one window.
type State struct {
	Background string // "#rrggbb"; empty means the engine default
	Fullscreen bool
	UpdatedAt  time.Time
}

// Store reads and writes window states. It is safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

const schema = `
CREATE TABLE IF NOT EXISTS window_state (
    title TEXT PRIMARY KEY,
    background TEXT NOT NULL DEFAULT '',
    fullscreen INTEGER NOT NULL DEFAULT 0,
    updated_at INTEGER NOT NULL            -- UnixNano
);
`

// DefaultPath returns the database location under the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelgrid", "windows.db"), nil
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Load returns the stored state for title and whether one exists.
func (s *Store) Load(title string) (State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		st         State
		fullscreen int
		updated    int64
	)
	err := s.db.QueryRow(
		`SELECT background, fullscreen, updated_at FROM window_state WHERE title = ?`, title,
	).Scan(&st.Background, &fullscreen, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("load window state %q: %w", title, err)
	}
	st.Fullscreen = fullscreen != 0
	st.UpdatedAt = time.Unix(0, updated)
	return st, true, nil
}

// Save stores st for title, replacing any previous row. A zero UpdatedAt is
// stamped with the current time.
func (s *Store) Save(title string, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.UpdatedAt.IsZero() {
		st.UpdatedAt = time.Now()
	}
	fullscreen := 0
	if st.Fullscreen {
		fullscreen = 1
	}
	_, err := s.db.Exec(`
INSERT INTO window_state (title, background, fullscreen, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(title) DO UPDATE SET
    background = excluded.background,
    fullscreen = excluded.fullscreen,
    updated_at = excluded.updated_at`,
		title, st.Background, fullscreen, st.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("save window state %q: %w", title, err)
	}
	return nil
}

// Forget deletes the stored state for title.
func (s *Store) Forget(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM window_state WHERE title = ?`, title); err != nil {
		return fmt.Errorf("forget window state %q: %w", title, err)
	}
	return nil
}

// Titles lists the windows with stored state, most recently saved first.
func (s *Store) Titles() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT title FROM window_state ORDER BY updated_at DESC, title`)
	if err != nil {
		return nil, fmt.Errorf("list window states: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
