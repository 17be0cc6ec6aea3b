package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Muxutruk2/gemini/internal/gemini"
)

// dbFileName is the database file created inside the store directory.
const dbFileName = "history.db"

// Visit is one journal row: a fetched location with the status the
// server answered.
type Visit struct {
	// ID is the row identifier; larger means more recent.
	ID int64

	// URL is the fetched location.
	URL string

	// StatusCode is the numeric status from the response header.
	StatusCode int

	// Meta is the response meta text (media type, redirect target,
	// prompt, or failure message depending on the status).
	Meta string

	// VisitedAt is the fetch time in UTC.
	VisitedAt time.Time
}

// Store is a SQLite-backed visit journal. It is safe for the strictly
// sequential use the navigation loop gives it; the connection pool is
// pinned to one connection because SQLite allows a single writer.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the journal database under dir, creating the
// directory when needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	path := filepath.Join(dir, dbFileName)
	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// createSchema creates the visits table if it does not exist.
func (s *Store) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL,
		status_code INTEGER NOT NULL,
		meta TEXT NOT NULL DEFAULT '',
		visited_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_visits_visited_at ON visits(visited_at);
	`
	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Record appends one visit to the journal. It implements the session's
// Recorder interface.
func (s *Store) Record(ctx context.Context, loc gemini.Location, code int, meta string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (url, status_code, meta, visited_at) VALUES (?, ?, ?, ?)`,
		loc.String(), code, meta, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Recent returns up to limit visits, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, status_code, meta, visited_at FROM visits ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query visits: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor.

	var visits []Visit
	for rows.Next() {
		var v Visit
		var visitedAt string
		if err := rows.Scan(&v.ID, &v.URL, &v.StatusCode, &v.Meta, &visitedAt); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, visitedAt)
		if err != nil {
			return nil, fmt.Errorf("parse visit time %q: %w", visitedAt, err)
		}
		v.VisitedAt = ts
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate visits: %w", err)
	}
	return visits, nil
}

// Clear deletes every visit from the journal.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM visits`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
