// Package storage persists recommendation events to a local SQLite file.
//
// The store is append-only: one row per branch attempt, keyed by the request
// correlation id. There is no read path in the gateway itself — the table
// exists for offline inspection of what each branch produced.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/acastellanos/tradegate/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    correlation_id TEXT     NOT NULL,
    source         TEXT     NOT NULL,
    strategy       TEXT,
    prompt         TEXT,
    result         TEXT,
    error          TEXT,
    created_at     DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_corr ON events(correlation_id);
CREATE INDEX IF NOT EXISTS idx_events_at   ON events(created_at DESC);
`

// SQLiteRecorder implements ports.EventRecorder on a SQLite file (pure Go,
// no CGo).
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder opens (or creates) the database at path and applies the
// schema.
func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteRecorder: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteRecorder: apply schema: %w", err)
	}

	return &SQLiteRecorder{db: db}, nil
}

// Append writes one event row.
func (s *SQLiteRecorder) Append(ctx context.Context, ev ports.Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (correlation_id, source, strategy, prompt, result, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.CorrelationID, ev.Source, ev.Strategy, ev.Prompt, ev.Result, ev.Error, ev.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage.Append: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteRecorder) Close() error {
	return s.db.Close()
}
