// Package eventlog persists select actions fired by widgets to a SQLite
// database so CLI sessions can be inspected afterwards.
package eventlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS actions (
    id TEXT PRIMARY KEY,
    event TEXT NOT NULL,
    target TEXT NOT NULL DEFAULT '',
    detail TEXT NOT NULL DEFAULT '{}',
    source TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_actions_created_at ON actions(created_at);
`

// Entry is one recorded action.
type Entry struct {
	ID        string          `json:"id"`
	Event     string          `json:"event"`
	Target    string          `json:"target"`
	Detail    json.RawMessage `json:"detail"`
	Source    string          `json:"source"`
	CreatedAt time.Time       `json:"created_at"`
}

// Log wraps the database connection
type Log struct {
	conn *sql.DB
	path string
}

// Open opens (creating if needed) the log at path and ensures the schema.
func Open(path string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Log{conn: conn, path: path}, nil
}

// Close closes the database
func (l *Log) Close() error {
	return l.conn.Close()
}

// Path returns the database file path.
func (l *Log) Path() string { return l.path }

// Record stores one action. detail is encoded as JSON.
func (l *Log) Record(ctx context.Context, id, event, target, source string, detail any, at time.Time) error {
	data, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("encode detail: %w", err)
	}
	_, err = l.conn.ExecContext(ctx,
		`INSERT INTO actions (id, event, target, detail, source, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, event, target, string(data), source, at.UTC())
	if err != nil {
		return fmt.Errorf("record action %s: %w", id, err)
	}
	return nil
}

// List returns the most recent entries, newest first. limit <= 0 means all.
func (l *Log) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, event, target, detail, source, created_at FROM actions ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := l.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var detail string
		if err := rows.Scan(&e.ID, &e.Event, &e.Target, &detail, &e.Source, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		e.Detail = json.RawMessage(detail)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of stored entries.
func (l *Log) Count(ctx context.Context) (int, error) {
	var n int
	if err := l.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM actions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count actions: %w", err)
	}
	return n, nil
}
