// Package audit keeps a local sqlite trail of every mutation attempted
// through this tool: who ran it, against what, and how it ended. The remote
// API has its own logs; this one answers "what did we do from here".
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeDeclined  = "declined"
	OutcomeBadInput  = "bad_input"
	OutcomeDuplicate = "duplicate"
)

// Entry is one recorded mutation attempt.
type Entry struct {
	ID       string
	At       time.Time
	Actor    string
	Action   string
	Target   string
	TargetID int64
	Outcome  string
	Message  string
}

type Log struct {
	db *sql.DB
}

func Open(path string) (*Log, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audit directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to audit database: %w", err)
	}
	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create audit tables: %w", err)
	}
	return &Log{db: db}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS mutations (
            id TEXT PRIMARY KEY,
            at DATETIME NOT NULL,
            actor TEXT NOT NULL,
            action TEXT NOT NULL,
            target TEXT NOT NULL,
            target_id INTEGER NOT NULL DEFAULT 0,
            outcome TEXT NOT NULL,
            message TEXT
        )`,
		`CREATE INDEX IF NOT EXISTS idx_mutations_at ON mutations(at)`,
		`CREATE INDEX IF NOT EXISTS idx_mutations_action ON mutations(action)`,
	}
	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Record inserts an entry, generating its id and timestamp when absent.
func (l *Log) Record(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO mutations (id, at, actor, action, target, target_id, outcome, message)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.At, entry.Actor, entry.Action, entry.Target, entry.TargetID, entry.Outcome, entry.Message,
	)
	return err
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, at, actor, action, target, target_id, outcome, message
         FROM mutations ORDER BY at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var message sql.NullString
		if err := rows.Scan(&entry.ID, &entry.At, &entry.Actor, &entry.Action,
			&entry.Target, &entry.TargetID, &entry.Outcome, &message); err != nil {
			return nil, err
		}
		entry.Message = message.String
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (l *Log) Close() error {
	return l.db.Close()
}
