// Package history keeps a SQLite log of launches so past runs of each app
// can be listed after the launcher exits.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/specialistvlad/nodelaunch/internal/launcher"
)

// Entry is a stored launch.
type Entry struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Command    string `db:"command" json:"command"`
	PID        int    `db:"pid" json:"pid"`
	ExitCode   int    `db:"exit_code" json:"exit_code"`
	StartedAt  int64  `db:"started_at" json:"started_at"`
	FinishedAt int64  `db:"finished_at" json:"finished_at"`
	Error      string `db:"error" json:"error,omitempty"`
}

// Started returns StartedAt as a time.
func (e Entry) Started() time.Time {
	return time.UnixMilli(e.StartedAt).UTC()
}

// Store is a launcher.Recorder backed by SQLite.
type Store struct {
	db *sqlx.DB
}

var _ launcher.Recorder = (*Store)(nil)

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database %s: %w", path, err)
	}
	// SQLite serializes writers; one connection avoids "database is locked".
	db.SetMaxOpenConns(1)

	if err := DBInit(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history database %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// DBInit creates the launches table and its indexes.
func DBInit(db *sqlx.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS launches (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		command TEXT NOT NULL,
		pid INTEGER NOT NULL,
		exit_code INTEGER NOT NULL,
		started_at INTEGER NOT NULL,
		finished_at INTEGER NOT NULL,
		error TEXT NOT NULL DEFAULT ''
	)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_launches_name_started ON launches(name, started_at)`)
	return err
}

// Record implements launcher.Recorder.
func (s *Store) Record(ctx context.Context, run *launcher.Run) error {
	entry := Entry{
		ID:         run.ID,
		Name:       run.Name,
		Command:    run.Command,
		PID:        run.PID,
		ExitCode:   run.ExitCode,
		StartedAt:  run.StartedAt.UnixMilli(),
		FinishedAt: run.FinishedAt.UnixMilli(),
	}
	if run.Err != nil {
		entry.Error = run.Err.Error()
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO launches (id, name, command, pid, exit_code, started_at, finished_at, error)
		VALUES (:id, :name, :command, :pid, :exit_code, :started_at, :finished_at, :error)`,
		entry,
	)
	if err != nil {
		return fmt.Errorf("failed to record launch %s: %w", run.ID, err)
	}
	return nil
}

// Recent returns the latest launches of any app, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	err := s.db.SelectContext(ctx, &entries,
		"SELECT * FROM launches ORDER BY started_at DESC, id LIMIT $1",
		limit)
	return entries, err
}

// ByName returns the latest launches of one app, newest first.
func (s *Store) ByName(ctx context.Context, name string, limit int) ([]Entry, error) {
	var entries []Entry
	err := s.db.SelectContext(ctx, &entries,
		"SELECT * FROM launches WHERE name = $1 ORDER BY started_at DESC, id LIMIT $2",
		name, limit)
	return entries, err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
