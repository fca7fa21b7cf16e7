// Package store persists demo sessions: an append-only sqlite log of the
// interactions dispatched while the recorder is enabled. The UI itself
// keeps no state across runs; the recorder is a sidecar for inspecting
// what a session did after the fact.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"uiplay/internal/model"

	_ "modernc.org/sqlite"
)

// Recorder appends interaction events for one session to a sqlite file.
type Recorder struct {
	mu        sync.Mutex
	db        *sql.DB
	sessionID string
	seq       int64
}

// Open creates (or opens) the sqlite file at path, starts a new session
// and returns a recorder bound to it.
func Open(ctx context.Context, path string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when a reader is attached.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	id, err := newRandomID("sess")
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO sessions(session_id, started_at_unixms) VALUES(?, ?)`,
		id, time.Now().UnixMilli()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Recorder{db: db, sessionID: id}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			started_at_unixms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			session_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			kind TEXT NOT NULL,
			target TEXT NOT NULL,
			detail TEXT,
			at_unixms INTEGER NOT NULL,
			PRIMARY KEY(session_id, seq)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id, seq);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// SessionID returns the id of the session this recorder appends to.
func (r *Recorder) SessionID() string { return r.sessionID }

// Append records one interaction. Events get a per-session sequence
// number in append order.
func (r *Recorder) Append(ctx context.Context, kind model.EventKind, target, detail string) error {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.mu.Unlock()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO events(session_id, seq, kind, target, detail, at_unixms) VALUES(?, ?, ?, ?, ?, ?)`,
		r.sessionID, seq, string(kind), target, detail, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

func (r *Recorder) Close() error { return r.db.Close() }

// Sessions lists all recorded sessions in the file at path, newest first.
func Sessions(ctx context.Context, path string) ([]model.Session, error) {
	db, err := openRead(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT s.session_id, s.started_at_unixms, COUNT(e.seq)
		FROM sessions s LEFT JOIN events e ON e.session_id = s.session_id
		GROUP BY s.session_id
		ORDER BY s.started_at_unixms DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Session
	for rows.Next() {
		var s model.Session
		var ms int64
		if err := rows.Scan(&s.ID, &ms, &s.Events); err != nil {
			return nil, err
		}
		s.StartedAt = time.UnixMilli(ms)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Events returns the events of one session in sequence order.
func Events(ctx context.Context, path, sessionID string) ([]model.InteractionEvent, error) {
	db, err := openRead(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT seq, kind, target, COALESCE(detail, ''), at_unixms
		FROM events WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.InteractionEvent
	for rows.Next() {
		ev := model.InteractionEvent{SessionID: sessionID}
		var kind string
		var ms int64
		if err := rows.Scan(&ev.Seq, &kind, &ev.Target, &ev.Detail, &ms); err != nil {
			return nil, err
		}
		ev.Kind = model.EventKind(kind)
		ev.At = time.UnixMilli(ms)
		out = append(out, ev)
	}
	return out, rows.Err()
}

func openRead(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no session store at %s: %w", path, err)
	}
	return sql.Open("sqlite", path)
}
