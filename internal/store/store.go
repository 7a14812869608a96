// Package store persists saved session records in a local SQLite
// database and resolves user-supplied identifiers against them.
//
// The store is a stateless handle over the database file: CLI
// invocations and dashboard requests each open their own Store, and
// SQLite's write serialization is what keeps concurrent processes
// consistent.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Session is a saved session record.
type Session struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Pwd       string `json:"pwd"`
	CreatedAt string `json:"created_at"`
}

// timeLayout preserves sub-second precision so list order stays stable
// across rapid saves.
const timeLayout = "2006-01-02T15:04:05.000000"

const schema = `CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	pwd TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Store is a handle over the session database.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating the file, its parent
// directory, and the schema if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Keep sqlite responsive when a CLI invocation races the dashboard.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal_mode: %w", err)
	}
	// LIKE is case-insensitive for ASCII by default; substring matching
	// here is case-sensitive.
	if _, err := db.Exec("PRAGMA case_sensitive_like = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set case_sensitive_like: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sessions table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Upsert writes the record for id, overwriting any existing one.
// The timestamp is always the moment of the write.
func (s *Store) Upsert(id, title, pwd string) error {
	now := time.Now().Format(timeLayout)
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, title, pwd, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET title = excluded.title, pwd = excluded.pwd, created_at = excluded.created_at`,
		id, title, pwd, now,
	)
	if err != nil {
		return fmt.Errorf("save session %q: %w", id, err)
	}
	return nil
}

// List returns up to limit sessions, most recent first.
func (s *Store) List(limit int) ([]Session, error) {
	return s.query(
		"SELECT id, title, pwd, created_at FROM sessions ORDER BY created_at DESC LIMIT ?",
		limit,
	)
}

// Search returns sessions whose title or ID contains query as a
// substring, most recent first. LIKE metacharacters in the query are
// escaped so they match literally.
func (s *Store) Search(query string) ([]Session, error) {
	pattern := likePattern(query)
	return s.query(
		`SELECT id, title, pwd, created_at FROM sessions
		 WHERE title LIKE ? ESCAPE '\' OR id LIKE ? ESCAPE '\'
		 ORDER BY created_at DESC`,
		pattern, pattern,
	)
}

// All returns every session, most recent first.
func (s *Store) All() ([]Session, error) {
	return s.query("SELECT id, title, pwd, created_at FROM sessions ORDER BY created_at DESC")
}

// GetByID returns the session with exactly the given ID, or nil if
// there is none.
func (s *Store) GetByID(id string) (*Session, error) {
	sessions, err := s.query(
		"SELECT id, title, pwd, created_at FROM sessions WHERE id = ?",
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

// FindByIDPattern returns one session whose ID contains sub as a
// substring, or nil if none matches. When several match, which one is
// returned is unspecified.
func (s *Store) FindByIDPattern(sub string) (*Session, error) {
	sessions, err := s.query(
		`SELECT id, title, pwd, created_at FROM sessions WHERE id LIKE ? ESCAPE '\' LIMIT 1`,
		likePattern(sub),
	)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

// DeleteByID removes the session with exactly the given ID and reports
// how many records were removed (0 or 1).
func (s *Store) DeleteByID(id string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("delete session %q: %w", id, err)
	}
	return res.RowsAffected()
}

// DeleteByPattern removes every session whose ID contains sub as a
// substring and reports how many were removed.
func (s *Store) DeleteByPattern(sub string) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM sessions WHERE id LIKE ? ESCAPE '\'`, likePattern(sub))
	if err != nil {
		return 0, fmt.Errorf("delete sessions matching %q: %w", sub, err)
	}
	return res.RowsAffected()
}

func (s *Store) query(q string, args ...any) ([]Session, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Title, &sess.Pwd, &sess.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read session rows: %w", err)
	}
	return sessions, nil
}

// likePattern wraps s in % wildcards, escaping any LIKE metacharacters
// so user input always matches as a literal substring.
func likePattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + escaped + "%"
}
