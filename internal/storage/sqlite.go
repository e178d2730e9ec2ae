// Package storage provides the SQLite persistence layer for the local stub
// catalog server. It manages the database connection, schema migrations and
// CRUD operations for books, reading lists and reviews. The database uses
// WAL journal mode and a single-writer model.
package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver.
)

// Store wraps a SQL database connection and provides typed query methods
// for the stub catalog entities.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store backed by the given database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// OpenDatabase opens (or creates) a SQLite database at the given path with
// WAL journal mode, a 5-second busy timeout and foreign key enforcement.
// Parent directories are created if missing. The connection pool is limited
// to one connection because SQLite supports a single concurrent writer.
func OpenDatabase(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory %q: %w", dir, err)
		}
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database %q: %w", path, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database %q: %w", path, err)
	}

	slog.Info("opened sqlite database", "path", path)
	return db, nil
}

// migrations is the ordered list of schema migrations. The schema version
// is tracked in PRAGMA user_version; entry i upgrades version i to i+1.
var migrations = []string{
	`
	CREATE TABLE books (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		author         TEXT NOT NULL,
		cover_image    TEXT,
		description    TEXT,
		genre          TEXT,
		published_year INTEGER
	);

	CREATE TABLE reading_lists (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		name        TEXT NOT NULL,
		description TEXT,
		book_ids    TEXT NOT NULL DEFAULT '[]',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);
	CREATE INDEX idx_reading_lists_user ON reading_lists(user_id);

	CREATE TABLE reviews (
		id         TEXT PRIMARY KEY,
		book_id    TEXT NOT NULL REFERENCES books(id) ON DELETE CASCADE,
		user_id    TEXT NOT NULL,
		user_name  TEXT,
		rating     INTEGER NOT NULL,
		comment    TEXT,
		created_at TEXT NOT NULL
	);
	CREATE INDEX idx_reviews_book ON reviews(book_id);
	`,
}

// RunMigrations applies any unapplied schema migrations, each in its own
// transaction, and advances PRAGMA user_version accordingly.
func RunMigrations(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for ; version < len(migrations); version++ {
		if err := applyMigration(db, version); err != nil {
			return fmt.Errorf("applying migration %d: %w", version+1, err)
		}
		slog.Info("applied migration", "version", version+1)
	}
	return nil
}

// applyMigration runs migrations[version] and bumps user_version, all within
// a single transaction.
func applyMigration(db *sql.DB, version int) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(migrations[version]); err != nil {
		return fmt.Errorf("executing migration SQL: %w", err)
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version+1)); err != nil {
		return fmt.Errorf("bumping schema version: %w", err)
	}

	return tx.Commit()
}

// formatTime renders a timestamp in the canonical column format.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a stored timestamp, returning the zero time on failure.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullableString converts an empty string to nil for nullable TEXT columns.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
