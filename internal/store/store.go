package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// ErrStorageUnavailable is wrapped by every error the store returns. The
// backing file could not be created, opened, written or read.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Store provides durable storage for todo items.
type Store struct {
	db   *sqlx.DB
	path string
}

// Open creates or opens a SQLite database at the given path.
// The schema is not touched; call EnsureSchema before Insert or ListAll.
//
// The database is configured with:
//   - WAL mode
//   - FULL synchronous mode
//   - 5-second busy timeout for lock contention
//
// The settings travel in the DSN, so the driver applies them to every
// connection it opens, not only the first one.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, unavailable("open database", err)
	}

	// Ping opens the file, creating it if it doesn't exist.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, unavailable("connect to database", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the file path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// EnsureSchema creates the todos table if it doesn't exist.
// This function is idempotent. An existing table is used as is.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return unavailable("ensure schema", err)
	}
	return nil
}

// connectionParams are the go-sqlite3 DSN parameters applied on connect.
const connectionParams = "_journal_mode=WAL&_synchronous=FULL&_busy_timeout=5000"

// dsn appends connectionParams to a file path. The driver strips the query
// part from plain paths before opening the file.
func dsn(path string) string {
	return path + "?" + connectionParams
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	if err := s.db.Get(&value, fmt.Sprintf("PRAGMA %s", name)); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
