package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for the departure log.
// Uses a DuckDB file; primary keys come from two named sequences.
type Store struct {
	db *sql.DB
}

// Open creates or opens a DuckDB database at the given path and ensures
// the sequences and tables exist.
//
// Schema creation uses IF NOT EXISTS throughout, so Open is idempotent -
// safe to call on every program startup regardless of prior state.
func Open(path string) (*Store, error) {
	// Open database (creates file if doesn't exist)
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// One command execution per process; a single connection keeps every
	// statement of a transaction on the same DuckDB session.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
// Should be called when the store is no longer needed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// applySchema creates sequences and tables if they don't exist.
// This function is idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}
