// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBFileName is the name of the database file inside the data directory
const DBFileName = "notely.db"

// InitDB opens (creating if needed) the database in dataDir and runs migrations
func InitDB(ctx context.Context, dataDir string) (*sql.DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := Open(ctx, filepath.Join(dataDir, DBFileName))
	if err != nil {
		return nil, err
	}

	// WAL only makes sense for a file-backed database
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		slog.Error("Failed to enable WAL mode", "error", err)
		closeQuietly(db)
		return nil, err
	}

	return db, nil
}

// Open opens the database at dsn, applies connection pragmas and runs
// migrations. Pass ":memory:" for a throwaway database.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite benefits from a single writer connection, and an in-memory
	// database only exists on the connection that created it
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		// Required for CASCADE deletions of note/label links
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			slog.Error("Failed to apply pragma", "pragma", p, "error", err)
			closeQuietly(db)
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
