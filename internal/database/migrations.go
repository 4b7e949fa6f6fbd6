package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaVersion is bumped whenever a statement is appended to migrations
const schemaVersion = 1

// migrations are applied in order; index i brings the schema to version i+1
var migrations = []string{
	`
	CREATE TABLE IF NOT EXISTS labels (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL COLLATE NOCASE UNIQUE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		body TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS note_labels (
		note_id TEXT NOT NULL,
		label_id TEXT NOT NULL,
		PRIMARY KEY (note_id, label_id),
		FOREIGN KEY (note_id) REFERENCES notes(id) ON DELETE CASCADE,
		FOREIGN KEY (label_id) REFERENCES labels(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_note_labels_label ON note_labels(label_id);
	`,
}

// runMigrations brings the schema up to schemaVersion using PRAGMA user_version
func runMigrations(ctx context.Context, db *sql.DB) error {
	var current int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for v := current; v < schemaVersion && v < len(migrations); v++ {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, migrations[v]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", v+1, err)
		}
		// PRAGMA does not accept bound parameters
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", v+1)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record schema version %d: %w", v+1, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}
