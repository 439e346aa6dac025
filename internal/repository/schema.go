package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema statements are additive and idempotent; the only migration the
// board needs beyond table creation is the settings default backfill.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		id SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		doc JSONB NOT NULL DEFAULT '{}'::jsonb,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		class TEXT NOT NULL DEFAULT '',
		birth_date TEXT NOT NULL DEFAULT '',
		extra JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_students_birth_date ON students (birth_date)`,
	`CREATE TABLE IF NOT EXISTS schedule (
		id SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		days JSONB NOT NULL DEFAULT '{}'::jsonb,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS media_files (
		filename TEXT PRIMARY KEY,
		caption TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the four collections at startup.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
