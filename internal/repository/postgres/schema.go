package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the console tables and indexes if they don't exist
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames, tablePrefix string) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + tables.ConsoleState + ` (
			key TEXT PRIMARY KEY,
			state JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Drafts + ` (
			id TEXT PRIMARY KEY,
			edition_id TEXT NOT NULL,
			name TEXT NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('published', 'unpublished', 'draft')),
			last_modified TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completion_percentage INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.FileVersions + ` (
			id TEXT PRIMARY KEY,
			draft_id TEXT NOT NULL REFERENCES ` + tables.Drafts + `(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			filename TEXT NOT NULL,
			upload_date TIMESTAMPTZ NOT NULL,
			uploaded_by TEXT NOT NULL,
			upload_comment TEXT NOT NULL DEFAULT '',
			is_latest BOOLEAN NOT NULL DEFAULT FALSE,
			is_selected BOOLEAN NOT NULL DEFAULT FALSE,
			file_size BIGINT,
			description TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `file_versions_draft_seq ON ` + tables.FileVersions + `(draft_id, seq)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// DropTables drops all console tables in reverse dependency order
func DropTables(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	all := tables.All()
	for i := len(all) - 1; i >= 0; i-- {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+all[i]+" CASCADE"); err != nil {
			return fmt.Errorf("drop %s: %w", all[i], err)
		}
	}
	return nil
}

// ClearData removes every row but keeps the schema
func ClearData(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	all := tables.All()
	for i := len(all) - 1; i >= 0; i-- {
		if _, err := pool.Exec(ctx, "DELETE FROM "+all[i]); err != nil {
			return fmt.Errorf("clear %s: %w", all[i], err)
		}
	}
	return nil
}
