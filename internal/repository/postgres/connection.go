package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	ConsoleState string
	Drafts       string
	FileVersions string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		ConsoleState: fmt.Sprintf("%sconsole_state", prefix),
		Drafts:       fmt.Sprintf("%sdrafts", prefix),
		FileVersions: fmt.Sprintf("%sfile_versions", prefix),
	}
}

// All returns the table names in dependency order (referenced tables first)
func (t *TableNames) All() []string {
	return []string{t.ConsoleState, t.Drafts, t.FileVersions}
}

// CreateConnectionPool creates a pgx connection pool.
//
// Port 6543 is the transaction pooler used by hosted Postgres (PgBouncer). It
// does not support prepared statements, so unless the connection string sets
// default_query_exec_mode explicitly the pool switches to cache_describe, which
// keeps the extended protocol needed for JSONB encoding.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the transaction stored in ctx, or pool when there is none
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}
