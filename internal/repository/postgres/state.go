package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleRepo "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories/console"
)

// PostgresStateRepository stores persisted console state as a JSONB document per key
type PostgresStateRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewStateRepository creates a new PostgresStateRepository
func NewStateRepository(config *RepositoryConfig) consoleRepo.StateRepository {
	return &PostgresStateRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Load returns nil when no state has been stored under key
func (r *PostgresStateRepository) Load(ctx context.Context, key string) (*console.PersistedState, error) {
	query := fmt.Sprintf(`
		SELECT state
		FROM %s
		WHERE key = $1
	`, r.tables.ConsoleState)

	var raw []byte
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, key).Scan(&raw); err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get console state: %w", err)
	}

	var state console.PersistedState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode console state: %w", err)
	}
	return &state, nil
}

// Save upserts the state document
func (r *PostgresStateRepository) Save(ctx context.Context, key string, state *console.PersistedState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode console state: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (key, state, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (key) DO UPDATE SET
			state = EXCLUDED.state,
			updated_at = EXCLUDED.updated_at
	`, r.tables.ConsoleState)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, key, raw, time.Now()); err != nil {
		return fmt.Errorf("upsert console state: %w", err)
	}
	return nil
}

func (r *PostgresStateRepository) Delete(ctx context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, r.tables.ConsoleState)
	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("delete console state: %w", err)
	}
	return nil
}
