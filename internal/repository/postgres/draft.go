package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleRepo "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories/console"
)

// PostgresDraftRepository implements the DraftRepository interface
type PostgresDraftRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewDraftRepository creates a new PostgresDraftRepository
func NewDraftRepository(config *RepositoryConfig) *PostgresDraftRepository {
	return &PostgresDraftRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

var (
	_ consoleRepo.DraftRepository = (*PostgresDraftRepository)(nil)
	_ consoleRepo.DraftWriter     = (*PostgresDraftRepository)(nil)
)

func (r *PostgresDraftRepository) GetByID(ctx context.Context, draftID string) (*console.Draft, error) {
	query := fmt.Sprintf(`
		SELECT id, edition_id, name, status, last_modified, completion_percentage
		FROM %s
		WHERE id = $1
	`, r.tables.Drafts)

	executor := GetExecutor(ctx, r.pool)
	draft, err := scanDraft(executor.QueryRow(ctx, query, draftID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("draft", draftID)
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return draft, nil
}

// List returns all drafts ordered by id
func (r *PostgresDraftRepository) List(ctx context.Context) ([]console.Draft, error) {
	query := fmt.Sprintf(`
		SELECT id, edition_id, name, status, last_modified, completion_percentage
		FROM %s
		ORDER BY id
	`, r.tables.Drafts)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	drafts := make([]console.Draft, 0)
	for rows.Next() {
		draft, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		drafts = append(drafts, *draft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drafts: %w", err)
	}
	return drafts, nil
}

// Upsert inserts or replaces a draft record. Used when seeding.
func (r *PostgresDraftRepository) Upsert(ctx context.Context, draft *console.Draft) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, edition_id, name, status, last_modified, completion_percentage)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			edition_id = EXCLUDED.edition_id,
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			last_modified = EXCLUDED.last_modified,
			completion_percentage = EXCLUDED.completion_percentage
	`, r.tables.Drafts)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		draft.ID,
		draft.EditionID,
		draft.Name,
		string(draft.Status),
		draft.LastModified,
		draft.CompletionPercentage,
	)
	if err != nil {
		return fmt.Errorf("upsert draft: %w", err)
	}
	return nil
}

func scanDraft(row pgx.Row) (*console.Draft, error) {
	var d console.Draft
	var status string
	if err := row.Scan(&d.ID, &d.EditionID, &d.Name, &status, &d.LastModified, &d.CompletionPercentage); err != nil {
		return nil, err
	}
	d.Status = console.DraftStatus(status)
	return &d, nil
}
