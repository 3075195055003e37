package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories"
	consoleRepo "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories/console"
)

const fileVersionColumns = `id, draft_id, filename, upload_date, uploaded_by, upload_comment,
	is_latest, is_selected, file_size, description`

// PostgresFileVersionRepository implements the FileVersionRepository interface.
// Rows keep their insertion order through the seq column.
type PostgresFileVersionRepository struct {
	pool      *pgxpool.Pool
	tables    *TableNames
	txManager repositories.TransactionManager
	logger    *slog.Logger
}

// NewFileVersionRepository creates a new PostgresFileVersionRepository
func NewFileVersionRepository(config *RepositoryConfig, txManager repositories.TransactionManager) *PostgresFileVersionRepository {
	return &PostgresFileVersionRepository{
		pool:      config.Pool,
		tables:    config.Tables,
		txManager: txManager,
		logger:    config.Logger,
	}
}

var _ consoleRepo.FileVersionRepository = (*PostgresFileVersionRepository)(nil)

func (r *PostgresFileVersionRepository) ListByDraft(ctx context.Context, draftID string) ([]console.FileVersion, error) {
	return r.listByDraft(ctx, GetExecutor(ctx, r.pool), draftID)
}

func (r *PostgresFileVersionRepository) GetByID(ctx context.Context, fileID string) (*console.FileVersion, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, fileVersionColumns, r.tables.FileVersions)

	executor := GetExecutor(ctx, r.pool)
	file, err := scanFileVersion(executor.QueryRow(ctx, query, fileID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("file", fileID)
		}
		return nil, fmt.Errorf("get file version: %w", err)
	}
	return file, nil
}

// ReplaceDraft locks the draft row, hands the current files to mutate and
// rewrites the draft's rows with the result, all in one transaction.
func (r *PostgresFileVersionRepository) ReplaceDraft(
	ctx context.Context,
	draftID string,
	mutate func([]console.FileVersion) ([]console.FileVersion, error),
) ([]console.FileVersion, error) {
	var result []console.FileVersion

	err := r.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		executor := GetExecutor(txCtx, r.pool)

		lockQuery := fmt.Sprintf(`SELECT id FROM %s WHERE id = $1 FOR UPDATE`, r.tables.Drafts)
		var lockedID string
		if err := executor.QueryRow(txCtx, lockQuery, draftID).Scan(&lockedID); err != nil {
			if IsPgNoRowsError(err) {
				return domain.NewNotFound("draft", draftID)
			}
			return fmt.Errorf("lock draft: %w", err)
		}

		current, err := r.listByDraft(txCtx, executor, draftID)
		if err != nil {
			return err
		}

		next, err := mutate(current)
		if err != nil {
			return err
		}

		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE draft_id = $1`, r.tables.FileVersions)
		if _, err := executor.Exec(txCtx, deleteQuery, draftID); err != nil {
			return fmt.Errorf("clear draft files: %w", err)
		}

		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (seq, %s)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, r.tables.FileVersions, fileVersionColumns)
		for i := range next {
			next[i].DraftID = draftID
			f := next[i]
			if _, err := executor.Exec(txCtx, insertQuery,
				i,
				f.ID,
				f.DraftID,
				f.Filename,
				f.UploadDate,
				f.UploadedBy,
				f.UploadComment,
				f.IsLatest,
				f.IsSelected,
				f.FileSize,
				f.Description,
			); err != nil {
				if IsPgDuplicateError(err) {
					return &domain.ConflictError{
						Message:      fmt.Sprintf("file %s already exists", f.ID),
						ResourceType: "file",
						ResourceID:   f.ID,
					}
				}
				return fmt.Errorf("insert file version: %w", err)
			}
		}

		result = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("draft files replaced", "draft_id", draftID, "file_count", len(result))
	return result, nil
}

func (r *PostgresFileVersionRepository) listByDraft(ctx context.Context, executor repositories.DBTX, draftID string) ([]console.FileVersion, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE draft_id = $1
		ORDER BY seq
	`, fileVersionColumns, r.tables.FileVersions)

	rows, err := executor.Query(ctx, query, draftID)
	if err != nil {
		return nil, fmt.Errorf("list file versions: %w", err)
	}
	defer rows.Close()

	files := make([]console.FileVersion, 0)
	for rows.Next() {
		f, err := scanFileVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan file version: %w", err)
		}
		files = append(files, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate file versions: %w", err)
	}
	return files, nil
}

func scanFileVersion(row pgx.Row) (*console.FileVersion, error) {
	var f console.FileVersion
	err := row.Scan(
		&f.ID,
		&f.DraftID,
		&f.Filename,
		&f.UploadDate,
		&f.UploadedBy,
		&f.UploadComment,
		&f.IsLatest,
		&f.IsSelected,
		&f.FileSize,
		&f.Description,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
