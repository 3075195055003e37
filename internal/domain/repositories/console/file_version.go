package console

import (
	"context"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

// FileVersionRepository defines data access for uploaded file version records
type FileVersionRepository interface {
	// ListByDraft returns the files of a draft in insertion order
	// Returns an empty slice for drafts without files
	ListByDraft(ctx context.Context, draftID string) ([]console.FileVersion, error)

	// GetByID returns a single file version or a NotFoundError
	GetByID(ctx context.Context, fileID string) (*console.FileVersion, error)

	// ReplaceDraft atomically swaps the full file list of a draft.
	// mutate receives the current list and returns the new one; it runs while
	// the draft is locked so concurrent mutations of the same draft serialise.
	ReplaceDraft(ctx context.Context, draftID string, mutate func([]console.FileVersion) ([]console.FileVersion, error)) ([]console.FileVersion, error)
}

// DraftRepository defines read access to the draft registry
type DraftRepository interface {
	GetByID(ctx context.Context, draftID string) (*console.Draft, error)
	List(ctx context.Context) ([]console.Draft, error)
}

// DraftWriter registers or refreshes a draft. Only seeding writes drafts.
type DraftWriter interface {
	Upsert(ctx context.Context, draft *console.Draft) error
}
