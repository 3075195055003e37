package seed

import (
	"context"
	"fmt"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleRepo "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories/console"
)

// Install writes the fixture's drafts and their file histories. Each draft's
// file list is replaced wholesale, so installing twice is harmless.
func (f *Fixture) Install(ctx context.Context, drafts consoleRepo.DraftWriter, files consoleRepo.FileVersionRepository) error {
	byDraft := make(map[string][]console.FileVersion)
	for _, file := range f.Files {
		byDraft[file.DraftID] = append(byDraft[file.DraftID], file)
	}

	for i := range f.Drafts {
		draft := f.Drafts[i]
		if err := drafts.Upsert(ctx, &draft); err != nil {
			return fmt.Errorf("upsert draft %s: %w", draft.ID, err)
		}

		seeded := byDraft[draft.ID]
		if seeded == nil {
			seeded = []console.FileVersion{}
		}
		if _, err := files.ReplaceDraft(ctx, draft.ID, func([]console.FileVersion) ([]console.FileVersion, error) {
			return seeded, nil
		}); err != nil {
			return fmt.Errorf("seed files of draft %s: %w", draft.ID, err)
		}
	}

	return nil
}
