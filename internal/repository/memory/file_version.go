package memory

import (
	"context"
	"sync"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleRepo "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories/console"
)

// FileVersionRepository stores file versions per draft.
// Each draft's list is replaced wholesale on mutation.
type FileVersionRepository struct {
	mu      sync.RWMutex
	byDraft map[string][]console.FileVersion
	locks   map[string]*sync.Mutex
}

// NewFileVersionRepository creates a repository seeded with files.
// Files are grouped by their DraftID.
func NewFileVersionRepository(files []console.FileVersion) *FileVersionRepository {
	r := &FileVersionRepository{
		byDraft: make(map[string][]console.FileVersion),
		locks:   make(map[string]*sync.Mutex),
	}
	for _, f := range files {
		r.byDraft[f.DraftID] = append(r.byDraft[f.DraftID], copyFile(f))
	}
	return r
}

var _ consoleRepo.FileVersionRepository = (*FileVersionRepository)(nil)

func (r *FileVersionRepository) ListByDraft(_ context.Context, draftID string) ([]console.FileVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyFiles(r.byDraft[draftID]), nil
}

func (r *FileVersionRepository) GetByID(_ context.Context, fileID string) (*console.FileVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, files := range r.byDraft {
		for _, f := range files {
			if f.ID == fileID {
				out := copyFile(f)
				return &out, nil
			}
		}
	}
	return nil, domain.NewNotFound("file", fileID)
}

func (r *FileVersionRepository) ReplaceDraft(
	_ context.Context,
	draftID string,
	mutate func([]console.FileVersion) ([]console.FileVersion, error),
) ([]console.FileVersion, error) {
	lock := r.draftLock(draftID)
	lock.Lock()
	defer lock.Unlock()

	r.mu.RLock()
	current := copyFiles(r.byDraft[draftID])
	r.mu.RUnlock()

	next, err := mutate(current)
	if err != nil {
		return nil, err
	}

	stored := copyFiles(next)
	for i := range stored {
		stored[i].DraftID = draftID
	}
	r.mu.Lock()
	r.byDraft[draftID] = stored
	r.mu.Unlock()

	return copyFiles(stored), nil
}

func (r *FileVersionRepository) draftLock(draftID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[draftID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[draftID] = lock
	}
	return lock
}

func copyFiles(files []console.FileVersion) []console.FileVersion {
	out := make([]console.FileVersion, len(files))
	for i, f := range files {
		out[i] = copyFile(f)
	}
	return out
}

func copyFile(f console.FileVersion) console.FileVersion {
	if f.FileSize != nil {
		size := *f.FileSize
		f.FileSize = &size
	}
	if f.Description != nil {
		desc := *f.Description
		f.Description = &desc
	}
	return f
}
