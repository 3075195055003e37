package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleRepo "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories/console"
)

// DraftRepository is an in-memory draft registry
type DraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]console.Draft
}

// NewDraftRepository creates a registry holding drafts
func NewDraftRepository(drafts []console.Draft) *DraftRepository {
	m := make(map[string]console.Draft, len(drafts))
	for _, d := range drafts {
		m[d.ID] = d
	}
	return &DraftRepository{drafts: m}
}

var (
	_ consoleRepo.DraftRepository = (*DraftRepository)(nil)
	_ consoleRepo.DraftWriter     = (*DraftRepository)(nil)
)

func (r *DraftRepository) GetByID(_ context.Context, draftID string) (*console.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.drafts[draftID]
	if !ok {
		return nil, domain.NewNotFound("draft", draftID)
	}
	return &d, nil
}

// List returns all drafts ordered by id
func (r *DraftRepository) List(_ context.Context) ([]console.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]console.Draft, 0, len(r.drafts))
	for _, d := range r.drafts {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Upsert adds or replaces a draft
func (r *DraftRepository) Upsert(_ context.Context, draft *console.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.ID] = *draft
	return nil
}
