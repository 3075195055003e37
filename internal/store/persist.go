package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleRepo "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories/console"
)

const saveTimeout = 5 * time.Second

// Restore builds an initial state from the persisted subset stored under key.
// The bool reports whether a stored state was found; fallback is returned otherwise.
// Edit mode and the editing field always start cleared.
func Restore(ctx context.Context, repo consoleRepo.StateRepository, key string, fallback console.State) (console.State, bool, error) {
	persisted, err := repo.Load(ctx, key)
	if err != nil {
		return fallback, false, fmt.Errorf("restore state %q: %w", key, err)
	}
	if persisted == nil {
		return fallback, false, nil
	}

	state := persisted.ToState()
	if !state.SelectedLevel.Valid() {
		state.SelectedLevel = console.LevelPublisher
	}
	if state.TreeData == nil {
		state.TreeData = []console.TreeNode{}
	}
	return state, true, nil
}

// Persister writes the persisted subset of a store back to a repository
// whenever it changes.
type Persister struct {
	repo   consoleRepo.StateRepository
	key    string
	logger *slog.Logger

	mu   sync.Mutex
	last []byte
}

// NewPersister creates a persister writing under key
func NewPersister(repo consoleRepo.StateRepository, key string, logger *slog.Logger) *Persister {
	return &Persister{repo: repo, key: key, logger: logger}
}

// Attach subscribes the persister to s. The current state is recorded as the
// baseline so attaching does not trigger a write.
func (p *Persister) Attach(s *Store) (detach func()) {
	if b, err := json.Marshal(s.Snapshot().Persisted()); err == nil {
		p.mu.Lock()
		p.last = b
		p.mu.Unlock()
	}
	return s.Subscribe(func(state console.State) {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if _, err := p.Save(ctx, state); err != nil {
			p.logger.Error("failed to persist console state", "key", p.key, "error", err)
		}
	})
}

// Save stores the persisted subset of state if it differs from the last
// saved value. It reports whether a write happened.
func (p *Persister) Save(ctx context.Context, state console.State) (bool, error) {
	persisted := state.Persisted()
	b, err := json.Marshal(persisted)
	if err != nil {
		return false, fmt.Errorf("encode state: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last != nil && bytes.Equal(p.last, b) {
		return false, nil
	}
	if err := p.repo.Save(ctx, p.key, &persisted); err != nil {
		return false, err
	}
	p.last = b

	p.logger.Debug("console state persisted", "key", p.key, "bytes", len(b))
	return true, nil
}
