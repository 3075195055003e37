// Package memory provides in-process repository implementations. They back
// the default single-node deployment and the service tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleRepo "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories/console"
)

// StateRepository keeps persisted console state as encoded JSON so callers
// never share memory with what is stored.
type StateRepository struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewStateRepository creates an empty in-memory state repository
func NewStateRepository() *StateRepository {
	return &StateRepository{items: make(map[string][]byte)}
}

var _ consoleRepo.StateRepository = (*StateRepository)(nil)

func (r *StateRepository) Load(_ context.Context, key string) (*console.PersistedState, error) {
	r.mu.RLock()
	data, ok := r.items[key]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var state console.PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode state %q: %w", key, err)
	}
	return &state, nil
}

func (r *StateRepository) Save(_ context.Context, key string, state *console.PersistedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state %q: %w", key, err)
	}
	r.mu.Lock()
	r.items[key] = data
	r.mu.Unlock()
	return nil
}

func (r *StateRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	delete(r.items, key)
	r.mu.Unlock()
	return nil
}
