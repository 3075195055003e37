package console

import (
	"context"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

// StateRepository stores the persisted subset of the console state under a key
type StateRepository interface {
	// Load returns the stored state for key
	// Returns nil if nothing has been saved yet
	Load(ctx context.Context, key string) (*console.PersistedState, error)

	// Save creates or replaces the state stored under key
	Save(ctx context.Context, key string, state *console.PersistedState) error

	// Delete removes the stored state; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
