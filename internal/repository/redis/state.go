// Package redis stores the persisted console state in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleRepo "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories/console"
)

const keyPrefix = "console:state:"

// StateRepository implements the StateRepository interface on a Redis string key
type StateRepository struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

var _ consoleRepo.StateRepository = (*StateRepository)(nil)

// NewStateRepository connects to redisURL and verifies the connection
func NewStateRepository(redisURL string, logger *slog.Logger) (*StateRepository, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewStateRepositoryWithClient(client, logger), nil
}

// NewStateRepositoryWithClient creates a repository from an existing client
func NewStateRepositoryWithClient(client *redis.Client, logger *slog.Logger) *StateRepository {
	return &StateRepository{
		client: client,
		prefix: keyPrefix,
		logger: logger,
	}
}

func (r *StateRepository) key(name string) string {
	return r.prefix + name
}

// Load returns nil when the key has never been saved
func (r *StateRepository) Load(ctx context.Context, name string) (*console.PersistedState, error) {
	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	var state console.PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &state, nil
}

// Save writes the state without expiry
func (r *StateRepository) Save(ctx context.Context, name string, state *console.PersistedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := r.client.Set(ctx, r.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	r.logger.Debug("state saved to redis", "key", r.key(name), "bytes", len(data))
	return nil
}

func (r *StateRepository) Delete(ctx context.Context, name string) error {
	if err := r.client.Del(ctx, r.key(name)).Err(); err != nil {
		return fmt.Errorf("delete state: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable
func (r *StateRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *StateRepository) Close() error {
	return r.client.Close()
}
