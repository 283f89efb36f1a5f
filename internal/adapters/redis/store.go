// Package redis persists the space tree as a JSON document under a single
// Redis key, for setups where the tree should live off the local disk.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/alcove/pkg/domain"
)

// DefaultKey is the Redis key used when none is configured.
const DefaultKey = "alcove:tree"

// Store implements ports.TreeStore using Redis.
type Store struct {
	client *backend.Client
	key    string
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the Redis key the document is stored under.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// New creates a new Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		key:    DefaultKey,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Save persists the tree as JSON under the configured key.
func (s *Store) Save(ctx context.Context, tree *domain.Space) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves and decodes the tree from the configured key.
func (s *Store) Load(ctx context.Context) (*domain.Space, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrTreeNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var tree domain.Space
	if err := json.Unmarshal([]byte(val), &tree); err != nil {
		return nil, fmt.Errorf("key %s: %w: %w", s.key, domain.ErrInvalidDocument, err)
	}
	return &tree, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
