// Package redis provides the Redis collection-store backend.
package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/oneacre/farmbooks/internal/usecase"
)

// Store implements usecase.KV using Redis.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a new Store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		prefix: "farmbooks:",
	}
}

// Get retrieves a collection snapshot by key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrKeyNotFound
		}
		return nil, err
	}

	return value, nil
}

// Set overwrites a collection snapshot. Snapshots never expire.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Delete removes a collection snapshot.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Ping verifies the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
