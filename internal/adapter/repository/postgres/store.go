// Package postgres provides the PostgreSQL collection-store backend for
// deployments that already run a database server.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oneacre/farmbooks/internal/usecase"
)

// Store implements usecase.KV over a pgx pool. Writes run through a
// retrier so transient serialization failures do not surface as lost
// mutations.
type Store struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewStore creates a new Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Get retrieves a collection snapshot by key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM collections WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrKeyNotFound
		}
		return nil, fmt.Errorf("postgres get %s: %w", key, err)
	}

	return value, nil
}

// Set overwrites a collection snapshot.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.retrier.Retry(ctx, func() error {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO collections (key, value, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
			key, value, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("postgres set %s: %w", key, err)
		}
		return nil
	})
}

// Delete removes a collection snapshot.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM collections WHERE key = $1`, key); err != nil {
		return fmt.Errorf("postgres delete %s: %w", key, err)
	}
	return nil
}

// Ping verifies the pool is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
