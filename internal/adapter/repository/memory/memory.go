// Package memory provides an ephemeral KV backend. It backs tests and
// the "memory" store backend for throwaway runs.
package memory

import (
	"context"
	"sync"

	"github.com/oneacre/farmbooks/internal/usecase"
)

// KV implements usecase.KV in process memory.
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKV creates an empty in-memory KV.
func NewKV() *KV {
	return &KV{data: make(map[string][]byte)}
}

// Get retrieves a value by key.
func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	value, ok := kv.data[key]
	if !ok {
		return nil, usecase.ErrKeyNotFound
	}

	return append([]byte(nil), value...), nil
}

// Set stores a value under key.
func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.data[key] = append([]byte(nil), value...)

	return nil
}

// Delete removes a key.
func (kv *KV) Delete(ctx context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	delete(kv.data, key)

	return nil
}

// Ping always succeeds.
func (kv *KV) Ping(ctx context.Context) error {
	return nil
}
