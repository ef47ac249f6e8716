// Package instrumented decorates a KV backend with operation counters.
package instrumented

import (
	"context"
	"errors"

	"github.com/oneacre/farmbooks/internal/infrastructure/metrics"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// KV wraps another usecase.KV and counts every operation and failure.
// A Get miss is a normal outcome, not a store error.
type KV struct {
	next    usecase.KV
	metrics *metrics.Metrics
}

// Wrap decorates a KV backend. A nil metrics value returns the backend
// unchanged.
func Wrap(next usecase.KV, m *metrics.Metrics) usecase.KV {
	if m == nil {
		return next
	}
	return &KV{next: next, metrics: m}
}

func (kv *KV) record(operation string, err error) {
	kv.metrics.StoreOperations.WithLabelValues(operation).Inc()
	if err != nil && !errors.Is(err, usecase.ErrKeyNotFound) {
		kv.metrics.StoreErrors.WithLabelValues(operation).Inc()
	}
}

// Get retrieves a collection payload.
func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := kv.next.Get(ctx, key)
	kv.record("get", err)
	return value, err
}

// Set stores a collection payload.
func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	err := kv.next.Set(ctx, key, value)
	kv.record("set", err)
	return err
}

// Delete removes a collection payload.
func (kv *KV) Delete(ctx context.Context, key string) error {
	err := kv.next.Delete(ctx, key)
	kv.record("delete", err)
	return err
}

// Ping checks backend health.
func (kv *KV) Ping(ctx context.Context) error {
	err := kv.next.Ping(ctx)
	kv.record("ping", err)
	return err
}
