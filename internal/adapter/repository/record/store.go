// Package record implements the in-memory record collections backed by a
// persistent key-value store. Each collection is held in memory behind a
// lock and re-serialized wholesale to its key on every mutation, the way
// the collections are read back at startup.
package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/oneacre/farmbooks/internal/usecase"
)

// Collection keys in the KV backend.
const (
	KeyTransactions  = "transactions"
	KeyCategories    = "categories"
	KeyAnimalSpecies = "animal_species"
	KeyAnimalLogs    = "animal_logs"
	KeyAssets        = "assets"
	KeyLiabilities   = "liabilities"
	KeyItems         = "inventory_items"
	KeyMovements     = "inventory_movements"
	KeyProfile       = "user"
)

// loadCollection reads one collection from the backend. A missing key or
// an unparsable value yields the fallback; a backend failure is an error.
func loadCollection[T any](ctx context.Context, kv usecase.KV, key string, logger zerolog.Logger, fallback []T) ([]T, error) {
	data, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, usecase.ErrKeyNotFound) {
			return append([]T(nil), fallback...), nil
		}
		return nil, fmt.Errorf("load collection %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn().Err(err).Str("collection", key).Msg("stored collection unparsable, falling back")
		return append([]T(nil), fallback...), nil
	}
	if items == nil {
		items = append([]T(nil), fallback...)
	}

	return items, nil
}

// saveCollection writes one collection wholesale to its key.
func saveCollection[T any](ctx context.Context, kv usecase.KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("persist collection %s: %w", key, err)
	}
	return nil
}
