package record

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// AssetRepository implements usecase.AssetRepository.
type AssetRepository struct {
	mu    sync.RWMutex
	kv    usecase.KV
	items []domain.Asset
}

// NewAssetRepository loads the asset collection.
func NewAssetRepository(ctx context.Context, kv usecase.KV, logger zerolog.Logger) (*AssetRepository, error) {
	items, err := loadCollection[domain.Asset](ctx, kv, KeyAssets, logger, nil)
	if err != nil {
		return nil, err
	}
	return &AssetRepository{kv: kv, items: items}, nil
}

// Add appends an asset and persists the collection.
func (r *AssetRepository) Add(ctx context.Context, asset domain.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(append([]domain.Asset(nil), r.items...), asset)
	if err := saveCollection(ctx, r.kv, KeyAssets, next); err != nil {
		return err
	}
	r.items = next

	return nil
}

// Delete removes an asset by ID and persists the collection.
func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Asset, 0, len(r.items))
	found := false
	for _, a := range r.items {
		if a.ID == id {
			found = true
			continue
		}
		next = append(next, a)
	}
	if !found {
		return domain.ErrAssetNotFound
	}

	if err := saveCollection(ctx, r.kv, KeyAssets, next); err != nil {
		return err
	}
	r.items = next

	return nil
}

// List returns a copy of the asset collection.
func (r *AssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Asset(nil), r.items...), nil
}
