package record

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// LiabilityRepository implements usecase.LiabilityRepository.
type LiabilityRepository struct {
	mu    sync.RWMutex
	kv    usecase.KV
	items []domain.Liability
}

// NewLiabilityRepository loads the liability collection.
func NewLiabilityRepository(ctx context.Context, kv usecase.KV, logger zerolog.Logger) (*LiabilityRepository, error) {
	items, err := loadCollection[domain.Liability](ctx, kv, KeyLiabilities, logger, nil)
	if err != nil {
		return nil, err
	}
	return &LiabilityRepository{kv: kv, items: items}, nil
}

// Add appends a liability and persists the collection.
func (r *LiabilityRepository) Add(ctx context.Context, liability domain.Liability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(append([]domain.Liability(nil), r.items...), liability)
	if err := saveCollection(ctx, r.kv, KeyLiabilities, next); err != nil {
		return err
	}
	r.items = next

	return nil
}

// Delete removes a liability by ID and persists the collection.
func (r *LiabilityRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Liability, 0, len(r.items))
	found := false
	for _, l := range r.items {
		if l.ID == id {
			found = true
			continue
		}
		next = append(next, l)
	}
	if !found {
		return domain.ErrLiabilityNotFound
	}

	if err := saveCollection(ctx, r.kv, KeyLiabilities, next); err != nil {
		return err
	}
	r.items = next

	return nil
}

// List returns a copy of the liability collection.
func (r *LiabilityRepository) List(ctx context.Context) ([]domain.Liability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Liability(nil), r.items...), nil
}
