package record

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// InventoryRepository implements usecase.InventoryRepository with the
// same single-lock atomicity as the herd repository.
type InventoryRepository struct {
	mu        sync.RWMutex
	kv        usecase.KV
	items     []domain.InventoryItem
	movements []domain.InventoryMovement
}

// NewInventoryRepository loads the item and movement collections.
func NewInventoryRepository(ctx context.Context, kv usecase.KV, logger zerolog.Logger) (*InventoryRepository, error) {
	items, err := loadCollection[domain.InventoryItem](ctx, kv, KeyItems, logger, nil)
	if err != nil {
		return nil, err
	}
	movements, err := loadCollection[domain.InventoryMovement](ctx, kv, KeyMovements, logger, nil)
	if err != nil {
		return nil, err
	}
	return &InventoryRepository{kv: kv, items: items, movements: movements}, nil
}

// AddItem appends an item and persists the collection.
func (r *InventoryRepository) AddItem(ctx context.Context, item domain.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(append([]domain.InventoryItem(nil), r.items...), item)
	if err := saveCollection(ctx, r.kv, KeyItems, next); err != nil {
		return err
	}
	r.items = next

	return nil
}

// GetItem retrieves an item by ID.
func (r *InventoryRepository) GetItem(ctx context.Context, id string) (domain.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}

	return domain.InventoryItem{}, domain.ErrItemNotFound
}

// ListItems returns a copy of the item collection.
func (r *InventoryRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.InventoryItem(nil), r.items...), nil
}

// DeleteItem removes an item and purges every movement referencing it.
func (r *InventoryRepository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextItems := make([]domain.InventoryItem, 0, len(r.items))
	found := false
	for _, item := range r.items {
		if item.ID == id {
			found = true
			continue
		}
		nextItems = append(nextItems, item)
	}
	if !found {
		return domain.ErrItemNotFound
	}

	nextMovements := make([]domain.InventoryMovement, 0, len(r.movements))
	for _, m := range r.movements {
		if m.ItemID != id {
			nextMovements = append(nextMovements, m)
		}
	}

	if err := saveCollection(ctx, r.kv, KeyItems, nextItems); err != nil {
		return err
	}
	if err := saveCollection(ctx, r.kv, KeyMovements, nextMovements); err != nil {
		return err
	}
	r.items = nextItems
	r.movements = nextMovements

	return nil
}

// RecordMovement appends the movement and applies its quantity
// adjustment to the referenced item, persisting both collections.
func (r *InventoryRepository) RecordMovement(ctx context.Context, movement domain.InventoryMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextItems := append([]domain.InventoryItem(nil), r.items...)
	found := false
	for i, item := range nextItems {
		if item.ID == movement.ItemID {
			nextItems[i].Quantity = item.ApplyMovement(movement.Type, movement.Quantity)
			found = true
			break
		}
	}
	if !found {
		return domain.ErrItemNotFound
	}

	nextMovements := append(append([]domain.InventoryMovement(nil), r.movements...), movement)

	if err := saveCollection(ctx, r.kv, KeyMovements, nextMovements); err != nil {
		return err
	}
	if err := saveCollection(ctx, r.kv, KeyItems, nextItems); err != nil {
		return err
	}
	r.movements = nextMovements
	r.items = nextItems

	return nil
}

// ListMovements returns a copy of the movement collection.
func (r *InventoryRepository) ListMovements(ctx context.Context) ([]domain.InventoryMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.InventoryMovement(nil), r.movements...), nil
}
