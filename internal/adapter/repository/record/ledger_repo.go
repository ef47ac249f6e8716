package record

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	mu    sync.RWMutex
	kv    usecase.KV
	items []domain.Transaction
}

// NewTransactionRepository loads the transaction collection from the
// backend and returns a repository over it.
func NewTransactionRepository(ctx context.Context, kv usecase.KV, logger zerolog.Logger) (*TransactionRepository, error) {
	items, err := loadCollection[domain.Transaction](ctx, kv, KeyTransactions, logger, nil)
	if err != nil {
		return nil, err
	}
	return &TransactionRepository{kv: kv, items: items}, nil
}

// Add appends a transaction and persists the collection.
func (r *TransactionRepository) Add(ctx context.Context, tx domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(append([]domain.Transaction(nil), r.items...), tx)
	if err := saveCollection(ctx, r.kv, KeyTransactions, next); err != nil {
		return err
	}
	r.items = next

	return nil
}

// Delete removes a transaction by ID and persists the collection.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Transaction, 0, len(r.items))
	found := false
	for _, tx := range r.items {
		if tx.ID == id {
			found = true
			continue
		}
		next = append(next, tx)
	}
	if !found {
		return domain.ErrTransactionNotFound
	}

	if err := saveCollection(ctx, r.kv, KeyTransactions, next); err != nil {
		return err
	}
	r.items = next

	return nil
}

// List returns a copy of the transaction collection.
func (r *TransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Transaction(nil), r.items...), nil
}

// CategoryRepository implements usecase.CategoryRepository. An empty or
// unparsable stored collection falls back to the seed defaults.
type CategoryRepository struct {
	mu    sync.RWMutex
	kv    usecase.KV
	items []domain.Category
}

// NewCategoryRepository loads the category collection, seeding defaults
// when nothing usable was persisted.
func NewCategoryRepository(ctx context.Context, kv usecase.KV, logger zerolog.Logger) (*CategoryRepository, error) {
	items, err := loadCollection(ctx, kv, KeyCategories, logger, domain.SeedCategories())
	if err != nil {
		return nil, err
	}
	return &CategoryRepository{kv: kv, items: items}, nil
}

// Add appends a category and persists the collection.
func (r *CategoryRepository) Add(ctx context.Context, category domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(append([]domain.Category(nil), r.items...), category)
	if err := saveCollection(ctx, r.kv, KeyCategories, next); err != nil {
		return err
	}
	r.items = next

	return nil
}

// Update replaces a category wholesale and persists the collection.
func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append([]domain.Category(nil), r.items...)
	found := false
	for i, c := range next {
		if c.ID == category.ID {
			next[i] = category
			found = true
			break
		}
	}
	if !found {
		return domain.ErrCategoryNotFound
	}

	if err := saveCollection(ctx, r.kv, KeyCategories, next); err != nil {
		return err
	}
	r.items = next

	return nil
}

// Delete removes a category by ID and persists the collection.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Category, 0, len(r.items))
	found := false
	for _, c := range r.items {
		if c.ID == id {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		return domain.ErrCategoryNotFound
	}

	if err := saveCollection(ctx, r.kv, KeyCategories, next); err != nil {
		return err
	}
	r.items = next

	return nil
}

// GetByID retrieves a category by ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}

	return domain.Category{}, domain.ErrCategoryNotFound
}

// List returns a copy of the category collection.
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Category(nil), r.items...), nil
}
