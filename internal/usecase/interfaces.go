package usecase

import (
	"context"
	"errors"

	"github.com/oneacre/farmbooks/internal/domain"
)

// ErrKeyNotFound is returned by a KV backend when a collection key has
// never been written.
var ErrKeyNotFound = errors.New("key not found")

// KV is the persistent key-value backend a record store writes collection
// snapshots to. One key holds one JSON-encoded collection.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	Add(ctx context.Context, tx domain.Transaction) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Transaction, error)
}

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	Add(ctx context.Context, category domain.Category) error
	Update(ctx context.Context, category domain.Category) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

// HerdRepository defines data access for animal species and their
// population-change logs. Species and logs live behind one lock so that
// recording a log and adjusting the head-count is atomic, and deleting a
// species cascades to its logs.
type HerdRepository interface {
	AddSpecies(ctx context.Context, species domain.AnimalSpecies) error
	GetSpecies(ctx context.Context, id string) (domain.AnimalSpecies, error)
	ListSpecies(ctx context.Context) ([]domain.AnimalSpecies, error)
	// DeleteSpecies removes the species and every log referencing it.
	DeleteSpecies(ctx context.Context, id string) error
	// RecordLog appends the log and applies its head-count adjustment to
	// the referenced species in one step.
	RecordLog(ctx context.Context, log domain.AnimalLog) error
	ListLogs(ctx context.Context) ([]domain.AnimalLog, error)
}

// AssetRepository defines data access for fixed assets.
type AssetRepository interface {
	Add(ctx context.Context, asset domain.Asset) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Asset, error)
}

// LiabilityRepository defines data access for liabilities.
type LiabilityRepository interface {
	Add(ctx context.Context, liability domain.Liability) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Liability, error)
}

// InventoryRepository defines data access for inventory items and stock
// movements, with the same atomicity contract as HerdRepository.
type InventoryRepository interface {
	AddItem(ctx context.Context, item domain.InventoryItem) error
	GetItem(ctx context.Context, id string) (domain.InventoryItem, error)
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
	RecordMovement(ctx context.Context, movement domain.InventoryMovement) error
	ListMovements(ctx context.Context) ([]domain.InventoryMovement, error)
}

// ProfileRepository persists the single tenant profile.
type ProfileRepository interface {
	Get(ctx context.Context) (domain.Profile, error)
	Set(ctx context.Context, profile domain.Profile) error
}

// IDGenerator generates unique record IDs.
type IDGenerator interface {
	Generate() string
}

// AdviceClient is the external text-generation collaborator. It is
// treated as an opaque black box: callers must degrade gracefully when
// it fails or returns nothing.
type AdviceClient interface {
	GenerateAdvice(ctx context.Context, system, prompt string) (string, error)
}
