package record

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// HerdRepository implements usecase.HerdRepository. Species and logs
// share one lock so a recorded log and its head-count adjustment are
// applied atomically, and a species delete cascades to its logs.
type HerdRepository struct {
	mu      sync.RWMutex
	kv      usecase.KV
	species []domain.AnimalSpecies
	logs    []domain.AnimalLog
}

// NewHerdRepository loads the species and log collections.
func NewHerdRepository(ctx context.Context, kv usecase.KV, logger zerolog.Logger) (*HerdRepository, error) {
	species, err := loadCollection[domain.AnimalSpecies](ctx, kv, KeyAnimalSpecies, logger, nil)
	if err != nil {
		return nil, err
	}
	logs, err := loadCollection[domain.AnimalLog](ctx, kv, KeyAnimalLogs, logger, nil)
	if err != nil {
		return nil, err
	}
	return &HerdRepository{kv: kv, species: species, logs: logs}, nil
}

// AddSpecies appends a species and persists the collection.
func (r *HerdRepository) AddSpecies(ctx context.Context, species domain.AnimalSpecies) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(append([]domain.AnimalSpecies(nil), r.species...), species)
	if err := saveCollection(ctx, r.kv, KeyAnimalSpecies, next); err != nil {
		return err
	}
	r.species = next

	return nil
}

// GetSpecies retrieves a species by ID.
func (r *HerdRepository) GetSpecies(ctx context.Context, id string) (domain.AnimalSpecies, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.species {
		if s.ID == id {
			return s, nil
		}
	}

	return domain.AnimalSpecies{}, domain.ErrSpeciesNotFound
}

// ListSpecies returns a copy of the species collection.
func (r *HerdRepository) ListSpecies(ctx context.Context) ([]domain.AnimalSpecies, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.AnimalSpecies(nil), r.species...), nil
}

// DeleteSpecies removes a species and purges every log referencing it,
// persisting both collections.
func (r *HerdRepository) DeleteSpecies(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextSpecies := make([]domain.AnimalSpecies, 0, len(r.species))
	found := false
	for _, s := range r.species {
		if s.ID == id {
			found = true
			continue
		}
		nextSpecies = append(nextSpecies, s)
	}
	if !found {
		return domain.ErrSpeciesNotFound
	}

	nextLogs := make([]domain.AnimalLog, 0, len(r.logs))
	for _, log := range r.logs {
		if log.SpeciesID != id {
			nextLogs = append(nextLogs, log)
		}
	}

	if err := saveCollection(ctx, r.kv, KeyAnimalSpecies, nextSpecies); err != nil {
		return err
	}
	if err := saveCollection(ctx, r.kv, KeyAnimalLogs, nextLogs); err != nil {
		return err
	}
	r.species = nextSpecies
	r.logs = nextLogs

	return nil
}

// RecordLog appends the log and applies its head-count adjustment to the
// referenced species, persisting both collections.
func (r *HerdRepository) RecordLog(ctx context.Context, log domain.AnimalLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextSpecies := append([]domain.AnimalSpecies(nil), r.species...)
	found := false
	for i, s := range nextSpecies {
		if s.ID == log.SpeciesID {
			nextSpecies[i].Count = s.ApplyChange(log.Type, log.Quantity)
			found = true
			break
		}
	}
	if !found {
		return domain.ErrSpeciesNotFound
	}

	nextLogs := append(append([]domain.AnimalLog(nil), r.logs...), log)

	if err := saveCollection(ctx, r.kv, KeyAnimalLogs, nextLogs); err != nil {
		return err
	}
	if err := saveCollection(ctx, r.kv, KeyAnimalSpecies, nextSpecies); err != nil {
		return err
	}
	r.logs = nextLogs
	r.species = nextSpecies

	return nil
}

// ListLogs returns a copy of the log collection.
func (r *HerdRepository) ListLogs(ctx context.Context) ([]domain.AnimalLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.AnimalLog(nil), r.logs...), nil
}
