// Package mocks provides hand-written mock implementations of the
// use case interfaces. Each mock behaves like an in-memory store by
// default; individual methods can be overridden through their Func
// fields.
package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/oneacre/farmbooks/internal/domain"
)

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction

	AddFunc    func(ctx context.Context, tx domain.Transaction) error
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context) ([]domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Add(ctx context.Context, tx domain.Transaction) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, tx)
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, tx := range m.transactions {
		if tx.ID == id {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Transaction(nil), m.transactions...), nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories []domain.Category

	AddFunc     func(ctx context.Context, category domain.Category) error
	UpdateFunc  func(ctx context.Context, category domain.Category) error
	DeleteFunc  func(ctx context.Context, id string) error
	GetByIDFunc func(ctx context.Context, id string) (domain.Category, error)
	ListFunc    func(ctx context.Context) ([]domain.Category, error)
}

func NewMockCategoryRepository(seed ...domain.Category) *MockCategoryRepository {
	return &MockCategoryRepository{categories: seed}
}

func (m *MockCategoryRepository) Add(ctx context.Context, category domain.Category) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append(m.categories, category)
	return nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, cat := range m.categories {
		if cat.ID == category.ID {
			m.categories[i] = category
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, cat := range m.categories {
		if cat.ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (domain.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, cat := range m.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return domain.Category{}, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Category(nil), m.categories...), nil
}

// MockHerdRepository is a mock implementation of HerdRepository. Its
// default behavior mirrors the repository contract: recording a log
// adjusts the referenced species' head-count, and deleting a species
// removes its logs.
type MockHerdRepository struct {
	mu      sync.RWMutex
	species []domain.AnimalSpecies
	logs    []domain.AnimalLog

	AddSpeciesFunc    func(ctx context.Context, species domain.AnimalSpecies) error
	GetSpeciesFunc    func(ctx context.Context, id string) (domain.AnimalSpecies, error)
	ListSpeciesFunc   func(ctx context.Context) ([]domain.AnimalSpecies, error)
	DeleteSpeciesFunc func(ctx context.Context, id string) error
	RecordLogFunc     func(ctx context.Context, log domain.AnimalLog) error
	ListLogsFunc      func(ctx context.Context) ([]domain.AnimalLog, error)
}

func NewMockHerdRepository() *MockHerdRepository {
	return &MockHerdRepository{}
}

func (m *MockHerdRepository) AddSpecies(ctx context.Context, species domain.AnimalSpecies) error {
	if m.AddSpeciesFunc != nil {
		return m.AddSpeciesFunc(ctx, species)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.species = append(m.species, species)
	return nil
}

func (m *MockHerdRepository) GetSpecies(ctx context.Context, id string) (domain.AnimalSpecies, error) {
	if m.GetSpeciesFunc != nil {
		return m.GetSpeciesFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.species {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.AnimalSpecies{}, domain.ErrSpeciesNotFound
}

func (m *MockHerdRepository) ListSpecies(ctx context.Context) ([]domain.AnimalSpecies, error) {
	if m.ListSpeciesFunc != nil {
		return m.ListSpeciesFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.AnimalSpecies(nil), m.species...), nil
}

func (m *MockHerdRepository) DeleteSpecies(ctx context.Context, id string) error {
	if m.DeleteSpeciesFunc != nil {
		return m.DeleteSpeciesFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.species {
		if s.ID == id {
			m.species = append(m.species[:i], m.species[i+1:]...)
			kept := m.logs[:0]
			for _, log := range m.logs {
				if log.SpeciesID != id {
					kept = append(kept, log)
				}
			}
			m.logs = kept
			return nil
		}
	}
	return domain.ErrSpeciesNotFound
}

func (m *MockHerdRepository) RecordLog(ctx context.Context, log domain.AnimalLog) error {
	if m.RecordLogFunc != nil {
		return m.RecordLogFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.species {
		if s.ID == log.SpeciesID {
			m.species[i].Count = s.ApplyChange(log.Type, log.Quantity)
			m.logs = append(m.logs, log)
			return nil
		}
	}
	return domain.ErrSpeciesNotFound
}

func (m *MockHerdRepository) ListLogs(ctx context.Context) ([]domain.AnimalLog, error) {
	if m.ListLogsFunc != nil {
		return m.ListLogsFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.AnimalLog(nil), m.logs...), nil
}

// MockAssetRepository is a mock implementation of AssetRepository.
type MockAssetRepository struct {
	mu     sync.RWMutex
	assets []domain.Asset

	AddFunc    func(ctx context.Context, asset domain.Asset) error
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context) ([]domain.Asset, error)
}

func NewMockAssetRepository() *MockAssetRepository {
	return &MockAssetRepository{}
}

func (m *MockAssetRepository) Add(ctx context.Context, asset domain.Asset) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, asset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets = append(m.assets, asset)
	return nil
}

func (m *MockAssetRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.assets {
		if a.ID == id {
			m.assets = append(m.assets[:i], m.assets[i+1:]...)
			return nil
		}
	}
	return domain.ErrAssetNotFound
}

func (m *MockAssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Asset(nil), m.assets...), nil
}

// MockLiabilityRepository is a mock implementation of LiabilityRepository.
type MockLiabilityRepository struct {
	mu          sync.RWMutex
	liabilities []domain.Liability

	AddFunc    func(ctx context.Context, liability domain.Liability) error
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context) ([]domain.Liability, error)
}

func NewMockLiabilityRepository() *MockLiabilityRepository {
	return &MockLiabilityRepository{}
}

func (m *MockLiabilityRepository) Add(ctx context.Context, liability domain.Liability) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, liability)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.liabilities = append(m.liabilities, liability)
	return nil
}

func (m *MockLiabilityRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, l := range m.liabilities {
		if l.ID == id {
			m.liabilities = append(m.liabilities[:i], m.liabilities[i+1:]...)
			return nil
		}
	}
	return domain.ErrLiabilityNotFound
}

func (m *MockLiabilityRepository) List(ctx context.Context) ([]domain.Liability, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Liability(nil), m.liabilities...), nil
}

// MockInventoryRepository is a mock implementation of InventoryRepository.
type MockInventoryRepository struct {
	mu        sync.RWMutex
	items     []domain.InventoryItem
	movements []domain.InventoryMovement

	AddItemFunc        func(ctx context.Context, item domain.InventoryItem) error
	GetItemFunc        func(ctx context.Context, id string) (domain.InventoryItem, error)
	ListItemsFunc      func(ctx context.Context) ([]domain.InventoryItem, error)
	DeleteItemFunc     func(ctx context.Context, id string) error
	RecordMovementFunc func(ctx context.Context, movement domain.InventoryMovement) error
	ListMovementsFunc  func(ctx context.Context) ([]domain.InventoryMovement, error)
}

func NewMockInventoryRepository() *MockInventoryRepository {
	return &MockInventoryRepository{}
}

func (m *MockInventoryRepository) AddItem(ctx context.Context, item domain.InventoryItem) error {
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)
	return nil
}

func (m *MockInventoryRepository) GetItem(ctx context.Context, id string) (domain.InventoryItem, error) {
	if m.GetItemFunc != nil {
		return m.GetItemFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.InventoryItem{}, domain.ErrItemNotFound
}

func (m *MockInventoryRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	if m.ListItemsFunc != nil {
		return m.ListItemsFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.InventoryItem(nil), m.items...), nil
}

func (m *MockInventoryRepository) DeleteItem(ctx context.Context, id string) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			kept := m.movements[:0]
			for _, mv := range m.movements {
				if mv.ItemID != id {
					kept = append(kept, mv)
				}
			}
			m.movements = kept
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func (m *MockInventoryRepository) RecordMovement(ctx context.Context, movement domain.InventoryMovement) error {
	if m.RecordMovementFunc != nil {
		return m.RecordMovementFunc(ctx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID == movement.ItemID {
			m.items[i].Quantity = item.ApplyMovement(movement.Type, movement.Quantity)
			m.movements = append(m.movements, movement)
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func (m *MockInventoryRepository) ListMovements(ctx context.Context) ([]domain.InventoryMovement, error) {
	if m.ListMovementsFunc != nil {
		return m.ListMovementsFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.InventoryMovement(nil), m.movements...), nil
}

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mu      sync.RWMutex
	profile domain.Profile

	GetFunc func(ctx context.Context) (domain.Profile, error)
	SetFunc func(ctx context.Context, profile domain.Profile) error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{}
}

func (m *MockProfileRepository) Get(ctx context.Context) (domain.Profile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile, nil
}

func (m *MockProfileRepository) Set(ctx context.Context, profile domain.Profile) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, profile)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = profile
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator. It yields
// deterministic sequential IDs unless GenerateFunc is set.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("id-%d", m.next)
}

// MockAdviceClient is a mock implementation of AdviceClient.
type MockAdviceClient struct {
	GenerateAdviceFunc func(ctx context.Context, system, prompt string) (string, error)
}

func NewMockAdviceClient() *MockAdviceClient {
	return &MockAdviceClient{}
}

func (m *MockAdviceClient) GenerateAdvice(ctx context.Context, system, prompt string) (string, error) {
	if m.GenerateAdviceFunc != nil {
		return m.GenerateAdviceFunc(ctx, system, prompt)
	}
	return "", nil
}
