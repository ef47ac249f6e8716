package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/infrastructure/metrics"
)

// InventoryUseCase maintains supply stock levels as the fold of their
// movement history, mirroring the herd ledger's event model.
type InventoryUseCase struct {
	invRepo InventoryRepository
	idGen   IDGenerator
	metrics *metrics.Metrics
}

// NewInventoryUseCase creates a new InventoryUseCase.
func NewInventoryUseCase(invRepo InventoryRepository, idGen IDGenerator, m *metrics.Metrics) *InventoryUseCase {
	return &InventoryUseCase{
		invRepo: invRepo,
		idGen:   idGen,
		metrics: m,
	}
}

// AddItemInput represents input for registering an inventory item. The
// quantity always starts at zero and is only moved by movements.
type AddItemInput struct {
	Name          string
	SKU           string
	Description   string
	UnitCost      decimal.Decimal
	MinStockLevel int
}

// AddItem registers a new inventory item with zero stock.
func (uc *InventoryUseCase) AddItem(ctx context.Context, input AddItemInput) (domain.InventoryItem, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return domain.InventoryItem{}, err
	}
	if err := domain.ValidateAmount(input.UnitCost); err != nil {
		return domain.InventoryItem{}, err
	}

	item := domain.InventoryItem{
		ID:            uc.idGen.Generate(),
		Name:          input.Name,
		SKU:           input.SKU,
		Description:   input.Description,
		Quantity:      0,
		UnitCost:      input.UnitCost,
		MinStockLevel: input.MinStockLevel,
	}

	if err := uc.invRepo.AddItem(ctx, item); err != nil {
		return domain.InventoryItem{}, err
	}

	return item, nil
}

// DeleteItem removes an item and all movements referencing it.
func (uc *InventoryUseCase) DeleteItem(ctx context.Context, id string) error {
	return uc.invRepo.DeleteItem(ctx, id)
}

// ListItems lists all inventory items.
func (uc *InventoryUseCase) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	return uc.invRepo.ListItems(ctx)
}

// RecordMovementInput represents input for recording a stock movement.
type RecordMovementInput struct {
	ItemID   string
	Type     domain.MovementType
	Quantity int
	Note     string
	Date     time.Time
}

// RecordMovement appends a stock movement and adjusts the referenced
// item's quantity, floored at zero. The unit cost at record time is
// snapshotted onto the movement.
func (uc *InventoryUseCase) RecordMovement(ctx context.Context, input RecordMovementInput) (domain.InventoryMovement, error) {
	if !input.Type.Valid() {
		return domain.InventoryMovement{}, domain.ErrInvalidType
	}
	if err := domain.ValidateQuantity(input.Quantity); err != nil {
		return domain.InventoryMovement{}, err
	}

	item, err := uc.invRepo.GetItem(ctx, input.ItemID)
	if err != nil {
		return domain.InventoryMovement{}, err
	}

	movement := domain.InventoryMovement{
		ID:             uc.idGen.Generate(),
		ItemID:         item.ID,
		Type:           input.Type,
		Quantity:       input.Quantity,
		Note:           input.Note,
		Date:           input.Date,
		UnitCostAtTime: item.UnitCost,
	}

	if err := uc.invRepo.RecordMovement(ctx, movement); err != nil {
		return domain.InventoryMovement{}, err
	}

	if uc.metrics != nil {
		uc.metrics.InventoryMovements.WithLabelValues(string(movement.Type)).Inc()
	}

	return movement, nil
}

// ListMovements lists stock movements, most recent first.
func (uc *InventoryUseCase) ListMovements(ctx context.Context) ([]domain.InventoryMovement, error) {
	movements, err := uc.invRepo.ListMovements(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]domain.InventoryMovement, len(movements))
	copy(sorted, movements)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })

	return sorted, nil
}

// StockSummary holds aggregate stock figures.
type StockSummary struct {
	TotalUnits    int             `json:"total_units"`
	LowStockItems int             `json:"low_stock_items"`
	StockValue    decimal.Decimal `json:"stock_value"`
}

// Summary folds the item collection into its aggregate figures.
func (uc *InventoryUseCase) Summary(ctx context.Context) (StockSummary, error) {
	items, err := uc.invRepo.ListItems(ctx)
	if err != nil {
		return StockSummary{}, err
	}

	s := StockSummary{StockValue: decimal.Zero}
	for _, item := range items {
		s.TotalUnits += item.Quantity
		s.StockValue = s.StockValue.Add(item.StockValue())
		if item.LowStock() {
			s.LowStockItems++
		}
	}

	return s, nil
}
