package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// Valid reports whether m is a known movement type.
func (m MovementType) Valid() bool {
	return m == MovementIn || m == MovementOut
}

// InventoryItem is a tracked supply item. Quantity is maintained by
// replaying InventoryMovement events, floored at zero.
type InventoryItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	MinStockLevel int             `json:"min_stock_level"`
}

// LowStock reports whether the quantity has fallen to or below the
// configured minimum stock level.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinStockLevel
}

// StockValue returns quantity times unit cost.
func (i InventoryItem) StockValue() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ApplyMovement returns the quantity after a stock movement, floored at
// zero.
func (i InventoryItem) ApplyMovement(movement MovementType, quantity int) int {
	next := i.Quantity
	if movement == MovementIn {
		next += quantity
	} else {
		next -= quantity
	}
	if next < 0 {
		next = 0
	}
	return next
}

// InventoryMovement is an immutable stock adjustment event.
// UnitCostAtTime snapshots the item's unit cost when the movement was
// recorded.
type InventoryMovement struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"item_id"`
	Type           MovementType    `json:"type"`
	Quantity       int             `json:"quantity"`
	Note           string          `json:"note"`
	Date           time.Time       `json:"date"`
	UnitCostAtTime decimal.Decimal `json:"unit_cost_at_time"`
}
