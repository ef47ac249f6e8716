package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInventoryItem_ApplyMovement(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		movement MovementType
		delta    int
		want     int
	}{
		{"stock in", 10, MovementIn, 5, 15},
		{"stock out", 10, MovementOut, 4, 6},
		{"stock out clamps at zero", 2, MovementOut, 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := InventoryItem{Quantity: tt.quantity}
			if got := i.ApplyMovement(tt.movement, tt.delta); got != tt.want {
				t.Errorf("ApplyMovement(%s, %d) = %d, want %d", tt.movement, tt.delta, got, tt.want)
			}
		})
	}
}

func TestInventoryItem_LowStock(t *testing.T) {
	i := InventoryItem{Quantity: 5, MinStockLevel: 5}
	if !i.LowStock() {
		t.Error("quantity at minimum should flag low stock")
	}

	i.Quantity = 6
	if i.LowStock() {
		t.Error("quantity above minimum should not flag low stock")
	}
}

func TestInventoryItem_StockValue(t *testing.T) {
	i := InventoryItem{Quantity: 4, UnitCost: decimal.RequireFromString("12.50")}
	if got := i.StockValue(); !got.Equal(decimal.NewFromInt(50)) {
		t.Errorf("StockValue() = %s, want 50", got)
	}
}
