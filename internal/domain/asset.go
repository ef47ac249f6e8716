package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetCategory classifies fixed assets.
type AssetCategory string

const (
	AssetEquipment  AssetCategory = "EQUIPMENT"
	AssetVehicle    AssetCategory = "VEHICLE"
	AssetRealEstate AssetCategory = "REAL_ESTATE"
	AssetTechnology AssetCategory = "TECHNOLOGY"
	AssetLivestock  AssetCategory = "LIVESTOCK"
	AssetOther      AssetCategory = "OTHER"
)

// Valid reports whether c is a known asset category.
func (c AssetCategory) Valid() bool {
	switch c {
	case AssetEquipment, AssetVehicle, AssetRealEstate, AssetTechnology, AssetLivestock, AssetOther:
		return true
	}
	return false
}

// Asset is a fixed asset record. CurrentValue is maintained manually and
// is independent of PurchasePrice; no automatic depreciation is applied.
type Asset struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      AssetCategory   `json:"category"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	Description   string          `json:"description"`
}

// AssetOrigin tags a row in the consolidated asset view.
type AssetOrigin string

const (
	// OriginRecorded marks an asset persisted in the asset collection.
	OriginRecorded AssetOrigin = "RECORDED"
	// OriginLivestock marks a synthesized row derived from a species'
	// head-count and estimated value. These rows have no lifecycle of
	// their own and cannot be deleted through the asset collection.
	OriginLivestock AssetOrigin = "LIVESTOCK"
)

// ConsolidatedAsset is one row of the unified asset ledger: either a
// recorded asset or a derived livestock valuation.
type ConsolidatedAsset struct {
	Asset
	Origin AssetOrigin `json:"origin"`
}

// Deletable reports whether the row can be removed through the asset
// collection. Livestock rows are governed by the animal ledger.
func (a ConsolidatedAsset) Deletable() bool {
	return a.Origin == OriginRecorded
}
