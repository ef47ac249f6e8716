package dto

import (
	"github.com/oneacre/farmbooks/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ListTransactionsResponse wraps a transaction list.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
}

// ListCategoriesResponse wraps a category list.
type ListCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
	Total      int               `json:"total"`
}

// ListSpeciesResponse wraps a species list.
type ListSpeciesResponse struct {
	Species []domain.AnimalSpecies `json:"species"`
	Total   int                    `json:"total"`
}

// ListLogsResponse wraps a population log list.
type ListLogsResponse struct {
	Logs  []domain.AnimalLog `json:"logs"`
	Total int                `json:"total"`
}

// ListAssetsResponse wraps an asset list.
type ListAssetsResponse struct {
	Assets []domain.Asset `json:"assets"`
	Total  int            `json:"total"`
}

// ListConsolidatedAssetsResponse wraps the merged asset view.
type ListConsolidatedAssetsResponse struct {
	Assets []domain.ConsolidatedAsset `json:"assets"`
	Total  int                        `json:"total"`
}

// ListLiabilitiesResponse wraps a liability list.
type ListLiabilitiesResponse struct {
	Liabilities []domain.Liability `json:"liabilities"`
	Total       int                `json:"total"`
}

// ListItemsResponse wraps an inventory item list.
type ListItemsResponse struct {
	Items []domain.InventoryItem `json:"items"`
	Total int                    `json:"total"`
}

// ListMovementsResponse wraps a stock movement list.
type ListMovementsResponse struct {
	Movements []domain.InventoryMovement `json:"movements"`
	Total     int                        `json:"total"`
}

// AdviceResponse carries generated advice. Advice is empty when the
// advisor is unavailable.
type AdviceResponse struct {
	Advice string `json:"advice"`
}

// CategorySuggestionResponse carries a suggested category name. Category
// is empty when no confident suggestion exists.
type CategorySuggestionResponse struct {
	Category string `json:"category"`
}
