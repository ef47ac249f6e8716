package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// CreateTransactionRequest represents a request to record a transaction.
type CreateTransactionRequest struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	CategoryID  string          `json:"category_id"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput() usecase.AddTransactionInput {
	return usecase.AddTransactionInput{
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Type:        domain.TransactionType(r.Type),
		CategoryID:  r.CategoryID,
	}
}

// CreateCategoryRequest represents a request to create a category.
type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCategoryRequest) ToUseCaseInput() usecase.AddCategoryInput {
	return usecase.AddCategoryInput{
		Name:  r.Name,
		Type:  domain.TransactionType(r.Type),
		Color: r.Color,
	}
}

// UpdateCategoryRequest represents a request to update a category.
type UpdateCategoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// ToDomain converts to a domain category with the given ID.
func (r *UpdateCategoryRequest) ToDomain(id string) domain.Category {
	return domain.Category{
		ID:    id,
		Name:  r.Name,
		Type:  domain.TransactionType(r.Type),
		Color: r.Color,
	}
}

// CreateSpeciesRequest represents a request to register a species.
type CreateSpeciesRequest struct {
	Name                   string          `json:"name"`
	Tag                    string          `json:"tag"`
	Breed                  string          `json:"breed"`
	EstimatedValue         decimal.Decimal `json:"estimated_value"`
	MinSustainabilityLevel int             `json:"min_sustainability_level"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateSpeciesRequest) ToUseCaseInput() usecase.AddSpeciesInput {
	return usecase.AddSpeciesInput{
		Name:                   r.Name,
		Tag:                    r.Tag,
		Breed:                  r.Breed,
		EstimatedValue:         r.EstimatedValue,
		MinSustainabilityLevel: r.MinSustainabilityLevel,
	}
}

// RecordLogRequest represents a request to record a population change.
type RecordLogRequest struct {
	SpeciesID string    `json:"species_id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordLogRequest) ToUseCaseInput() usecase.RecordLogInput {
	return usecase.RecordLogInput{
		SpeciesID: r.SpeciesID,
		Date:      r.Date,
		Type:      domain.PopulationChange(r.Type),
		Quantity:  r.Quantity,
		Note:      r.Note,
	}
}

// CreateAssetRequest represents a request to record a fixed asset.
type CreateAssetRequest struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	Description   string          `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAssetRequest) ToUseCaseInput() usecase.AddAssetInput {
	return usecase.AddAssetInput{
		Name:          r.Name,
		Category:      domain.AssetCategory(r.Category),
		PurchaseDate:  r.PurchaseDate,
		PurchasePrice: r.PurchasePrice,
		CurrentValue:  r.CurrentValue,
		Description:   r.Description,
	}
}

// CreateLiabilityRequest represents a request to record a liability.
type CreateLiabilityRequest struct {
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	Description    string          `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLiabilityRequest) ToUseCaseInput() usecase.AddLiabilityInput {
	return usecase.AddLiabilityInput{
		Name:           r.Name,
		Category:       domain.LiabilityCategory(r.Category),
		OriginalAmount: r.OriginalAmount,
		CurrentBalance: r.CurrentBalance,
		InterestRate:   r.InterestRate,
		DueDate:        r.DueDate,
		Description:    r.Description,
	}
}

// CreateItemRequest represents a request to register an inventory item.
type CreateItemRequest struct {
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Description   string          `json:"description"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	MinStockLevel int             `json:"min_stock_level"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateItemRequest) ToUseCaseInput() usecase.AddItemInput {
	return usecase.AddItemInput{
		Name:          r.Name,
		SKU:           r.SKU,
		Description:   r.Description,
		UnitCost:      r.UnitCost,
		MinStockLevel: r.MinStockLevel,
	}
}

// RecordMovementRequest represents a request to record a stock movement.
type RecordMovementRequest struct {
	ItemID   string    `json:"item_id"`
	Type     string    `json:"type"`
	Quantity int       `json:"quantity"`
	Note     string    `json:"note"`
	Date     time.Time `json:"date"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordMovementRequest) ToUseCaseInput() usecase.RecordMovementInput {
	return usecase.RecordMovementInput{
		ItemID:   r.ItemID,
		Type:     domain.MovementType(r.Type),
		Quantity: r.Quantity,
		Note:     r.Note,
		Date:     r.Date,
	}
}

// UpdateProfileRequest represents a request to update the profile.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToDomain converts to a domain profile.
func (r *UpdateProfileRequest) ToDomain() domain.Profile {
	return domain.Profile{
		Name:  r.Name,
		Email: r.Email,
	}
}

// SuggestCategoryRequest represents a request for a category suggestion.
type SuggestCategoryRequest struct {
	Description string `json:"description"`
}
