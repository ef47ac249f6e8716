package domain

import "errors"

var (
	// Ledger errors
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryInUse        = errors.New("category is referenced by existing transactions")
	ErrCategoryTypeMismatch = errors.New("transaction type does not match category type")

	// Herd errors
	ErrSpeciesNotFound = errors.New("species not found")

	// Asset and liability errors
	ErrAssetNotFound     = errors.New("asset not found")
	ErrLiabilityNotFound = errors.New("liability not found")

	// Inventory errors
	ErrItemNotFound = errors.New("inventory item not found")

	// Validation errors
	ErrInvalidAmount   = errors.New("amount must be non-negative")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidType     = errors.New("unknown record type")
)
