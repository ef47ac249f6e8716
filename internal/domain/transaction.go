package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction represents a single income or expense record. Amount is
// always non-negative; the sign is implied by Type.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	CategoryID  string          `json:"category_id"`
}

// Month returns the calendar year-month bucket ("2025-04") used by the
// monthly aggregation series.
func (t Transaction) Month() string {
	return t.Date.Format("2006-01")
}

// Category labels transactions of a single type.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  TransactionType `json:"type"`
	Color string          `json:"color"`
}

// SeedCategories returns the default category set used when no
// categories have been persisted yet.
func SeedCategories() []Category {
	return []Category{
		{ID: "1", Name: "Sales", Type: TransactionIncome, Color: "#10b981"},
		{ID: "2", Name: "Consulting", Type: TransactionIncome, Color: "#34d399"},
		{ID: "3", Name: "Rent", Type: TransactionExpense, Color: "#ef4444"},
		{ID: "4", Name: "Utilities", Type: TransactionExpense, Color: "#f97316"},
		{ID: "5", Name: "Payroll", Type: TransactionExpense, Color: "#8b5cf6"},
		{ID: "6", Name: "Marketing", Type: TransactionExpense, Color: "#3b82f6"},
		{ID: "7", Name: "Other", Type: TransactionExpense, Color: "#64748b"},
	}
}
