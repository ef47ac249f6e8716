package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LiabilityCategory classifies liabilities.
type LiabilityCategory string

const (
	LiabilityLoan            LiabilityCategory = "LOAN"
	LiabilityCreditCard      LiabilityCategory = "CREDIT_CARD"
	LiabilityMortgage        LiabilityCategory = "MORTGAGE"
	LiabilityAccountsPayable LiabilityCategory = "ACCOUNTS_PAYABLE"
	LiabilityOther           LiabilityCategory = "OTHER"
)

// Valid reports whether c is a known liability category.
func (c LiabilityCategory) Valid() bool {
	switch c {
	case LiabilityLoan, LiabilityCreditCard, LiabilityMortgage, LiabilityAccountsPayable, LiabilityOther:
		return true
	}
	return false
}

// Liability is an outstanding obligation. CurrentBalance is maintained
// manually and is independent of OriginalAmount.
type Liability struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       LiabilityCategory `json:"category"`
	OriginalAmount decimal.Decimal   `json:"original_amount"`
	CurrentBalance decimal.Decimal   `json:"current_balance"`
	InterestRate   decimal.Decimal   `json:"interest_rate"`
	DueDate        *time.Time        `json:"due_date,omitempty"`
	Description    string            `json:"description"`
}
