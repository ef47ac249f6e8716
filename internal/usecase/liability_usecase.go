package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/infrastructure/metrics"
)

// LiabilityUseCase handles liability records.
type LiabilityUseCase struct {
	liabRepo LiabilityRepository
	idGen    IDGenerator
	metrics  *metrics.Metrics
}

// NewLiabilityUseCase creates a new LiabilityUseCase.
func NewLiabilityUseCase(liabRepo LiabilityRepository, idGen IDGenerator, m *metrics.Metrics) *LiabilityUseCase {
	return &LiabilityUseCase{
		liabRepo: liabRepo,
		idGen:    idGen,
		metrics:  m,
	}
}

// AddLiabilityInput represents input for recording a liability.
type AddLiabilityInput struct {
	Name           string
	Category       domain.LiabilityCategory
	OriginalAmount decimal.Decimal
	CurrentBalance decimal.Decimal
	InterestRate   decimal.Decimal
	DueDate        *time.Time
	Description    string
}

// AddLiability records a new liability.
func (uc *LiabilityUseCase) AddLiability(ctx context.Context, input AddLiabilityInput) (domain.Liability, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return domain.Liability{}, err
	}
	if !input.Category.Valid() {
		return domain.Liability{}, domain.ErrInvalidType
	}
	if err := domain.ValidateAmount(input.OriginalAmount); err != nil {
		return domain.Liability{}, err
	}
	if err := domain.ValidateAmount(input.CurrentBalance); err != nil {
		return domain.Liability{}, err
	}

	liability := domain.Liability{
		ID:             uc.idGen.Generate(),
		Name:           input.Name,
		Category:       input.Category,
		OriginalAmount: input.OriginalAmount,
		CurrentBalance: input.CurrentBalance,
		InterestRate:   input.InterestRate,
		DueDate:        input.DueDate,
		Description:    input.Description,
	}

	if err := uc.liabRepo.Add(ctx, liability); err != nil {
		return domain.Liability{}, err
	}

	if uc.metrics != nil {
		uc.metrics.LiabilitiesCreated.Inc()
	}

	return liability, nil
}

// DeleteLiability removes a liability by ID.
func (uc *LiabilityUseCase) DeleteLiability(ctx context.Context, id string) error {
	return uc.liabRepo.Delete(ctx, id)
}

// ListLiabilities lists all liabilities.
func (uc *LiabilityUseCase) ListLiabilities(ctx context.Context) ([]domain.Liability, error) {
	return uc.liabRepo.List(ctx)
}

// TotalBalance returns the sum of current balances across liabilities.
func (uc *LiabilityUseCase) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	liabilities, err := uc.liabRepo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, l := range liabilities {
		total = total.Add(l.CurrentBalance)
	}

	return total, nil
}
