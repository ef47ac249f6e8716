package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/infrastructure/metrics"
)

// LedgerUseCase handles transaction and category business logic together
// with the pure aggregations derived from them.
type LedgerUseCase struct {
	txRepo  TransactionRepository
	catRepo CategoryRepository
	idGen   IDGenerator
	metrics *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(txRepo TransactionRepository, catRepo CategoryRepository, idGen IDGenerator, m *metrics.Metrics) *LedgerUseCase {
	return &LedgerUseCase{
		txRepo:  txRepo,
		catRepo: catRepo,
		idGen:   idGen,
		metrics: m,
	}
}

// AddTransactionInput represents input for recording a transaction.
type AddTransactionInput struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        domain.TransactionType
	CategoryID  string
}

// AddTransaction records a new transaction. The referenced category must
// exist and carry the same type as the transaction.
func (uc *LedgerUseCase) AddTransaction(ctx context.Context, input AddTransactionInput) (domain.Transaction, error) {
	if !input.Type.Valid() {
		return domain.Transaction{}, domain.ErrInvalidType
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return domain.Transaction{}, err
	}

	category, err := uc.catRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return domain.Transaction{}, err
	}
	if category.Type != input.Type {
		return domain.Transaction{}, domain.ErrCategoryTypeMismatch
	}

	tx := domain.Transaction{
		ID:          uc.idGen.Generate(),
		Date:        input.Date,
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		CategoryID:  input.CategoryID,
	}

	if err := uc.txRepo.Add(ctx, tx); err != nil {
		return domain.Transaction{}, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsRecorded.WithLabelValues(string(tx.Type)).Inc()
		amount, _ := tx.Amount.Float64()
		uc.metrics.TransactionAmount.WithLabelValues(string(tx.Type)).Observe(amount)
	}

	return tx, nil
}

// DeleteTransaction removes a transaction by ID.
func (uc *LedgerUseCase) DeleteTransaction(ctx context.Context, id string) error {
	return uc.txRepo.Delete(ctx, id)
}

// ListTransactions lists transactions, optionally filtered by type.
func (uc *LedgerUseCase) ListTransactions(ctx context.Context, typeFilter domain.TransactionType) ([]domain.Transaction, error) {
	transactions, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if typeFilter == "" {
		return transactions, nil
	}

	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Type == typeFilter {
			filtered = append(filtered, tx)
		}
	}

	return filtered, nil
}

// AddCategoryInput represents input for creating a category.
type AddCategoryInput struct {
	Name  string
	Type  domain.TransactionType
	Color string
}

// AddCategory creates a new category.
func (uc *LedgerUseCase) AddCategory(ctx context.Context, input AddCategoryInput) (domain.Category, error) {
	if !input.Type.Valid() {
		return domain.Category{}, domain.ErrInvalidType
	}
	if err := domain.ValidateName(input.Name); err != nil {
		return domain.Category{}, err
	}

	category := domain.Category{
		ID:    uc.idGen.Generate(),
		Name:  input.Name,
		Type:  input.Type,
		Color: input.Color,
	}

	if err := uc.catRepo.Add(ctx, category); err != nil {
		return domain.Category{}, err
	}

	if uc.metrics != nil {
		uc.metrics.CategoriesCreated.Inc()
	}

	return category, nil
}

// UpdateCategory replaces a category record wholesale.
func (uc *LedgerUseCase) UpdateCategory(ctx context.Context, category domain.Category) error {
	if !category.Type.Valid() {
		return domain.ErrInvalidType
	}
	if err := domain.ValidateName(category.Name); err != nil {
		return err
	}
	return uc.catRepo.Update(ctx, category)
}

// DeleteCategory removes a category. Deleting a category that is still
// referenced by transactions requires force; the transactions are left
// uncategorized, not deleted.
func (uc *LedgerUseCase) DeleteCategory(ctx context.Context, id string, force bool) error {
	if !force {
		transactions, err := uc.txRepo.List(ctx)
		if err != nil {
			return err
		}
		for _, tx := range transactions {
			if tx.CategoryID == id {
				return domain.ErrCategoryInUse
			}
		}
	}
	return uc.catRepo.Delete(ctx, id)
}

// ListCategories lists all categories.
func (uc *LedgerUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return uc.catRepo.List(ctx)
}

// Summary holds the all-time income, expense and net totals.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"`
}

// Summary folds the full transaction set into its totals.
func (uc *LedgerUseCase) Summary(ctx context.Context) (Summary, error) {
	transactions, err := uc.txRepo.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return summarize(transactions), nil
}

func summarize(transactions []domain.Transaction) Summary {
	s := Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, tx := range transactions {
		if tx.Type == domain.TransactionIncome {
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		} else {
			s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
		}
	}
	s.NetIncome = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// MonthlyTotals is one row of the per-month income/expense series.
type MonthlyTotals struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlySeries groups transactions by calendar year-month, summing by
// type, sorted chronologically.
func (uc *LedgerUseCase) MonthlySeries(ctx context.Context) ([]MonthlyTotals, error) {
	transactions, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return monthlySeries(transactions), nil
}

func monthlySeries(transactions []domain.Transaction) []MonthlyTotals {
	byMonth := make(map[string]*MonthlyTotals)
	for _, tx := range transactions {
		key := tx.Month()
		row, ok := byMonth[key]
		if !ok {
			row = &MonthlyTotals{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = row
		}
		if tx.Type == domain.TransactionIncome {
			row.Income = row.Income.Add(tx.Amount)
		} else {
			row.Expense = row.Expense.Add(tx.Amount)
		}
	}

	series := make([]MonthlyTotals, 0, len(byMonth))
	for _, row := range byMonth {
		series = append(series, *row)
	}
	// YYYY-MM keys sort chronologically.
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })

	return series
}

// CategoryTotal is one row of a per-category breakdown.
type CategoryTotal struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
}

// CategoryBreakdown sums transaction amounts per category for the given
// type, returning one row per category with a nonzero total.
func (uc *LedgerUseCase) CategoryBreakdown(ctx context.Context, txType domain.TransactionType) ([]CategoryTotal, error) {
	if !txType.Valid() {
		return nil, domain.ErrInvalidType
	}

	transactions, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.catRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return categoryBreakdown(transactions, categories, txType), nil
}

func categoryBreakdown(transactions []domain.Transaction, categories []domain.Category, txType domain.TransactionType) []CategoryTotal {
	rows := make([]CategoryTotal, 0)
	for _, cat := range categories {
		if cat.Type != txType {
			continue
		}
		total := decimal.Zero
		for _, tx := range transactions {
			if tx.CategoryID == cat.ID {
				total = total.Add(tx.Amount)
			}
		}
		if total.IsZero() {
			continue
		}
		rows = append(rows, CategoryTotal{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Color:      cat.Color,
			Total:      total,
		})
	}
	return rows
}

// CategoryAverages returns, per category name, the average monthly spend
// or income: the category's all-time total divided by the number of
// distinct transaction months (at least one).
func (uc *LedgerUseCase) CategoryAverages(ctx context.Context) (map[string]decimal.Decimal, error) {
	transactions, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.catRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return categoryAverages(transactions, categories), nil
}

func categoryAverages(transactions []domain.Transaction, categories []domain.Category) map[string]decimal.Decimal {
	months := make(map[string]struct{})
	for _, tx := range transactions {
		months[tx.Month()] = struct{}{}
	}
	monthCount := int64(len(months))
	if monthCount < 1 {
		monthCount = 1
	}
	divisor := decimal.NewFromInt(monthCount)

	averages := make(map[string]decimal.Decimal, len(categories))
	for _, cat := range categories {
		total := decimal.Zero
		for _, tx := range transactions {
			if tx.CategoryID == cat.ID {
				total = total.Add(tx.Amount)
			}
		}
		averages[cat.Name] = total.Div(divisor)
	}

	return averages
}
