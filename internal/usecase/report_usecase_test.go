package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
	"github.com/oneacre/farmbooks/internal/usecase/mocks"
)

type reportFixtures struct {
	txRepo    *mocks.MockTransactionRepository
	catRepo   *mocks.MockCategoryRepository
	herdRepo  *mocks.MockHerdRepository
	assetRepo *mocks.MockAssetRepository
	liabRepo  *mocks.MockLiabilityRepository
	uc        *usecase.ReportUseCase
}

func newReportFixtures(t *testing.T) reportFixtures {
	t.Helper()
	f := reportFixtures{
		txRepo:    mocks.NewMockTransactionRepository(),
		catRepo:   mocks.NewMockCategoryRepository(feedCategory(), salesCategory()),
		herdRepo:  mocks.NewMockHerdRepository(),
		assetRepo: mocks.NewMockAssetRepository(),
		liabRepo:  mocks.NewMockLiabilityRepository(),
	}
	f.uc = usecase.NewReportUseCase(f.txRepo, f.catRepo, f.herdRepo, f.assetRepo, f.liabRepo)

	ctx := context.Background()
	f.txRepo.Add(ctx, domain.Transaction{ID: "t1", Type: domain.TransactionIncome, CategoryID: "cat-sales", Amount: decimal.RequireFromString("1000")})
	f.txRepo.Add(ctx, domain.Transaction{ID: "t2", Type: domain.TransactionExpense, CategoryID: "cat-feed", Amount: decimal.RequireFromString("300")})
	f.herdRepo.AddSpecies(ctx, domain.AnimalSpecies{ID: "sp-1", Name: "Sheep", Count: 10, EstimatedValue: decimal.RequireFromString("150")})
	f.assetRepo.Add(ctx, domain.Asset{ID: "a1", Name: "Tractor", CurrentValue: decimal.RequireFromString("5000")})
	f.liabRepo.Add(ctx, domain.Liability{ID: "l1", Name: "Equipment Loan", CurrentBalance: decimal.RequireFromString("2000")})

	return f
}

func TestProfitAndLoss(t *testing.T) {
	f := newReportFixtures(t)

	report, err := f.uc.ProfitAndLoss(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.TotalRevenue.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("expected revenue 1000, got %s", report.TotalRevenue)
	}
	if !report.TotalExpenses.Equal(decimal.RequireFromString("300")) {
		t.Errorf("expected expenses 300, got %s", report.TotalExpenses)
	}
	if !report.NetIncome.Equal(decimal.RequireFromString("700")) {
		t.Errorf("expected net income 700, got %s", report.NetIncome)
	}
	if len(report.Revenue) != 1 || report.Revenue[0].Name != "Livestock Sales" {
		t.Fatalf("unexpected revenue breakdown %+v", report.Revenue)
	}
	if len(report.Expenses) != 1 || report.Expenses[0].Name != "Feed" {
		t.Fatalf("unexpected expense breakdown %+v", report.Expenses)
	}
}

func TestBalanceSheet(t *testing.T) {
	f := newReportFixtures(t)

	report, err := f.uc.BalanceSheet(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.CashAndBank.Equal(decimal.RequireFromString("700")) {
		t.Errorf("expected cash 700 (net income), got %s", report.CashAndBank)
	}
	if !report.LivestockValue.Equal(decimal.RequireFromString("1500")) {
		t.Errorf("expected livestock 1500, got %s", report.LivestockValue)
	}
	if !report.FixedAssetValue.Equal(decimal.RequireFromString("5000")) {
		t.Errorf("expected fixed assets 5000, got %s", report.FixedAssetValue)
	}
	if !report.TotalAssets.Equal(decimal.RequireFromString("7200")) {
		t.Errorf("expected total assets 7200, got %s", report.TotalAssets)
	}
	if !report.TotalLiabilities.Equal(decimal.RequireFromString("2000")) {
		t.Errorf("expected liabilities 2000, got %s", report.TotalLiabilities)
	}

	// Equity is the residual, so the balance identity always holds.
	if !report.TotalEquity.Equal(report.TotalAssets.Sub(report.TotalLiabilities)) {
		t.Errorf("balance identity broken: equity %s, assets %s, liabilities %s",
			report.TotalEquity, report.TotalAssets, report.TotalLiabilities)
	}
}

func TestCashFlow(t *testing.T) {
	f := newReportFixtures(t)

	report, err := f.uc.CashFlow(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Inflow.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("expected inflow 1000, got %s", report.Inflow)
	}
	if !report.Outflow.Equal(decimal.RequireFromString("300")) {
		t.Errorf("expected outflow 300, got %s", report.Outflow)
	}
	if !report.Net.Equal(decimal.RequireFromString("700")) {
		t.Errorf("expected net 700, got %s", report.Net)
	}
}

func TestOwnersEquity(t *testing.T) {
	f := newReportFixtures(t)

	report, err := f.uc.OwnersEquity(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.TotalEquity.Equal(decimal.RequireFromString("5200")) {
		t.Errorf("expected equity 5200, got %s", report.TotalEquity)
	}
	if !report.NetIncome.Equal(decimal.RequireFromString("700")) {
		t.Errorf("expected net income 700, got %s", report.NetIncome)
	}
}

func TestStatementCSV(t *testing.T) {
	s := usecase.Statement{
		Name:  "Profit_and_Loss",
		Title: "Profit & Loss Statement",
		Rows: [][]string{
			{"Profit & Loss Statement"},
			{},
			{`Feed "premium"`, "100.00"},
		},
	}

	csv := s.CSV()
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != `"Profit & Loss Statement"` {
		t.Errorf("unexpected title line %q", lines[0])
	}
	if lines[1] != "" {
		t.Errorf("expected blank separator line, got %q", lines[1])
	}
	// Embedded quotes are doubled.
	if lines[2] != `"Feed ""premium""","100.00"` {
		t.Errorf("unexpected data line %q", lines[2])
	}
}

func TestStatementFilename(t *testing.T) {
	s := usecase.Statement{Name: "Balance_Sheet"}
	now := time.Date(2025, time.April, 9, 15, 30, 0, 0, time.UTC)

	if got := s.Filename(now); got != "Balance_Sheet_2025-04-09.csv" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestProfitAndLossStatementRows(t *testing.T) {
	f := newReportFixtures(t)

	report, err := f.uc.ProfitAndLoss(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC)
	csv := report.Statement(now).CSV()

	for _, want := range []string{
		`"Profit & Loss Statement"`,
		`"Period Ending","2025-04-09"`,
		`"Livestock Sales","1000.00"`,
		`"Total Revenue","1000.00"`,
		`"Feed","300.00"`,
		`"NET INCOME","700.00"`,
	} {
		if !strings.Contains(csv, want) {
			t.Errorf("expected CSV to contain %s, got:\n%s", want, csv)
		}
	}
}

func TestBalanceSheetStatementRows(t *testing.T) {
	f := newReportFixtures(t)

	report, err := f.uc.BalanceSheet(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	csv := report.Statement(time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC)).CSV()

	for _, want := range []string{
		`"Cash and Bank (Net Earnings)","700.00"`,
		`"Livestock Value","1500.00"`,
		`"Total Assets","7200.00"`,
		`"Equipment Loan","2000.00"`,
		`"Owner's Equity","5200.00"`,
		`"Total Liabilities & Equity","7200.00"`,
	} {
		if !strings.Contains(csv, want) {
			t.Errorf("expected CSV to contain %s, got:\n%s", want, csv)
		}
	}
}
