package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oneacre/farmbooks/internal/domain"
)

// Statement is a derived financial report flattened to tabular rows for
// export. Every field is double-quoted in the CSV rendering.
type Statement struct {
	Name  string     `json:"name"`
	Title string     `json:"title"`
	Rows  [][]string `json:"rows"`
}

// Filename returns the download name for the statement, stamped with the
// given date.
func (s Statement) Filename(now time.Time) string {
	return s.Name + "_" + now.Format("2006-01-02") + ".csv"
}

// CSV renders the statement as comma-separated rows with every field
// double-quoted, embedded quotes doubled.
func (s Statement) CSV() string {
	var b strings.Builder
	for _, row := range s.Rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ReportUseCase derives the standard financial statements from the
// record collections. Nothing is persisted; every statement is
// recomputed from the current collections on read.
type ReportUseCase struct {
	txRepo    TransactionRepository
	catRepo   CategoryRepository
	herdRepo  HerdRepository
	assetRepo AssetRepository
	liabRepo  LiabilityRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(
	txRepo TransactionRepository,
	catRepo CategoryRepository,
	herdRepo HerdRepository,
	assetRepo AssetRepository,
	liabRepo LiabilityRepository,
) *ReportUseCase {
	return &ReportUseCase{
		txRepo:    txRepo,
		catRepo:   catRepo,
		herdRepo:  herdRepo,
		assetRepo: assetRepo,
		liabRepo:  liabRepo,
	}
}

// ProfitAndLossReport is the derived P&L statement. The period is always
// all time to date; no date-range filtering is applied.
type ProfitAndLossReport struct {
	Revenue       []CategoryTotal `json:"revenue"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	Expenses      []CategoryTotal `json:"expenses"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"`
}

// ProfitAndLoss derives the P&L statement.
func (uc *ReportUseCase) ProfitAndLoss(ctx context.Context) (ProfitAndLossReport, error) {
	transactions, err := uc.txRepo.List(ctx)
	if err != nil {
		return ProfitAndLossReport{}, err
	}
	categories, err := uc.catRepo.List(ctx)
	if err != nil {
		return ProfitAndLossReport{}, err
	}

	summary := summarize(transactions)

	return ProfitAndLossReport{
		Revenue:       categoryBreakdown(transactions, categories, domain.TransactionIncome),
		TotalRevenue:  summary.TotalIncome,
		Expenses:      categoryBreakdown(transactions, categories, domain.TransactionExpense),
		TotalExpenses: summary.TotalExpenses,
		NetIncome:     summary.NetIncome,
	}, nil
}

// Statement flattens the report for export.
func (r ProfitAndLossReport) Statement(now time.Time) Statement {
	rows := [][]string{
		{"Profit & Loss Statement"},
		{"Period Ending", now.Format("2006-01-02")},
		{},
		{"REVENUE"},
	}
	for _, row := range r.Revenue {
		rows = append(rows, []string{row.Name, row.Total.StringFixed(2)})
	}
	rows = append(rows,
		[]string{"Total Revenue", r.TotalRevenue.StringFixed(2)},
		nil,
		[]string{"OPERATING EXPENSES"},
	)
	for _, row := range r.Expenses {
		rows = append(rows, []string{row.Name, row.Total.StringFixed(2)})
	}
	rows = append(rows,
		[]string{"Total Expenses", r.TotalExpenses.StringFixed(2)},
		nil,
		[]string{"NET INCOME", r.NetIncome.StringFixed(2)},
	)

	return Statement{Name: "Profit_and_Loss", Title: "Profit & Loss Statement", Rows: rows}
}

// LiabilityRow is one liability line on the balance sheet.
type LiabilityRow struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceSheetReport is the derived balance sheet. CashAndBank is the
// all-time net income, a stand-in for a settled cash ledger; equity is
// defined as the residual of assets over liabilities, so the balance
// identity holds by construction.
type BalanceSheetReport struct {
	CashAndBank      decimal.Decimal `json:"cash_and_bank"`
	LivestockValue   decimal.Decimal `json:"livestock_value"`
	FixedAssetValue  decimal.Decimal `json:"fixed_asset_value"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	Liabilities      []LiabilityRow  `json:"liabilities"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
}

// BalanceSheet derives the balance sheet.
func (uc *ReportUseCase) BalanceSheet(ctx context.Context) (BalanceSheetReport, error) {
	transactions, err := uc.txRepo.List(ctx)
	if err != nil {
		return BalanceSheetReport{}, err
	}
	species, err := uc.herdRepo.ListSpecies(ctx)
	if err != nil {
		return BalanceSheetReport{}, err
	}
	assets, err := uc.assetRepo.List(ctx)
	if err != nil {
		return BalanceSheetReport{}, err
	}
	liabilities, err := uc.liabRepo.List(ctx)
	if err != nil {
		return BalanceSheetReport{}, err
	}

	report := BalanceSheetReport{
		CashAndBank:     summarize(transactions).NetIncome,
		LivestockValue:  decimal.Zero,
		FixedAssetValue: decimal.Zero,
	}
	for _, s := range species {
		report.LivestockValue = report.LivestockValue.Add(s.MarketValue())
	}
	for _, a := range assets {
		report.FixedAssetValue = report.FixedAssetValue.Add(a.CurrentValue)
	}
	report.TotalAssets = report.CashAndBank.Add(report.LivestockValue).Add(report.FixedAssetValue)

	report.TotalLiabilities = decimal.Zero
	report.Liabilities = make([]LiabilityRow, 0, len(liabilities))
	for _, l := range liabilities {
		report.Liabilities = append(report.Liabilities, LiabilityRow{Name: l.Name, Balance: l.CurrentBalance})
		report.TotalLiabilities = report.TotalLiabilities.Add(l.CurrentBalance)
	}

	report.TotalEquity = report.TotalAssets.Sub(report.TotalLiabilities)

	return report, nil
}

// Statement flattens the report for export.
func (r BalanceSheetReport) Statement(now time.Time) Statement {
	rows := [][]string{
		{"Balance Sheet"},
		{"Date", now.Format("2006-01-02")},
		{},
		{"ASSETS"},
		{"Cash and Bank (Net Earnings)", r.CashAndBank.StringFixed(2)},
		{"Livestock Value", r.LivestockValue.StringFixed(2)},
		{"Fixed Assets", r.FixedAssetValue.StringFixed(2)},
		{"Total Assets", r.TotalAssets.StringFixed(2)},
		{},
		{"LIABILITIES"},
	}
	for _, row := range r.Liabilities {
		rows = append(rows, []string{row.Name, row.Balance.StringFixed(2)})
	}
	rows = append(rows,
		[]string{"Total Liabilities", r.TotalLiabilities.StringFixed(2)},
		nil,
		[]string{"EQUITY"},
		[]string{"Owner's Equity", r.TotalEquity.StringFixed(2)},
		[]string{"Total Liabilities & Equity", r.TotalLiabilities.Add(r.TotalEquity).StringFixed(2)},
	)

	return Statement{Name: "Balance_Sheet", Title: "Balance Sheet", Rows: rows}
}

// CashFlowReport is the derived direct-method cash flow statement.
type CashFlowReport struct {
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Net     decimal.Decimal `json:"net"`
}

// CashFlow derives the direct cash flow statement: inflow is total
// revenue, outflow is total expenses.
func (uc *ReportUseCase) CashFlow(ctx context.Context) (CashFlowReport, error) {
	transactions, err := uc.txRepo.List(ctx)
	if err != nil {
		return CashFlowReport{}, err
	}

	summary := summarize(transactions)

	return CashFlowReport{
		Inflow:  summary.TotalIncome,
		Outflow: summary.TotalExpenses,
		Net:     summary.NetIncome,
	}, nil
}

// Statement flattens the report for export.
func (r CashFlowReport) Statement(now time.Time) Statement {
	return Statement{
		Name:  "Cash_Flow",
		Title: "Cash Flow Statement (Direct)",
		Rows: [][]string{
			{"Cash Flow Statement (Direct)"},
			{},
			{"Cash Inflow from Operations", r.Inflow.StringFixed(2)},
			{"Cash Outflow for Operations", "-" + r.Outflow.StringFixed(2)},
			{"Net Cash Flow", r.Net.StringFixed(2)},
		},
	}
}

// OwnersEquityReport is the derived statement of owner's equity.
type OwnersEquityReport struct {
	TotalEquity decimal.Decimal `json:"total_equity"`
	NetIncome   decimal.Decimal `json:"net_income"`
}

// OwnersEquity derives the statement of owner's equity from the balance
// sheet residual and the current period net income.
func (uc *ReportUseCase) OwnersEquity(ctx context.Context) (OwnersEquityReport, error) {
	balance, err := uc.BalanceSheet(ctx)
	if err != nil {
		return OwnersEquityReport{}, err
	}

	return OwnersEquityReport{
		TotalEquity: balance.TotalEquity,
		NetIncome:   balance.CashAndBank,
	}, nil
}

// Statement flattens the report for export.
func (r OwnersEquityReport) Statement(now time.Time) Statement {
	return Statement{
		Name:  "Owners_Equity",
		Title: "Statement of Owner's Equity",
		Rows: [][]string{
			{"Statement of Owner's Equity"},
			{},
			{"Equity, Total (Assets - Liabilities)", r.TotalEquity.StringFixed(2)},
			{"Current Period Net Income", r.NetIncome.StringFixed(2)},
		},
	}
}
