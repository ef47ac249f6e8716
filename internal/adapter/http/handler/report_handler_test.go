package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"

	"github.com/oneacre/farmbooks/internal/infrastructure/metrics"
	"github.com/oneacre/farmbooks/internal/usecase"
)

type reportServiceStub struct{}

func (reportServiceStub) ProfitAndLoss(ctx context.Context) (usecase.ProfitAndLossReport, error) {
	return usecase.ProfitAndLossReport{
		TotalRevenue:  decimal.RequireFromString("1000"),
		TotalExpenses: decimal.RequireFromString("300"),
		NetIncome:     decimal.RequireFromString("700"),
	}, nil
}

func (reportServiceStub) BalanceSheet(ctx context.Context) (usecase.BalanceSheetReport, error) {
	return usecase.BalanceSheetReport{}, nil
}

func (reportServiceStub) CashFlow(ctx context.Context) (usecase.CashFlowReport, error) {
	return usecase.CashFlowReport{}, nil
}

func (reportServiceStub) OwnersEquity(ctx context.Context) (usecase.OwnersEquityReport, error) {
	return usecase.OwnersEquityReport{}, nil
}

func newReportRequest(target, name string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("name", name)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestReportHandler_Get_JSON(t *testing.T) {
	h := NewReportHandler(reportServiceStub{}, nil)

	rec := httptest.NewRecorder()
	h.Get(rec, newReportRequest("/reports/profit-and-loss", ReportProfitAndLoss))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %s", ct)
	}
	if !strings.Contains(rec.Body.String(), `"net_income":"700"`) {
		t.Fatalf("expected net income in body, got %s", rec.Body.String())
	}
}

func TestReportHandler_Get_CSV(t *testing.T) {
	h := NewReportHandler(reportServiceStub{}, nil)
	h.now = func() time.Time {
		return time.Date(2025, time.April, 9, 12, 0, 0, 0, time.UTC)
	}

	rec := httptest.NewRecorder()
	h.Get(rec, newReportRequest("/reports/profit-and-loss?format=csv", ReportProfitAndLoss))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("expected text/csv, got %s", ct)
	}

	disposition := rec.Header().Get("Content-Disposition")
	if disposition != `attachment; filename="Profit_and_Loss_2025-04-09.csv"` {
		t.Fatalf("unexpected disposition %q", disposition)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `"Profit & Loss Statement"`) {
		t.Fatalf("expected quoted title row, got %s", body)
	}
	if !strings.Contains(body, `"NET INCOME","700.00"`) {
		t.Fatalf("expected net income row, got %s", body)
	}
}

func TestReportHandler_Get_RecordsMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
	m := metrics.New()

	h := NewReportHandler(reportServiceStub{}, m)

	h.Get(httptest.NewRecorder(), newReportRequest("/reports/profit-and-loss", ReportProfitAndLoss))
	h.Get(httptest.NewRecorder(), newReportRequest("/reports/profit-and-loss?format=csv", ReportProfitAndLoss))
	h.Get(httptest.NewRecorder(), newReportRequest("/reports/trial-balance", "trial-balance"))

	if got := testutil.ToFloat64(m.ReportsGenerated.WithLabelValues(ReportProfitAndLoss)); got != 2 {
		t.Errorf("reports generated = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.CSVExports.WithLabelValues(ReportProfitAndLoss)); got != 1 {
		t.Errorf("csv exports = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.ReportsGenerated, "farmbooks_reports_generated_total"); got != 1 {
		t.Errorf("report label children = %d, want 1: unknown reports must not be counted", got)
	}
}

func TestReportHandler_Get_UnknownReport(t *testing.T) {
	h := NewReportHandler(reportServiceStub{}, nil)

	rec := httptest.NewRecorder()
	h.Get(rec, newReportRequest("/reports/trial-balance", "trial-balance"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown report, got %d", rec.Code)
	}
}
