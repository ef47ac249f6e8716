package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/oneacre/farmbooks/internal/infrastructure/metrics"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// Report slugs accepted in the URL.
const (
	ReportProfitAndLoss = "profit-and-loss"
	ReportBalanceSheet  = "balance-sheet"
	ReportCashFlow      = "cash-flow"
	ReportOwnersEquity  = "owners-equity"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	ProfitAndLoss(ctx context.Context) (usecase.ProfitAndLossReport, error)
	BalanceSheet(ctx context.Context) (usecase.BalanceSheetReport, error)
	CashFlow(ctx context.Context) (usecase.CashFlowReport, error)
	OwnersEquity(ctx context.Context) (usecase.OwnersEquityReport, error)
}

// ReportHandler handles derived financial statements.
type ReportHandler struct {
	reportUC ReportService
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService, m *metrics.Metrics) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		metrics:  m,
		now:      time.Now,
	}
}

// Get returns the named report as JSON, or as a CSV attachment when
// format=csv is requested.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var report any
	var statement usecase.Statement
	var err error

	switch name {
	case ReportProfitAndLoss:
		var pl usecase.ProfitAndLossReport
		pl, err = h.reportUC.ProfitAndLoss(r.Context())
		report, statement = pl, pl.Statement(h.now())
	case ReportBalanceSheet:
		var bs usecase.BalanceSheetReport
		bs, err = h.reportUC.BalanceSheet(r.Context())
		report, statement = bs, bs.Statement(h.now())
	case ReportCashFlow:
		var cf usecase.CashFlowReport
		cf, err = h.reportUC.CashFlow(r.Context())
		report, statement = cf, cf.Statement(h.now())
	case ReportOwnersEquity:
		var oe usecase.OwnersEquityReport
		oe, err = h.reportUC.OwnersEquity(r.Context())
		report, statement = oe, oe.Statement(h.now())
	default:
		writeError(w, http.StatusNotFound, "unknown report", name)
		return
	}

	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to derive report", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.ReportsGenerated.WithLabelValues(name).Inc()
	}

	if r.URL.Query().Get("format") == "csv" {
		if h.metrics != nil {
			h.metrics.CSVExports.WithLabelValues(name).Inc()
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+statement.Filename(h.now())+`"`)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(statement.CSV()))
		return
	}

	writeJSON(w, http.StatusOK, report)
}
