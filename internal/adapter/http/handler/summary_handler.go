package handler

import (
	"context"
	"net/http"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// SummaryService defines the behavior needed by SummaryHandler.
type SummaryService interface {
	Summary(ctx context.Context) (usecase.Summary, error)
	MonthlySeries(ctx context.Context) ([]usecase.MonthlyTotals, error)
	CategoryBreakdown(ctx context.Context, txType domain.TransactionType) ([]usecase.CategoryTotal, error)
}

// SummaryHandler handles aggregate financial views.
type SummaryHandler struct {
	ledgerUC SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(ledgerUC SummaryService) *SummaryHandler {
	return &SummaryHandler{ledgerUC: ledgerUC}
}

// Totals returns the all-time income, expense and net totals.
func (h *SummaryHandler) Totals(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledgerUC.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Monthly returns the chronological per-month income/expense series.
func (h *SummaryHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	series, err := h.ledgerUC.MonthlySeries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute monthly series", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, series)
}

// Categories returns per-category totals for the requested type.
// Defaults to expenses.
func (h *SummaryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	txType := domain.TransactionType(r.URL.Query().Get("type"))
	if txType == "" {
		txType = domain.TransactionExpense
	}

	breakdown, err := h.ledgerUC.CategoryBreakdown(r.Context(), txType)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute category breakdown", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, breakdown)
}
