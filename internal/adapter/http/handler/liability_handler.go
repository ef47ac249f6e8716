package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oneacre/farmbooks/internal/adapter/http/dto"
	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// LiabilityService defines the behavior needed by LiabilityHandler.
type LiabilityService interface {
	AddLiability(ctx context.Context, input usecase.AddLiabilityInput) (domain.Liability, error)
	DeleteLiability(ctx context.Context, id string) error
	ListLiabilities(ctx context.Context) ([]domain.Liability, error)
}

// LiabilityHandler handles liability HTTP requests.
type LiabilityHandler struct {
	liabUC LiabilityService
}

// NewLiabilityHandler creates a new LiabilityHandler.
func NewLiabilityHandler(liabUC LiabilityService) *LiabilityHandler {
	return &LiabilityHandler{liabUC: liabUC}
}

// Create records a new liability.
func (h *LiabilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLiabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	liability, err := h.liabUC.AddLiability(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record liability", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, liability)
}

// List lists liabilities.
func (h *LiabilityHandler) List(w http.ResponseWriter, r *http.Request) {
	liabilities, err := h.liabUC.ListLiabilities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list liabilities", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListLiabilitiesResponse{
		Liabilities: liabilities,
		Total:       len(liabilities),
	})
}

// Delete removes a liability by ID.
func (h *LiabilityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing liability ID", "")
		return
	}

	if err := h.liabUC.DeleteLiability(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete liability", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
