package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/oneacre/farmbooks/internal/adapter/http/dto"
)

// AdviceService defines the behavior needed by AdviceHandler.
type AdviceService interface {
	Advice(ctx context.Context) (string, error)
	SuggestCategory(ctx context.Context, description string) (string, error)
}

// AdviceHandler handles AI advice requests.
type AdviceHandler struct {
	advisorUC AdviceService
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(advisorUC AdviceService) *AdviceHandler {
	return &AdviceHandler{advisorUC: advisorUC}
}

// Generate produces financial advice from the current books. A failed or
// disabled advisor yields an empty advice string, not an error.
func (h *AdviceHandler) Generate(w http.ResponseWriter, r *http.Request) {
	advice, err := h.advisorUC.Advice(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate advice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AdviceResponse{Advice: advice})
}

// SuggestCategory suggests an existing category for a transaction
// description. An unconfident or failed suggestion yields an empty
// category name.
func (h *AdviceHandler) SuggestCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.SuggestCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.advisorUC.SuggestCategory(r.Context(), req.Description)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to suggest category", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CategorySuggestionResponse{Category: category})
}
