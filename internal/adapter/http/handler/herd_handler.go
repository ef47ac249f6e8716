package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/oneacre/farmbooks/internal/adapter/http/dto"
	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// defaultMortalityFilter is the species name fragment used when the
// mortality query names none.
const defaultMortalityFilter = "sheep"

// HerdService defines the behavior needed by HerdHandler.
type HerdService interface {
	AddSpecies(ctx context.Context, input usecase.AddSpeciesInput) (domain.AnimalSpecies, error)
	GetSpecies(ctx context.Context, id string) (domain.AnimalSpecies, error)
	ListSpecies(ctx context.Context) ([]domain.AnimalSpecies, error)
	DeleteSpecies(ctx context.Context, id string) error
	RecordLog(ctx context.Context, input usecase.RecordLogInput) (domain.AnimalLog, error)
	ListLogs(ctx context.Context) ([]domain.AnimalLog, error)
	SustainabilityAlerts(ctx context.Context) ([]domain.AnimalSpecies, error)
	Mortality(ctx context.Context, now time.Time, speciesFilter string) (usecase.MortalityStats, error)
}

// HerdHandler handles livestock-related HTTP requests.
type HerdHandler struct {
	herdUC HerdService
}

// NewHerdHandler creates a new HerdHandler.
func NewHerdHandler(herdUC HerdService) *HerdHandler {
	return &HerdHandler{herdUC: herdUC}
}

// CreateSpecies registers a new species.
func (h *HerdHandler) CreateSpecies(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSpeciesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	species, err := h.herdUC.AddSpecies(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register species", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, species)
}

// GetSpecies retrieves a species by ID.
func (h *HerdHandler) GetSpecies(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing species ID", "")
		return
	}

	species, err := h.herdUC.GetSpecies(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get species", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, species)
}

// ListSpecies lists all species.
func (h *HerdHandler) ListSpecies(w http.ResponseWriter, r *http.Request) {
	species, err := h.herdUC.ListSpecies(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list species", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListSpeciesResponse{
		Species: species,
		Total:   len(species),
	})
}

// DeleteSpecies removes a species and all of its population logs.
func (h *HerdHandler) DeleteSpecies(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing species ID", "")
		return
	}

	if err := h.herdUC.DeleteSpecies(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete species", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateLog records a population change.
func (h *HerdHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	log, err := h.herdUC.RecordLog(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record log", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, log)
}

// ListLogs lists population logs, most recent first.
func (h *HerdHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.herdUC.ListLogs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list logs", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListLogsResponse{
		Logs:  logs,
		Total: len(logs),
	})
}

// Alerts lists species at or below their sustainability minimum.
func (h *HerdHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.herdUC.SustainabilityAlerts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute alerts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListSpeciesResponse{
		Species: alerts,
		Total:   len(alerts),
	})
}

// Mortality returns death totals over the trailing year, with a
// species-name filter.
func (h *HerdHandler) Mortality(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("species")
	if filter == "" {
		filter = defaultMortalityFilter
	}

	stats, err := h.herdUC.Mortality(r.Context(), time.Now(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute mortality", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
