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

// InventoryService defines the behavior needed by InventoryHandler.
type InventoryService interface {
	AddItem(ctx context.Context, input usecase.AddItemInput) (domain.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	RecordMovement(ctx context.Context, input usecase.RecordMovementInput) (domain.InventoryMovement, error)
	ListMovements(ctx context.Context) ([]domain.InventoryMovement, error)
	Summary(ctx context.Context) (usecase.StockSummary, error)
}

// InventoryHandler handles inventory HTTP requests.
type InventoryHandler struct {
	invUC InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(invUC InventoryService) *InventoryHandler {
	return &InventoryHandler{invUC: invUC}
}

// CreateItem registers a new inventory item.
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	item, err := h.invUC.AddItem(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register item", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// ListItems lists inventory items.
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.invUC.ListItems(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list items", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListItemsResponse{
		Items: items,
		Total: len(items),
	})
}

// DeleteItem removes an item and all of its movements.
func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing item ID", "")
		return
	}

	if err := h.invUC.DeleteItem(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete item", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateMovement records a stock movement.
func (h *InventoryHandler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	movement, err := h.invUC.RecordMovement(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record movement", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, movement)
}

// ListMovements lists stock movements, most recent first.
func (h *InventoryHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := h.invUC.ListMovements(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListMovementsResponse{
		Movements: movements,
		Total:     len(movements),
	})
}

// Summary returns aggregate stock figures.
func (h *InventoryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.invUC.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute stock summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
