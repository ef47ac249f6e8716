package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/oneacre/farmbooks/internal/adapter/http/dto"
	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// AssetService defines the behavior needed by AssetHandler.
type AssetService interface {
	AddAsset(ctx context.Context, input usecase.AddAssetInput) (domain.Asset, error)
	DeleteAsset(ctx context.Context, id string) error
	ListAssets(ctx context.Context) ([]domain.Asset, error)
	Consolidated(ctx context.Context) ([]domain.ConsolidatedAsset, error)
}

// AssetHandler handles fixed-asset HTTP requests.
type AssetHandler struct {
	assetUC AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetUC AssetService) *AssetHandler {
	return &AssetHandler{assetUC: assetUC}
}

// Create records a new fixed asset.
func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	asset, err := h.assetUC.AddAsset(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record asset", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, asset)
}

// List lists recorded fixed assets.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assetUC.ListAssets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list assets", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAssetsResponse{
		Assets: assets,
		Total:  len(assets),
	})
}

// Consolidated lists recorded assets merged with livestock-derived rows,
// sorted by descending current value.
func (h *AssetHandler) Consolidated(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assetUC.Consolidated(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to consolidate assets", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListConsolidatedAssetsResponse{
		Assets: assets,
		Total:  len(assets),
	})
}

// Delete removes a recorded asset. Livestock-derived rows have no
// lifecycle here and are refused.
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing asset ID", "")
		return
	}

	if strings.HasPrefix(id, usecase.LivestockAssetPrefix) {
		writeError(w, http.StatusConflict, "livestock assets are managed in the animal ledger", "")
		return
	}

	if err := h.assetUC.DeleteAsset(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete asset", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
