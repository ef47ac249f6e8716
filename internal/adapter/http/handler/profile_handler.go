package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/oneacre/farmbooks/internal/adapter/http/dto"
	"github.com/oneacre/farmbooks/internal/domain"
)

// ProfileService defines the behavior needed by ProfileHandler.
type ProfileService interface {
	Get(ctx context.Context) (domain.Profile, error)
	Set(ctx context.Context, profile domain.Profile) error
}

// ProfileHandler handles the single-tenant profile.
type ProfileHandler struct {
	profileUC ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileUC ProfileService) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// Get returns the profile. An unset profile returns empty fields.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUC.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load profile", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Update replaces the profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	profile := req.ToDomain()
	if err := h.profileUC.Set(r.Context(), profile); err != nil {
		writeError(w, mapDomainError(err), "failed to update profile", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
