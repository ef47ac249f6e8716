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

// CategoryService defines the behavior needed by CategoryHandler.
type CategoryService interface {
	AddCategory(ctx context.Context, input usecase.AddCategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, id string, force bool) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	ledgerUC CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(ledgerUC CategoryService) *CategoryHandler {
	return &CategoryHandler{ledgerUC: ledgerUC}
}

// Create creates a new category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.ledgerUC.AddCategory(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create category", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

// List lists all categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.ledgerUC.ListCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListCategoriesResponse{
		Categories: categories,
		Total:      len(categories),
	})
}

// Update replaces a category's name, type and color.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing category ID", "")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category := req.ToDomain(id)
	if err := h.ledgerUC.UpdateCategory(r.Context(), category); err != nil {
		writeError(w, mapDomainError(err), "failed to update category", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// Delete removes a category. Without force=true the delete is refused
// while transactions still reference the category.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing category ID", "")
		return
	}

	force := parseBoolQuery(r, "force")
	if err := h.ledgerUC.DeleteCategory(r.Context(), id, force); err != nil {
		writeError(w, mapDomainError(err), "failed to delete category", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
