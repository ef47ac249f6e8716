package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oneacre/farmbooks/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"transaction not found", domain.ErrTransactionNotFound, http.StatusNotFound},
		{"category not found", domain.ErrCategoryNotFound, http.StatusNotFound},
		{"species not found", domain.ErrSpeciesNotFound, http.StatusNotFound},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound},
		{"category in use", domain.ErrCategoryInUse, http.StatusConflict},
		{"category type mismatch", domain.ErrCategoryTypeMismatch, http.StatusBadRequest},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"invalid quantity", domain.ErrInvalidQuantity, http.StatusBadRequest},
		{"invalid name", domain.ErrInvalidName, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	payload := map[string]string{"status": "ok"}

	writeJSON(rr, http.StatusCreated, payload)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %s", ct)
	}

	var decoded map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if decoded["status"] != "ok" {
		t.Fatalf("expected payload to round-trip, got %+v", decoded)
	}
}

func TestParseBoolQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/categories/1?force=true", nil)
	if !parseBoolQuery(req, "force") {
		t.Fatalf("expected force=true to parse")
	}

	req = httptest.NewRequest(http.MethodDelete, "/categories/1?force=1", nil)
	if parseBoolQuery(req, "force") {
		t.Fatalf("expected non-true value to be false")
	}

	req = httptest.NewRequest(http.MethodDelete, "/categories/1", nil)
	if parseBoolQuery(req, "force") {
		t.Fatalf("expected missing value to be false")
	}
}
