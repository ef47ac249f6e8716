package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/oneacre/farmbooks/internal/adapter/http/dto"
	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
)

type transactionServiceStub struct {
	addFn    func(ctx context.Context, input usecase.AddTransactionInput) (domain.Transaction, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, typeFilter domain.TransactionType) ([]domain.Transaction, error)
}

func (s *transactionServiceStub) AddTransaction(ctx context.Context, input usecase.AddTransactionInput) (domain.Transaction, error) {
	return s.addFn(ctx, input)
}

func (s *transactionServiceStub) DeleteTransaction(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *transactionServiceStub) ListTransactions(ctx context.Context, typeFilter domain.TransactionType) ([]domain.Transaction, error) {
	return s.listFn(ctx, typeFilter)
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	created := domain.Transaction{
		ID:          "tx-1",
		Description: "Egg sales",
		Amount:      decimal.RequireFromString("120.50"),
		Type:        domain.TransactionIncome,
		CategoryID:  "1",
	}

	var captured usecase.AddTransactionInput
	h := NewTransactionHandler(&transactionServiceStub{
		addFn: func(ctx context.Context, input usecase.AddTransactionInput) (domain.Transaction, error) {
			captured = input
			return created, nil
		},
	})

	body, _ := json.Marshal(dto.CreateTransactionRequest{
		Description: "Egg sales",
		Amount:      decimal.RequireFromString("120.50"),
		Type:        "INCOME",
		CategoryID:  "1",
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Type != domain.TransactionIncome || captured.CategoryID != "1" {
		t.Fatalf("expected input to be forwarded, got %+v", captured)
	}

	var got domain.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != "tx-1" {
		t.Fatalf("expected created transaction in response, got %+v", got)
	}
}

func TestTransactionHandler_Create_InvalidBody(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_CategoryMismatch(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		addFn: func(ctx context.Context, input usecase.AddTransactionInput) (domain.Transaction, error) {
			return domain.Transaction{}, domain.ErrCategoryTypeMismatch
		},
	})

	body, _ := json.Marshal(dto.CreateTransactionRequest{
		Description: "Feed",
		Amount:      decimal.RequireFromString("40"),
		Type:        "INCOME",
		CategoryID:  "3",
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for type mismatch, got %d", rec.Code)
	}
}

func TestTransactionHandler_List_FiltersByType(t *testing.T) {
	var gotFilter domain.TransactionType
	h := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, typeFilter domain.TransactionType) ([]domain.Transaction, error) {
			gotFilter = typeFilter
			return []domain.Transaction{{ID: "tx-1"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions?type=EXPENSE", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter != domain.TransactionExpense {
		t.Fatalf("expected EXPENSE filter, got %q", gotFilter)
	}

	var resp dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected total 1, got %d", resp.Total)
	}
}

func TestTransactionHandler_List_RejectsUnknownType(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{})

	req := httptest.NewRequest(http.MethodGet, "/transactions?type=TRANSFER", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown type, got %d", rec.Code)
	}
}

func TestTransactionHandler_Delete_NotFound(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrTransactionNotFound
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/transactions/missing", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "missing")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
