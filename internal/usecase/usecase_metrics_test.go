package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/infrastructure/metrics"
	"github.com/oneacre/farmbooks/internal/usecase"
	"github.com/oneacre/farmbooks/internal/usecase/mocks"
)

// Registers against a fresh registry so the shared promauto state cannot
// collide with the rest of the binary.
func newTestMetrics() *metrics.Metrics {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
	return metrics.New()
}

func TestUseCasesRecordMetrics(t *testing.T) {
	m := newTestMetrics()
	ctx := context.Background()

	t.Run("ledger", func(t *testing.T) {
		txRepo := mocks.NewMockTransactionRepository()
		catRepo := mocks.NewMockCategoryRepository(feedCategory())
		uc := usecase.NewLedgerUseCase(txRepo, catRepo, mocks.NewMockIDGenerator(), m)

		_, err := uc.AddTransaction(ctx, usecase.AddTransactionInput{
			Date:        time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
			Description: "Hay delivery",
			Amount:      decimal.RequireFromString("120.50"),
			Type:        domain.TransactionExpense,
			CategoryID:  "cat-feed",
		})
		if err != nil {
			t.Fatalf("AddTransaction failed: %v", err)
		}
		if _, err := uc.AddCategory(ctx, usecase.AddCategoryInput{
			Name: "Vet", Type: domain.TransactionExpense, Color: "#FF0000",
		}); err != nil {
			t.Fatalf("AddCategory failed: %v", err)
		}

		if got := testutil.ToFloat64(m.TransactionsRecorded.WithLabelValues("EXPENSE")); got != 1 {
			t.Errorf("transactions recorded = %v, want 1", got)
		}
		if got := testutil.ToFloat64(m.CategoriesCreated); got != 1 {
			t.Errorf("categories created = %v, want 1", got)
		}
	})

	t.Run("herd", func(t *testing.T) {
		uc := usecase.NewHerdUseCase(mocks.NewMockHerdRepository(), mocks.NewMockIDGenerator(), m)

		species, err := uc.AddSpecies(ctx, usecase.AddSpeciesInput{
			Name: "Sheep", EstimatedValue: decimal.RequireFromString("150"),
		})
		if err != nil {
			t.Fatalf("AddSpecies failed: %v", err)
		}
		if _, err := uc.RecordLog(ctx, usecase.RecordLogInput{
			SpeciesID: species.ID,
			Date:      time.Now(),
			Type:      domain.PopulationBirth,
			Quantity:  4,
		}); err != nil {
			t.Fatalf("RecordLog failed: %v", err)
		}

		if got := testutil.ToFloat64(m.AnimalLogsRecorded.WithLabelValues("BIRTH")); got != 1 {
			t.Errorf("animal logs recorded = %v, want 1", got)
		}
		if got := testutil.ToFloat64(m.SpeciesCount.WithLabelValues("Sheep")); got != 4 {
			t.Errorf("species head count gauge = %v, want 4", got)
		}

		if err := uc.DeleteSpecies(ctx, species.ID); err != nil {
			t.Fatalf("DeleteSpecies failed: %v", err)
		}
		if got := testutil.CollectAndCount(m.SpeciesCount); got != 0 {
			t.Errorf("species gauge children after delete = %d, want 0", got)
		}
	})

	t.Run("assets and liabilities", func(t *testing.T) {
		assetUC := usecase.NewAssetUseCase(mocks.NewMockAssetRepository(), mocks.NewMockHerdRepository(), mocks.NewMockIDGenerator(), m)
		if _, err := assetUC.AddAsset(ctx, usecase.AddAssetInput{
			Name:          "Tractor",
			Category:      domain.AssetEquipment,
			PurchasePrice: decimal.RequireFromString("5000"),
			CurrentValue:  decimal.RequireFromString("4500"),
		}); err != nil {
			t.Fatalf("AddAsset failed: %v", err)
		}

		liabUC := usecase.NewLiabilityUseCase(mocks.NewMockLiabilityRepository(), mocks.NewMockIDGenerator(), m)
		if _, err := liabUC.AddLiability(ctx, usecase.AddLiabilityInput{
			Name:           "Equipment loan",
			Category:       domain.LiabilityLoan,
			OriginalAmount: decimal.RequireFromString("3000"),
			CurrentBalance: decimal.RequireFromString("2000"),
		}); err != nil {
			t.Fatalf("AddLiability failed: %v", err)
		}

		if got := testutil.ToFloat64(m.AssetsCreated); got != 1 {
			t.Errorf("assets created = %v, want 1", got)
		}
		if got := testutil.ToFloat64(m.LiabilitiesCreated); got != 1 {
			t.Errorf("liabilities created = %v, want 1", got)
		}
	})

	t.Run("inventory", func(t *testing.T) {
		uc := usecase.NewInventoryUseCase(mocks.NewMockInventoryRepository(), mocks.NewMockIDGenerator(), m)

		item, err := uc.AddItem(ctx, usecase.AddItemInput{
			Name: "Feed pellets", UnitCost: decimal.RequireFromString("12"),
		})
		if err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		if _, err := uc.RecordMovement(ctx, usecase.RecordMovementInput{
			ItemID:   item.ID,
			Type:     domain.MovementIn,
			Quantity: 10,
			Date:     time.Now(),
		}); err != nil {
			t.Fatalf("RecordMovement failed: %v", err)
		}

		if got := testutil.ToFloat64(m.InventoryMovements.WithLabelValues("IN")); got != 1 {
			t.Errorf("inventory movements = %v, want 1", got)
		}
	})

	t.Run("advisor", func(t *testing.T) {
		txRepo := mocks.NewMockTransactionRepository()
		if err := txRepo.Add(ctx, domain.Transaction{
			ID:         "tx-1",
			Date:       time.Now(),
			Amount:     decimal.RequireFromString("100"),
			Type:       domain.TransactionExpense,
			CategoryID: "cat-feed",
		}); err != nil {
			t.Fatalf("seeding transaction failed: %v", err)
		}

		client := mocks.NewMockAdviceClient()
		client.GenerateAdviceFunc = func(ctx context.Context, system, prompt string) (string, error) {
			return "Cut feed costs.", nil
		}
		uc := usecase.NewAdvisorUseCase(txRepo, mocks.NewMockCategoryRepository(feedCategory()), client, zerolog.Nop(), m)

		if _, err := uc.Advice(ctx); err != nil {
			t.Fatalf("Advice failed: %v", err)
		}

		if got := testutil.ToFloat64(m.AdviceRequests.WithLabelValues("ok")); got != 1 {
			t.Errorf("advice requests = %v, want 1", got)
		}
	})
}
