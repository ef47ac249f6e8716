package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
	"github.com/oneacre/farmbooks/internal/usecase/mocks"
)

func TestAddAsset(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.AddAssetInput
		expectError bool
		expectedErr error
	}{
		{
			name: "successful purchase",
			input: usecase.AddAssetInput{
				Name:          "Tractor",
				Category:      domain.AssetEquipment,
				PurchaseDate:  time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
				PurchasePrice: decimal.RequireFromString("25000"),
				CurrentValue:  decimal.RequireFromString("21000"),
			},
		},
		{
			name:        "empty name",
			input:       usecase.AddAssetInput{Category: domain.AssetEquipment},
			expectError: true,
			expectedErr: domain.ErrInvalidName,
		},
		{
			name:        "unknown category",
			input:       usecase.AddAssetInput{Name: "Drone", Category: "GADGET"},
			expectError: true,
			expectedErr: domain.ErrInvalidType,
		},
		{
			name: "negative current value",
			input: usecase.AddAssetInput{
				Name:         "Truck",
				Category:     domain.AssetVehicle,
				CurrentValue: decimal.RequireFromString("-1"),
			},
			expectError: true,
			expectedErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assetRepo := mocks.NewMockAssetRepository()
			uc := usecase.NewAssetUseCase(assetRepo, mocks.NewMockHerdRepository(), mocks.NewMockIDGenerator(), nil)

			asset, err := uc.AddAsset(context.Background(), tt.input)

			if tt.expectError {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if asset.ID == "" {
				t.Error("expected generated asset ID")
			}
		})
	}
}

func TestFixedAssetValue(t *testing.T) {
	assetRepo := mocks.NewMockAssetRepository()
	uc := usecase.NewAssetUseCase(assetRepo, mocks.NewMockHerdRepository(), mocks.NewMockIDGenerator(), nil)

	ctx := context.Background()
	assetRepo.Add(ctx, domain.Asset{ID: "a1", CurrentValue: decimal.RequireFromString("500")})
	assetRepo.Add(ctx, domain.Asset{ID: "a2", CurrentValue: decimal.RequireFromString("1500")})

	total, err := uc.FixedAssetValue(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("2000")) {
		t.Errorf("expected 2000, got %s", total)
	}
}

func TestConsolidated(t *testing.T) {
	assetRepo := mocks.NewMockAssetRepository()
	herdRepo := mocks.NewMockHerdRepository()
	uc := usecase.NewAssetUseCase(assetRepo, herdRepo, mocks.NewMockIDGenerator(), nil)

	ctx := context.Background()
	assetRepo.Add(ctx, domain.Asset{
		ID: "a1", Name: "Tractor", Category: domain.AssetEquipment,
		CurrentValue: decimal.RequireFromString("500"),
	})
	herdRepo.AddSpecies(ctx, domain.AnimalSpecies{
		ID: "sp-1", Name: "Sheep", Breed: "Dorper", Count: 10,
		EstimatedValue: decimal.RequireFromString("100"),
	})

	rows, err := uc.Consolidated(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// Livestock at 1000 outranks the tractor at 500.
	if rows[0].ID != usecase.LivestockAssetPrefix+"sp-1" {
		t.Fatalf("expected livestock row first, got %s", rows[0].ID)
	}
	if rows[0].Origin != domain.OriginLivestock {
		t.Errorf("expected livestock origin, got %s", rows[0].Origin)
	}
	if rows[0].Category != domain.AssetLivestock {
		t.Errorf("expected LIVESTOCK category, got %s", rows[0].Category)
	}
	if !rows[0].CurrentValue.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("expected market value 1000, got %s", rows[0].CurrentValue)
	}
	if rows[0].Name != "Sheep (10 head)" {
		t.Errorf("unexpected livestock row name %q", rows[0].Name)
	}
	if rows[0].Deletable() {
		t.Error("livestock rows must not be deletable through the asset collection")
	}

	if rows[1].ID != "a1" {
		t.Fatalf("expected recorded asset second, got %s", rows[1].ID)
	}
	if rows[1].Origin != domain.OriginRecorded {
		t.Errorf("expected recorded origin, got %s", rows[1].Origin)
	}
	if !rows[1].Deletable() {
		t.Error("recorded assets must be deletable")
	}
}

func TestDeleteAsset(t *testing.T) {
	assetRepo := mocks.NewMockAssetRepository()
	uc := usecase.NewAssetUseCase(assetRepo, mocks.NewMockHerdRepository(), mocks.NewMockIDGenerator(), nil)

	ctx := context.Background()
	assetRepo.Add(ctx, domain.Asset{ID: "a1", Name: "Tractor"})

	if err := uc.DeleteAsset(ctx, "a1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.DeleteAsset(ctx, "a1"); !errors.Is(err, domain.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound, got %v", err)
	}
}
