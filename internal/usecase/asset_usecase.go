package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/infrastructure/metrics"
)

// LivestockAssetPrefix marks the IDs of consolidated rows synthesized
// from the animal ledger.
const LivestockAssetPrefix = "animal-"

// AssetUseCase handles fixed assets and the consolidated asset view that
// merges in derived livestock valuations.
type AssetUseCase struct {
	assetRepo AssetRepository
	herdRepo  HerdRepository
	idGen     IDGenerator
	metrics   *metrics.Metrics
}

// NewAssetUseCase creates a new AssetUseCase.
func NewAssetUseCase(assetRepo AssetRepository, herdRepo HerdRepository, idGen IDGenerator, m *metrics.Metrics) *AssetUseCase {
	return &AssetUseCase{
		assetRepo: assetRepo,
		herdRepo:  herdRepo,
		idGen:     idGen,
		metrics:   m,
	}
}

// AddAssetInput represents input for recording a fixed asset.
type AddAssetInput struct {
	Name          string
	Category      domain.AssetCategory
	PurchaseDate  time.Time
	PurchasePrice decimal.Decimal
	CurrentValue  decimal.Decimal
	Description   string
}

// AddAsset records a new fixed asset.
func (uc *AssetUseCase) AddAsset(ctx context.Context, input AddAssetInput) (domain.Asset, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return domain.Asset{}, err
	}
	if !input.Category.Valid() {
		return domain.Asset{}, domain.ErrInvalidType
	}
	if err := domain.ValidateAmount(input.PurchasePrice); err != nil {
		return domain.Asset{}, err
	}
	if err := domain.ValidateAmount(input.CurrentValue); err != nil {
		return domain.Asset{}, err
	}

	asset := domain.Asset{
		ID:            uc.idGen.Generate(),
		Name:          input.Name,
		Category:      input.Category,
		PurchaseDate:  input.PurchaseDate,
		PurchasePrice: input.PurchasePrice,
		CurrentValue:  input.CurrentValue,
		Description:   input.Description,
	}

	if err := uc.assetRepo.Add(ctx, asset); err != nil {
		return domain.Asset{}, err
	}

	if uc.metrics != nil {
		uc.metrics.AssetsCreated.Inc()
	}

	return asset, nil
}

// DeleteAsset removes a recorded asset by ID.
func (uc *AssetUseCase) DeleteAsset(ctx context.Context, id string) error {
	return uc.assetRepo.Delete(ctx, id)
}

// ListAssets lists recorded assets.
func (uc *AssetUseCase) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	return uc.assetRepo.List(ctx)
}

// FixedAssetValue returns the sum of recorded assets' current values.
func (uc *AssetUseCase) FixedAssetValue(ctx context.Context) (decimal.Decimal, error) {
	assets, err := uc.assetRepo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.CurrentValue)
	}

	return total, nil
}

// Consolidated merges recorded assets with one synthesized livestock row
// per species, sorted by descending current value. Livestock rows carry
// OriginLivestock and are not deletable through the asset collection;
// their lifecycle belongs to the animal ledger.
func (uc *AssetUseCase) Consolidated(ctx context.Context) ([]domain.ConsolidatedAsset, error) {
	assets, err := uc.assetRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	species, err := uc.herdRepo.ListSpecies(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ConsolidatedAsset, 0, len(assets)+len(species))
	for _, a := range assets {
		rows = append(rows, domain.ConsolidatedAsset{Asset: a, Origin: domain.OriginRecorded})
	}
	for _, s := range species {
		rows = append(rows, domain.ConsolidatedAsset{
			Asset: domain.Asset{
				ID:            LivestockAssetPrefix + s.ID,
				Name:          fmt.Sprintf("%s (%d head)", s.Name, s.Count),
				Category:      domain.AssetLivestock,
				PurchasePrice: decimal.Zero,
				CurrentValue:  s.MarketValue(),
				Description:   s.Breed + " - managed in the animal ledger",
			},
			Origin: domain.OriginLivestock,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CurrentValue.GreaterThan(rows[j].CurrentValue)
	})

	return rows, nil
}
