package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/infrastructure/metrics"
)

// mortalityWindow is the trailing period covered by the mortality
// statistic.
const mortalityWindow = 365 * 24 * time.Hour

// HerdUseCase maintains each species' head-count as the fold of its
// population-change log history.
type HerdUseCase struct {
	herdRepo HerdRepository
	idGen    IDGenerator
	metrics  *metrics.Metrics
}

// NewHerdUseCase creates a new HerdUseCase.
func NewHerdUseCase(herdRepo HerdRepository, idGen IDGenerator, m *metrics.Metrics) *HerdUseCase {
	return &HerdUseCase{
		herdRepo: herdRepo,
		idGen:    idGen,
		metrics:  m,
	}
}

// AddSpeciesInput represents input for registering a species. The
// head-count always starts at zero and is only moved by logs.
type AddSpeciesInput struct {
	Name                   string
	Tag                    string
	Breed                  string
	EstimatedValue         decimal.Decimal
	MinSustainabilityLevel int
}

// AddSpecies registers a new species with a zero head-count.
func (uc *HerdUseCase) AddSpecies(ctx context.Context, input AddSpeciesInput) (domain.AnimalSpecies, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return domain.AnimalSpecies{}, err
	}
	if err := domain.ValidateAmount(input.EstimatedValue); err != nil {
		return domain.AnimalSpecies{}, err
	}

	species := domain.AnimalSpecies{
		ID:                     uc.idGen.Generate(),
		Name:                   input.Name,
		Tag:                    input.Tag,
		Breed:                  input.Breed,
		Count:                  0,
		EstimatedValue:         input.EstimatedValue,
		MinSustainabilityLevel: input.MinSustainabilityLevel,
	}

	if err := uc.herdRepo.AddSpecies(ctx, species); err != nil {
		return domain.AnimalSpecies{}, err
	}

	if uc.metrics != nil {
		uc.metrics.SpeciesCount.WithLabelValues(species.Name).Set(0)
	}

	return species, nil
}

// GetSpecies retrieves a species by ID.
func (uc *HerdUseCase) GetSpecies(ctx context.Context, id string) (domain.AnimalSpecies, error) {
	return uc.herdRepo.GetSpecies(ctx, id)
}

// ListSpecies lists all species.
func (uc *HerdUseCase) ListSpecies(ctx context.Context) ([]domain.AnimalSpecies, error) {
	return uc.herdRepo.ListSpecies(ctx)
}

// DeleteSpecies removes a species and all logs referencing it.
func (uc *HerdUseCase) DeleteSpecies(ctx context.Context, id string) error {
	species, err := uc.herdRepo.GetSpecies(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.herdRepo.DeleteSpecies(ctx, id); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.SpeciesCount.DeleteLabelValues(species.Name)
	}

	return nil
}

// RecordLogInput represents input for recording a population change.
type RecordLogInput struct {
	SpeciesID string
	Date      time.Time
	Type      domain.PopulationChange
	Quantity  int
	Note      string
}

// RecordLog appends a population-change log and adjusts the referenced
// species' head-count. The per-head value at record time is snapshotted
// onto the log and never revised afterwards.
func (uc *HerdUseCase) RecordLog(ctx context.Context, input RecordLogInput) (domain.AnimalLog, error) {
	if !input.Type.Valid() {
		return domain.AnimalLog{}, domain.ErrInvalidType
	}
	if err := domain.ValidateQuantity(input.Quantity); err != nil {
		return domain.AnimalLog{}, err
	}

	species, err := uc.herdRepo.GetSpecies(ctx, input.SpeciesID)
	if err != nil {
		return domain.AnimalLog{}, err
	}

	log := domain.AnimalLog{
		ID:          uc.idGen.Generate(),
		SpeciesID:   species.ID,
		Date:        input.Date,
		Type:        input.Type,
		Quantity:    input.Quantity,
		Note:        input.Note,
		ValueAtTime: species.EstimatedValue,
	}

	if err := uc.herdRepo.RecordLog(ctx, log); err != nil {
		return domain.AnimalLog{}, err
	}

	if uc.metrics != nil {
		uc.metrics.AnimalLogsRecorded.WithLabelValues(string(log.Type)).Inc()
		uc.metrics.SpeciesCount.WithLabelValues(species.Name).
			Set(float64(species.ApplyChange(log.Type, log.Quantity)))
	}

	return log, nil
}

// ListLogs lists population-change logs, most recent first.
func (uc *HerdUseCase) ListLogs(ctx context.Context) ([]domain.AnimalLog, error) {
	logs, err := uc.herdRepo.ListLogs(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]domain.AnimalLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })

	return sorted, nil
}

// SustainabilityAlerts returns every species whose head-count has fallen
// to or below its configured minimum.
func (uc *HerdUseCase) SustainabilityAlerts(ctx context.Context) ([]domain.AnimalSpecies, error) {
	species, err := uc.herdRepo.ListSpecies(ctx)
	if err != nil {
		return nil, err
	}

	alerts := make([]domain.AnimalSpecies, 0)
	for _, s := range species {
		if s.BelowSustainability() {
			alerts = append(alerts, s)
		}
	}

	return alerts, nil
}

// MortalityStats summarizes deaths within the trailing year.
type MortalityStats struct {
	TotalDeaths    int    `json:"total_deaths"`
	FilteredDeaths int    `json:"filtered_deaths"`
	SpeciesFilter  string `json:"species_filter"`
}

// Mortality computes death totals over the trailing 365 days from now.
// FilteredDeaths counts only species whose name contains speciesFilter,
// case-insensitively. The statistic is derived from the logs alone,
// independent of the stored head-counts.
func (uc *HerdUseCase) Mortality(ctx context.Context, now time.Time, speciesFilter string) (MortalityStats, error) {
	species, err := uc.herdRepo.ListSpecies(ctx)
	if err != nil {
		return MortalityStats{}, err
	}
	logs, err := uc.herdRepo.ListLogs(ctx)
	if err != nil {
		return MortalityStats{}, err
	}

	matched := make(map[string]bool, len(species))
	filter := strings.ToLower(speciesFilter)
	for _, s := range species {
		matched[s.ID] = strings.Contains(strings.ToLower(s.Name), filter)
	}

	cutoff := now.Add(-mortalityWindow)
	stats := MortalityStats{SpeciesFilter: speciesFilter}
	for _, log := range logs {
		if log.Type != domain.PopulationDeath || log.Date.Before(cutoff) {
			continue
		}
		stats.TotalDeaths += log.Quantity
		if matched[log.SpeciesID] {
			stats.FilteredDeaths += log.Quantity
		}
	}

	return stats, nil
}

// LivestockValue returns the herd's total market value, the sum over all
// species of head-count times estimated per-head value.
func (uc *HerdUseCase) LivestockValue(ctx context.Context) (decimal.Decimal, error) {
	species, err := uc.herdRepo.ListSpecies(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, s := range species {
		total = total.Add(s.MarketValue())
	}

	return total, nil
}
