package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PopulationChange classifies a head-count adjustment event.
type PopulationChange string

const (
	PopulationBought PopulationChange = "BOUGHT"
	PopulationBirth  PopulationChange = "BIRTH"
	PopulationSold   PopulationChange = "SOLD"
	PopulationDeath  PopulationChange = "DEATH"
)

// Valid reports whether p is a known population change type.
func (p PopulationChange) Valid() bool {
	switch p {
	case PopulationBought, PopulationBirth, PopulationSold, PopulationDeath:
		return true
	}
	return false
}

// Increases reports whether the change adds animals to the herd.
func (p PopulationChange) Increases() bool {
	return p == PopulationBought || p == PopulationBirth
}

// AnimalSpecies is a tracked group of livestock with an aggregate
// head-count. Count is never set directly; it is maintained by replaying
// AnimalLog events.
type AnimalSpecies struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Tag                    string          `json:"tag"`
	Breed                  string          `json:"breed"`
	Count                  int             `json:"count"`
	EstimatedValue         decimal.Decimal `json:"estimated_value"`
	MinSustainabilityLevel int             `json:"min_sustainability_level"`
}

// BelowSustainability reports whether the head-count has fallen to or
// below the configured minimum.
func (s AnimalSpecies) BelowSustainability() bool {
	return s.Count <= s.MinSustainabilityLevel
}

// MarketValue returns count times the per-head estimated value.
func (s AnimalSpecies) MarketValue() decimal.Decimal {
	return s.EstimatedValue.Mul(decimal.NewFromInt(int64(s.Count)))
}

// ApplyChange returns the head-count after a population change of the
// given quantity, floored at zero.
func (s AnimalSpecies) ApplyChange(change PopulationChange, quantity int) int {
	next := s.Count
	if change.Increases() {
		next += quantity
	} else {
		next -= quantity
	}
	if next < 0 {
		next = 0
	}
	return next
}

// AnimalLog is an immutable population-change event. ValueAtTime is a
// snapshot of the species' per-head estimated value when the event was
// recorded.
type AnimalLog struct {
	ID          string           `json:"id"`
	SpeciesID   string           `json:"species_id"`
	Date        time.Time        `json:"date"`
	Type        PopulationChange `json:"type"`
	Quantity    int              `json:"quantity"`
	Note        string           `json:"note"`
	ValueAtTime decimal.Decimal  `json:"value_at_time"`
}
