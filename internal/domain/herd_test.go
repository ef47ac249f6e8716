package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAnimalSpecies_ApplyChange(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		change   PopulationChange
		quantity int
		want     int
	}{
		{"bought adds", 10, PopulationBought, 5, 15},
		{"birth adds", 0, PopulationBirth, 3, 3},
		{"sold subtracts", 10, PopulationSold, 4, 6},
		{"death subtracts", 10, PopulationDeath, 2, 8},
		{"death clamps at zero", 3, PopulationDeath, 5, 0},
		{"sold clamps at zero", 1, PopulationSold, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AnimalSpecies{Count: tt.count}
			got := s.ApplyChange(tt.change, tt.quantity)
			if got != tt.want {
				t.Errorf("ApplyChange(%s, %d) on count %d = %d, want %d",
					tt.change, tt.quantity, tt.count, got, tt.want)
			}
		})
	}
}

func TestAnimalSpecies_BelowSustainability(t *testing.T) {
	tests := []struct {
		name  string
		count int
		min   int
		want  bool
	}{
		{"above minimum", 10, 5, false},
		{"at minimum", 5, 5, true},
		{"below minimum", 2, 5, true},
		{"zero count zero minimum", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AnimalSpecies{Count: tt.count, MinSustainabilityLevel: tt.min}
			if got := s.BelowSustainability(); got != tt.want {
				t.Errorf("BelowSustainability() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnimalSpecies_MarketValue(t *testing.T) {
	s := AnimalSpecies{Count: 12, EstimatedValue: decimal.NewFromInt(250)}

	if got := s.MarketValue(); !got.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("MarketValue() = %s, want 3000", got)
	}
}

func TestPopulationChange_Valid(t *testing.T) {
	for _, p := range []PopulationChange{PopulationBought, PopulationBirth, PopulationSold, PopulationDeath} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if PopulationChange("ESCAPED").Valid() {
		t.Error("unknown change type should be invalid")
	}
}
