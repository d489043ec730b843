package lca

import "strings"

// Energy intensity per broad category in kWh per kg of product, calibrated
// for Indian plants.
var categoryEnergyKWhPerKg = map[string]float64{
	"Personal Care":   0.15,
	"Food & Beverage": 0.08,
	"Pharmaceuticals": 0.35,
	"Electronics":     0.80,
	"Cosmetics":       0.18,
	"Household":       0.12,
}

// Non-energy process emissions per broad category in kg CO2e per kg.
var categoryProcessFactor = map[string]float64{
	"Personal Care":   0.008,
	"Cosmetics":       0.012,
	"Food & Beverage": 0.005,
	"Pharmaceuticals": 0.015,
}

const (
	defaultEnergyKWhPerKg = 0.15
	defaultProcessFactor  = 0.010

	// manufacturingOverhead covers utilities and site services.
	manufacturingOverhead = 0.05

	manufacturingUncertainty = 0.08
)

// broadCategoryKeywords maps free-text category fragments to the broad
// categories the energy tables are keyed by. Scanned in order; first hit
// wins.
var broadCategoryKeywords = []struct {
	keyword string
	broad   string
}{
	{"personal care", "Personal Care"},
	{"skincare", "Personal Care"},
	{"skin care", "Personal Care"},
	{"haircare", "Personal Care"},
	{"hair care", "Personal Care"},
	{"oral care", "Personal Care"},
	{"cosmetic", "Cosmetics"},
	{"makeup", "Cosmetics"},
	{"fragrance", "Cosmetics"},
	{"food", "Food & Beverage"},
	{"beverage", "Food & Beverage"},
	{"pharmaceutical", "Pharmaceuticals"},
	{"medicine", "Pharmaceuticals"},
	{"electronic", "Electronics"},
	{"household", "Household"},
	{"cleaning", "Household"},
}

// broadCategory normalizes a free-text category to a broad energy-table
// key. Unmatched text keeps its original value so exact broad names still
// hit the tables directly.
func broadCategory(category string) string {
	trimmed := strings.TrimSpace(category)
	if _, ok := categoryEnergyKWhPerKg[trimmed]; ok {
		return trimmed
	}
	lower := strings.ToLower(trimmed)
	for _, entry := range broadCategoryKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.broad
		}
	}
	return trimmed
}

// complexIngredients mark formulations that need extra processing steps.
var complexIngredients = []string{
	"retinol", "hyaluronic acid", "ceramide", "peptide",
	"vitamin c", "niacinamide", "alpha hydroxy", "beta hydroxy",
}

// ComplexityFactor scores formulation complexity from the ingredient list.
// The base scales with ingredient count; each recognized active adds 0.1,
// capped at 2.0.
func ComplexityFactor(ingredients []string) float64 {
	var complexity float64
	switch n := len(ingredients); {
	case n <= 5:
		complexity = 0.8
	case n <= 10:
		complexity = 1.0
	case n <= 15:
		complexity = 1.2
	default:
		complexity = 1.4
	}

	for _, ing := range ingredients {
		lower := strings.ToLower(ing)
		for _, complexIng := range complexIngredients {
			if strings.Contains(lower, complexIng) {
				complexity += 0.1
				break
			}
		}
	}

	return min(2.0, complexity)
}

// ManufacturingResult is the manufacturing-stage estimate.
type ManufacturingResult struct {
	Emission float64

	// EnergyKWh is the grid energy drawn, after the regional efficiency
	// derate. It feeds the electricity-cost estimate.
	EnergyKWh float64

	// ProcessEmission is the non-energy share of the total.
	ProcessEmission float64

	Uncertainty float64
}

// EstimateManufacturing computes production emissions:
//
//  1. Energy = category intensity x complexity x mass / regional efficiency.
//  2. Energy emission = energy x regional grid factor.
//  3. Process emission = mass x category process factor.
//  4. Overhead adds 5% on top of both.
func EstimateManufacturing(category string, productMassKg, complexity float64, profile RegionProfile) ManufacturingResult {
	broad := broadCategory(category)

	baseEnergy, ok := categoryEnergyKWhPerKg[broad]
	if !ok {
		baseEnergy = defaultEnergyKWhPerKg
	}
	processFactor, ok := categoryProcessFactor[broad]
	if !ok {
		processFactor = defaultProcessFactor
	}

	energyKWh := baseEnergy * complexity * productMassKg / profile.IndustrialEfficiency
	energyEmission := energyKWh * profile.GridFactor
	processEmission := productMassKg * processFactor

	total := (energyEmission + processEmission) * (1 + manufacturingOverhead)

	return ManufacturingResult{
		Emission:        total,
		EnergyKWh:       energyKWh,
		ProcessEmission: processEmission,
		Uncertainty:     manufacturingUncertainty,
	}
}
