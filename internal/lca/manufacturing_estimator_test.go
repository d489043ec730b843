package lca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEstimateManufacturing verifies production emissions across
// categories and regions.
func TestEstimateManufacturing(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		massKg      float64
		complexity  float64
		region      Region
		minEmission float64
		maxEmission float64
	}{
		{
			name:        "personal care in the North",
			category:    "Personal Care",
			massKg:      0.25,
			complexity:  1.0,
			region:      RegionNorth,
			minEmission: 0.03,
			maxEmission: 0.07,
		},
		{
			name:        "cosmetics carry more energy and process emissions",
			category:    "Cosmetics",
			massKg:      0.25,
			complexity:  1.0,
			region:      RegionNorth,
			minEmission: 0.04,
			maxEmission: 0.09,
		},
		{
			name:        "hydro-heavy North-East runs cleaner",
			category:    "Personal Care",
			massKg:      0.25,
			complexity:  1.0,
			region:      RegionNorthEast,
			minEmission: 0.02,
			maxEmission: 0.05,
		},
		{
			name:        "free-text subcategory uses the default intensity",
			category:    "body wash",
			massKg:      0.25,
			complexity:  1.0,
			region:      RegionCentral,
			minEmission: 0.03,
			maxEmission: 0.08,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateManufacturing(tt.category, tt.massKg, tt.complexity, ProfileFor(tt.region))

			assert.GreaterOrEqual(t, got.Emission, tt.minEmission)
			assert.LessOrEqual(t, got.Emission, tt.maxEmission)
			assert.Positive(t, got.EnergyKWh)
			assert.Positive(t, got.ProcessEmission)
			assert.InDelta(t, manufacturingUncertainty, got.Uncertainty, 1e-9)
		})
	}
}

// TestEstimateManufacturingComplexityScaling verifies complexity raises
// the energy share monotonically.
func TestEstimateManufacturingComplexityScaling(t *testing.T) {
	profile := ProfileFor(RegionNorth)

	simple := EstimateManufacturing("Personal Care", 0.25, 0.8, profile)
	standard := EstimateManufacturing("Personal Care", 0.25, 1.0, profile)
	complexRun := EstimateManufacturing("Personal Care", 0.25, 1.8, profile)

	assert.Less(t, simple.Emission, standard.Emission)
	assert.Less(t, standard.Emission, complexRun.Emission)
	assert.Less(t, simple.EnergyKWh, complexRun.EnergyKWh)
}

// TestEstimateManufacturingDirtyGridCostsMore verifies grid intensity
// ordering between East (most coal) and North-East (most hydro).
func TestEstimateManufacturingDirtyGridCostsMore(t *testing.T) {
	east := EstimateManufacturing("Personal Care", 0.25, 1.0, ProfileFor(RegionEast))
	northEast := EstimateManufacturing("Personal Care", 0.25, 1.0, ProfileFor(RegionNorthEast))
	assert.Greater(t, east.Emission, northEast.Emission)
}

// TestComplexityFactor verifies ingredient-count bands and the actives
// surcharge.
func TestComplexityFactor(t *testing.T) {
	few := []string{"Water", "Glycerin", "Fragrance"}
	assert.InDelta(t, 0.8, ComplexityFactor(few), 1e-9)

	ten := make([]string, 10)
	for i := range ten {
		ten[i] = "Ingredient"
	}
	assert.InDelta(t, 1.0, ComplexityFactor(ten), 1e-9)

	withActives := []string{"Water", "Retinol", "Niacinamide", "Hyaluronic Acid"}
	assert.InDelta(t, 0.8+0.3, ComplexityFactor(withActives), 1e-9)

	// Cap at 2.0 no matter how many actives.
	many := []string{
		"Retinol", "Niacinamide", "Hyaluronic Acid", "Ceramide NP", "Peptide Complex",
		"Vitamin C Ester", "Alpha Hydroxy Acid", "Beta Hydroxy Acid",
		"Retinol Booster", "Niacinamide Plus", "Ceramide Blend", "Peptide Serum",
		"Retinol Extra", "Niacinamide Max", "Ceramide Pro", "Peptide Gold",
	}
	assert.InDelta(t, 2.0, ComplexityFactor(many), 1e-9)
}

// TestBroadCategory verifies free-text category normalization.
func TestBroadCategory(t *testing.T) {
	assert.Equal(t, "Personal Care", broadCategory("Personal Care"))
	assert.Equal(t, "Personal Care", broadCategory("skincare essentials"))
	assert.Equal(t, "Cosmetics", broadCategory("luxury makeup"))
	assert.Equal(t, "Pharmaceuticals", broadCategory("otc medicine"))
	assert.Equal(t, "body wash", broadCategory("body wash"))
}
