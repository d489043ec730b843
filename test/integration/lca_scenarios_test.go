// Package integration exercises the assessment pipeline end to end over
// realistic product scenarios.
//
// Run with: go test ./test/integration/... -v
package integration

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolens/lca-engine/internal/lca"
	"github.com/ecolens/lca-engine/internal/refdata"
)

func newCalculator(t *testing.T) *lca.Calculator {
	t.Helper()
	table, err := refdata.NewClient(zerolog.Nop())
	require.NoError(t, err)
	return lca.NewCalculator(table)
}

// TestScenario_RinseOffShampoo checks the canonical shampoo profile: the
// use phase dominates through water heating.
func TestScenario_RinseOffShampoo(t *testing.T) {
	calc := newCalculator(t)

	result := calc.Calculate(lca.ProductInput{
		Name:     "Herbal Shampoo",
		Category: "shampoo",
		Ingredients: []string{
			"Water", "Sodium Laureth Sulfate", "Cocamidopropyl Betaine",
			"Glycerin", "Fragrance", "Citric Acid",
		},
		Weight:         "250ml",
		PackagingType:  "plastic",
		Latitude:       12.9716,
		Longitude:      77.5946,
		UsageFrequency: "daily",
	})

	assert.Greater(t, result.TotalEmissions, 1.5)
	assert.Less(t, result.TotalEmissions, 4.0)

	usePhase := result.StageBreakdown[lca.StageUsePhase]
	rest := result.TotalEmissions - usePhase
	assert.Greater(t, usePhase, rest, "water heating should dominate a daily rinse-off")

	assert.Equal(t, lca.RegionSouth, result.Region)
	assert.Equal(t, lca.MaterialPET, result.Packaging.Material)
}

// TestScenario_LeaveOnLotion checks that a leave-on product has no
// use-phase footprint and a far smaller total.
func TestScenario_LeaveOnLotion(t *testing.T) {
	calc := newCalculator(t)

	result := calc.Calculate(lca.ProductInput{
		Name:           "Aloe Body Lotion",
		Category:       "body lotion",
		Ingredients:    []string{"Water", "Glycerin", "Cetearyl Alcohol", "Dimethicone", "Phenoxyethanol"},
		Weight:         "200ml",
		PackagingType:  "plastic",
		Latitude:       19.0760,
		Longitude:      72.8777,
		UsageFrequency: "daily",
	})

	assert.Zero(t, result.StageBreakdown[lca.StageUsePhase])
	assert.Greater(t, result.TotalEmissions, 0.05)
	assert.Less(t, result.TotalEmissions, 1.0)
	assert.Equal(t, lca.RegionWest, result.Region)
}

// TestScenario_PremiumSerumActives checks that actives-heavy formulations
// carry high ingredient intensity and an actives-grade complexity.
func TestScenario_PremiumSerumActives(t *testing.T) {
	calc := newCalculator(t)

	result := calc.Calculate(lca.ProductInput{
		Name:     "Renewal Face Serum",
		Category: "serum",
		Ingredients: []string{
			"Water", "Niacinamide", "Hyaluronic Acid", "Retinol",
			"Ceramide NP", "Glycerin", "Phenoxyethanol",
		},
		Weight:         "30ml",
		PackagingType:  "glass",
		Latitude:       28.6139,
		Longitude:      77.2090,
		UsageFrequency: "daily",
	})

	assert.Equal(t, lca.RegionNorth, result.Region)
	assert.Equal(t, lca.MaterialGlass, result.Packaging.Material)
	assert.Zero(t, result.StageBreakdown[lca.StageUsePhase], "serum is leave-on")

	// Actives push per-kg intensity well above a commodity rinse-off.
	perKg := result.TotalEmissions / result.ProductMassKg
	assert.Greater(t, perKg, 3.0)
}

// TestScenario_CategoryFloor checks that a formulation of almost pure
// water cannot fall below the category minimum.
func TestScenario_CategoryFloor(t *testing.T) {
	calc := newCalculator(t)

	result := calc.Calculate(lca.ProductInput{
		Name:           "Plain Micellar Rinse",
		Category:       "body wash",
		Ingredients:    []string{"Water"},
		Weight:         "100ml",
		PackagingType:  "plastic",
		Latitude:       23.2599,
		Longitude:      77.4126,
		UsageFrequency: "weekly",
	})

	floor := lca.MinimumEmissions("body wash", result.ProductMassKg)
	assert.GreaterOrEqual(t, result.TotalEmissions, floor)
	assert.GreaterOrEqual(t, result.AdjustmentFactor, 1.0)
}

// TestScenario_MetalPackagedBodyWash checks the aluminum path: declared
// metal packaging wins over the name-derived archetype, recycles well in
// the South, and still respects the category floor.
func TestScenario_MetalPackagedBodyWash(t *testing.T) {
	calc := newCalculator(t)

	result := calc.Calculate(lca.ProductInput{
		Name:           "Travel Body Wash",
		Category:       "body wash",
		Ingredients:    []string{"Aqua", "Sodium Laureth Sulfate", "Parfum"},
		Weight:         "150ml",
		PackagingType:  "metal",
		Latitude:       12.9716,
		Longitude:      77.5946,
		UsageFrequency: "daily",
	})

	assert.Equal(t, lca.MaterialAluminum, result.Packaging.Material)
	assert.GreaterOrEqual(t, result.TotalEmissions, lca.MinimumEmissions("body wash", result.ProductMassKg))
	assert.GreaterOrEqual(t, result.EcoScore, lca.EcoScoreMin)
	assert.LessOrEqual(t, result.EcoScore, lca.EcoScoreMax)

	// Parfum is the only contaminant class, aluminum recycles at an
	// effective 34% in the South.
	assert.True(t, result.Recyclability.IsRecyclable)
	assert.Equal(t, 1, result.Recyclability.ContaminantCount)
}

// TestScenario_RegionalContrast runs one product across regions and checks
// the profile-driven differences.
func TestScenario_RegionalContrast(t *testing.T) {
	calc := newCalculator(t)

	base := lca.ProductInput{
		Name:           "Daily Face Wash",
		Category:       "face wash",
		Ingredients:    []string{"Water", "Cocamidopropyl Betaine", "Glycerin"},
		Weight:         "100ml",
		PackagingType:  "plastic",
		UsageFrequency: "twice_daily",
	}

	locations := map[lca.Region][2]float64{
		lca.RegionSouth: {12.9716, 77.5946},
		lca.RegionEast:  {22.5726, 88.3639},
		lca.RegionWest:  {19.0760, 72.8777},
	}

	results := make(map[lca.Region]*lca.LCAResult, len(locations))
	for region, coords := range locations {
		input := base
		input.Latitude, input.Longitude = coords[0], coords[1]
		result := calc.Calculate(input)
		require.Equal(t, region, result.Region)
		results[region] = result
	}

	// East has the dirtiest grid, so manufacturing costs the most there.
	assert.Greater(t,
		results[lca.RegionEast].StageBreakdown[lca.StageManufacturing],
		results[lca.RegionSouth].StageBreakdown[lca.StageManufacturing])

	// West recycles best, so its packaging verdict is at least as good.
	assert.GreaterOrEqual(t,
		results[lca.RegionWest].Recyclability.EffectiveRate,
		results[lca.RegionEast].Recyclability.EffectiveRate)
}

// TestScenario_ResultInvariants checks the cross-cutting invariants every
// assessment must satisfy, over a varied product set.
func TestScenario_ResultInvariants(t *testing.T) {
	calc := newCalculator(t)

	products := []lca.ProductInput{
		{Name: "Herbal Shampoo", Category: "shampoo", Ingredients: []string{"Water", "Sodium Laureth Sulfate"}, Weight: "250ml"},
		{Name: "Matte Lipstick", Category: "lipstick", Ingredients: []string{"Castor Oil", "Beeswax", "Titanium Dioxide"}, Weight: "4g"},
		{Name: "Sport Deodorant", Category: "deodorant", Ingredients: []string{"Ethanol", "Fragrance"}, Weight: "150ml", PackagingType: "metal"},
		{Name: "Oud Perfume", Category: "perfume", Ingredients: []string{"Ethanol", "Fragrance", "Linalool"}, Weight: "50ml", PackagingType: "glass"},
		{Name: "Mystery Product", Category: "", Ingredients: nil, Weight: "???"},
	}

	for _, product := range products {
		result := calc.Calculate(product)

		assert.Positive(t, result.TotalEmissions, product.Name)
		assert.GreaterOrEqual(t, result.EcoScore, lca.EcoScoreMin, product.Name)
		assert.LessOrEqual(t, result.EcoScore, lca.EcoScoreMax, product.Name)
		assert.GreaterOrEqual(t, result.OverallConfidence, 0.90, product.Name)
		assert.LessOrEqual(t, result.OverallConfidence, 0.95, product.Name)

		for _, stage := range lca.Stages {
			assert.GreaterOrEqual(t, result.StageBreakdown[stage], 0.0,
				"%s stage %s", product.Name, stage)
		}

		assert.Less(t, result.UncertaintyRange.Low, result.UncertaintyRange.High, product.Name)
		assert.InDelta(t, result.TotalEmissions*0.98, result.UncertaintyRange.Low, 1e-9, product.Name)
		assert.InDelta(t, result.TotalEmissions*1.02, result.UncertaintyRange.High, 1e-9, product.Name)
	}
}
