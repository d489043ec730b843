package lca

import (
	"fmt"
	"strings"

	"github.com/ecolens/lca-engine/internal/refdata"
)

// Default coordinates (New Delhi) when the input carries none.
const (
	defaultLatitude  = 28.6139
	defaultLongitude = 77.2090
)

// Calculator runs complete assessments. It is safe for concurrent use: all
// reference tables are immutable and the resolver cache is synchronized.
type Calculator struct {
	resolver *Resolver
}

// NewCalculator returns a Calculator over the given reference table.
func NewCalculator(table refdata.Table) *Calculator {
	return &Calculator{resolver: NewResolver(table)}
}

// Calculate runs the full cradle-to-grave assessment for one product. It
// never fails on malformed fields: unparseable weights, unknown categories
// and missing coordinates all fall back to documented defaults, recorded in
// the result's Notes.
func (c *Calculator) Calculate(input ProductInput) *LCAResult {
	var notes []string

	volumeML, volOK := ParseVolumeML(input.Weight)
	massKg, massOK := ParseMassKg(input.Weight)
	if !volOK || !massOK {
		notes = append(notes, fmt.Sprintf("unparseable weight %q, assuming %.0fml / %.2fkg",
			input.Weight, DefaultVolumeML, DefaultMassKg))
	}

	lat, lon := input.Latitude, input.Longitude
	if lat == 0 && lon == 0 {
		lat, lon = defaultLatitude, defaultLongitude
		notes = append(notes, "no coordinates supplied, assuming New Delhi")
	}
	region := ClassifyRegion(lat, lon)
	profile := ProfileFor(region)

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "Personal Care"
		notes = append(notes, "no category supplied, assuming Personal Care")
	}

	packaging := ClassifyPackaging(input.Name, input.PackagingType, volumeML)

	var portions []IngredientPortion
	if len(input.Proportions) > 0 {
		portions = ApplyProportions(input.Ingredients, input.Proportions)
	} else {
		portions = EstimateProportions(input.Ingredients)
	}

	ingredients := EstimateIngredients(portions, massKg, c.resolver)
	packagingRes := EstimatePackaging(volumeML, packaging)
	transport := EstimateTransport(massKg+packagingRes.MassKg, profile)
	manufacturing := EstimateManufacturing(category, massKg, ComplexityFactor(input.Ingredients), profile)
	usePhase := EstimateUsePhase(input.Name, input.UsageFrequency, volumeML)
	eol := EstimateEOL(packagingRes.MassKg, profile)

	stages := map[Stage]StageResult{
		StageIngredients:    {Emission: ingredients.Total, Uncertainty: ingredients.WeightedUncertainty},
		StagePackaging:      {Emission: packagingRes.Emission, Uncertainty: packagingRes.Uncertainty},
		StageTransportation: {Emission: transport.Emission, Uncertainty: transport.Uncertainty},
		StageManufacturing:  {Emission: manufacturing.Emission, Uncertainty: manufacturing.Uncertainty},
		StageUsePhase:       {Emission: usePhase.Emission, Uncertainty: usePhase.Uncertainty},
		StageEndOfLife:      {Emission: eol.Emission, Uncertainty: eol.Uncertainty},
	}

	agg := Aggregate(stages, category, massKg)
	if agg.AdjustmentFactor != 1.0 {
		notes = append(notes, fmt.Sprintf("raw total below category floor, scaled stages by %.2f",
			agg.AdjustmentFactor))
	}

	score := EcoScore(agg.Total, massKg, category, input.Ingredients)

	manufacturingCost := manufacturing.EnergyKWh * profile.IndustrialTariffINR
	usePhaseCost := usePhase.HeatingEnergyKWh * profile.HouseholdTariffINR

	return &LCAResult{
		TotalEmissions:      agg.Total,
		StageBreakdown:      agg.Breakdown,
		IngredientEmissions: ingredients.Emissions,
		EcoScore:            score,
		ConfidenceScores:    agg.Confidence,
		OverallConfidence:   agg.OverallConfidence,
		UncertaintyRange:    agg.DisplayRange,
		Region:              region,
		GridFactor:          profile.GridFactor,
		Packaging:           packaging,
		PackagingMassKg:     packagingRes.MassKg,
		ProductMassKg:       massKg,
		ElectricityCost: ElectricityCostImpact{
			ManufacturingINR: manufacturingCost,
			UsePhaseINR:      usePhaseCost,
			TotalINR:         manufacturingCost + usePhaseCost,
		},
		Recyclability:    AssessRecyclability(packaging, input.Ingredients, region),
		AdjustmentFactor: agg.AdjustmentFactor,
		Notes:            notes,
	}
}
