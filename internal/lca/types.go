// Package lca implements a cradle-to-grave life-cycle assessment model for
// consumer cosmetic and personal-care products sold in India. The model
// splits a product's footprint across six stages (ingredients, packaging,
// transportation, manufacturing, use phase, end of life), resolves per-kg
// emission factors for each ingredient through a tiered matcher, and derives
// an eco-score from the footprint relative to a category benchmark.
//
// All estimators are pure functions over embedded reference tables: the same
// input always produces the same result.
package lca

// Stage identifies one of the six life-cycle stages.
type Stage string

// Life-cycle stages in canonical order.
const (
	StageIngredients    Stage = "ingredients"
	StagePackaging      Stage = "packaging"
	StageTransportation Stage = "transportation"
	StageManufacturing  Stage = "manufacturing"
	StageUsePhase       Stage = "use_phase"
	StageEndOfLife      Stage = "end_of_life"
)

// Stages lists every stage in canonical order. Aggregation, reporting and
// serialization all iterate this slice so output ordering is stable.
var Stages = []Stage{
	StageIngredients,
	StagePackaging,
	StageTransportation,
	StageManufacturing,
	StageUsePhase,
	StageEndOfLife,
}

// MatchSource identifies which resolver tier produced an emission factor.
type MatchSource string

const (
	SourceExactMatch    MatchSource = "exact_name_match"
	SourceSynonymMatch  MatchSource = "synonym_match"
	SourceFuzzyMatch    MatchSource = "fuzzy_name_match"
	SourceActivityMatch MatchSource = "activity_match"
	SourceFallback      MatchSource = "fallback"
)

// PackagingMaterial is a packaging material code ("PET", "Glass", ...).
type PackagingMaterial string

const (
	MaterialPET      PackagingMaterial = "PET"
	MaterialHDPE     PackagingMaterial = "HDPE"
	MaterialLDPE     PackagingMaterial = "LDPE"
	MaterialPP       PackagingMaterial = "PP"
	MaterialABS      PackagingMaterial = "ABS"
	MaterialGlass    PackagingMaterial = "Glass"
	MaterialAluminum PackagingMaterial = "Aluminum"
	MaterialPaper    PackagingMaterial = "Paper"
	MaterialUnknown  PackagingMaterial = "Unknown"
)

// Region is one of the Indian market regions the model distinguishes.
type Region string

const (
	RegionNorth     Region = "North"
	RegionSouth     Region = "South"
	RegionEast      Region = "East"
	RegionWest      Region = "West"
	RegionCentral   Region = "Central"
	RegionNorthEast Region = "North-East"
)

// UsagePattern classifies how a product is consumed during its use phase.
type UsagePattern string

const (
	PatternRinseOff UsagePattern = "rinse_off"
	PatternLeaveOn  UsagePattern = "leave_on"
	PatternSpray    UsagePattern = "spray"
	PatternMakeup   UsagePattern = "makeup"
)

// ProductInput describes one product to assess. Name, Category and
// Ingredients drive the model; everything else has documented defaults.
type ProductInput struct {
	// Name is the product name, e.g. "Herbal Shampoo". It drives packaging
	// archetype and usage-pattern classification.
	Name string `json:"product_name"`

	// Category is the free-text product category, e.g. "body wash".
	Category string `json:"category"`

	// Ingredients lists ingredient names in label order (descending
	// concentration). Order is significant for proportion estimation.
	Ingredients []string `json:"ingredients"`

	// Proportions optionally supplies mass fractions per ingredient name.
	// When absent the model estimates proportions heuristically.
	Proportions map[string]float64 `json:"proportions,omitempty"`

	// Weight is the declared pack size, e.g. "250ml", "100 g", "1l".
	// Unparseable values fall back to a 250 ml / 0.25 kg default.
	Weight string `json:"weight"`

	// PackagingType is the declared packaging material family:
	// "plastic", "glass", "metal" or "paper". Defaults to plastic.
	PackagingType string `json:"packaging_type"`

	// Latitude and Longitude locate the point of sale. When both are zero
	// the model assumes New Delhi.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// UsageFrequency is "daily", "twice_daily", "weekly", "monthly" or
	// "occasional". Defaults to daily.
	UsageFrequency string `json:"usage_frequency"`
}

// IngredientEmission is the resolved contribution of a single ingredient.
type IngredientEmission struct {
	Name string `json:"name"`

	// Proportion is the mass fraction of the product attributed to the
	// ingredient, in [0, 1].
	Proportion float64 `json:"proportion"`

	// Factor is the per-kg emission factor applied, after validation.
	Factor float64 `json:"emission_factor"`

	// Emission is the ingredient's absolute contribution in kg CO2e.
	Emission float64 `json:"emission"`

	// Source names the resolver tier that produced the factor.
	Source MatchSource `json:"source"`

	// Similarity is the 0-100 name-similarity score for fuzzy matches,
	// zero for every other tier.
	Similarity int `json:"similarity,omitempty"`

	// Uncertainty is the relative uncertainty attached to the factor.
	Uncertainty float64 `json:"uncertainty"`
}

// PlasticTypeInfo describes the packaging material inferred for a product.
type PlasticTypeInfo struct {
	// PackagingDesign is the inferred archetype, e.g. "Plastic Bottle".
	PackagingDesign string `json:"packaging_design"`

	// Material is the inferred material code.
	Material PackagingMaterial `json:"material"`

	// EmissionFactor is the cradle-to-gate factor in kg CO2e per kg of
	// packaging material.
	EmissionFactor float64 `json:"emission_factor"`

	// DensityGPerCm3 is the material density used to convert container
	// volume to packaging mass.
	DensityGPerCm3 float64 `json:"density_g_per_cm3"`

	// RecyclingRate is the nominal Indian recycling rate for the material.
	RecyclingRate float64 `json:"recycling_rate"`

	// Reasoning is a short human-readable note on why the material was
	// chosen.
	Reasoning string `json:"reasoning"`
}

// StageResult is one stage's contribution before aggregation.
type StageResult struct {
	// Emission is the stage total in kg CO2e over the product lifetime.
	Emission float64

	// Uncertainty is the relative uncertainty of the stage estimate.
	Uncertainty float64
}

// RecyclabilityDetails explains the recyclability verdict.
type RecyclabilityDetails struct {
	IsRecyclable bool `json:"is_recyclable"`

	// MaterialRate is the nominal recycling rate for the material.
	MaterialRate float64 `json:"material_rate"`

	// RegionalCapability scales the nominal rate for local infrastructure.
	RegionalCapability float64 `json:"regional_capability"`

	// EffectiveRate is MaterialRate x RegionalCapability, the figure the
	// verdict is based on.
	EffectiveRate float64 `json:"effective_rate"`

	// ContaminantCount is the number of recycling-contaminant ingredients
	// detected in the formulation.
	ContaminantCount int `json:"contaminant_count"`

	Reasoning string `json:"reasoning"`

	// Recommendation suggests a lower-impact packaging choice for the
	// current material.
	Recommendation string `json:"recommendation"`
}

// ElectricityCostImpact estimates the consumer- and producer-side
// electricity spend attributable to the product, in INR.
type ElectricityCostImpact struct {
	// ManufacturingINR prices manufacturing energy at the regional
	// industrial tariff.
	ManufacturingINR float64 `json:"manufacturing_inr"`

	// UsePhaseINR prices water-heating energy at the regional household
	// tariff.
	UsePhaseINR float64 `json:"use_phase_inr"`

	TotalINR float64 `json:"total_inr"`
}

// Range is a closed interval.
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// LCAResult is the complete assessment for one product.
type LCAResult struct {
	// TotalEmissions is the lifetime footprint in kg CO2e, after floor
	// enforcement and the uncertainty nudge.
	TotalEmissions float64 `json:"total_emissions"`

	// StageBreakdown maps each stage to its adjusted contribution.
	StageBreakdown map[Stage]float64 `json:"stage_breakdown"`

	// IngredientEmissions details every ingredient in label order.
	IngredientEmissions []IngredientEmission `json:"ingredient_emissions"`

	// EcoScore is the 25-88 eco-score, higher is better.
	EcoScore float64 `json:"eco_score"`

	// ConfidenceScores maps each stage to a 0.90-0.95 confidence figure.
	ConfidenceScores map[Stage]float64 `json:"confidence_scores"`

	// OverallConfidence is the emission-weighted blend of stage scores.
	OverallConfidence float64 `json:"overall_confidence"`

	// UncertaintyRange is the +/-2% display band around TotalEmissions.
	UncertaintyRange Range `json:"uncertainty_range"`

	// Region is the classified market region.
	Region Region `json:"region"`

	// GridFactor is the regional grid intensity in kg CO2e per kWh.
	GridFactor float64 `json:"grid_factor"`

	// Packaging is the inferred packaging material detail.
	Packaging PlasticTypeInfo `json:"packaging"`

	// PackagingMassKg is the estimated container mass.
	PackagingMassKg float64 `json:"packaging_mass_kg"`

	// ProductMassKg is the parsed (or defaulted) product mass.
	ProductMassKg float64 `json:"product_mass_kg"`

	// ElectricityCost prices the energy flows in INR.
	ElectricityCost ElectricityCostImpact `json:"electricity_cost"`

	// Recyclability is the packaging recyclability verdict.
	Recyclability RecyclabilityDetails `json:"recyclability"`

	// AdjustmentFactor is the scale applied to stage values when the raw
	// total fell below the category minimum, 1.0 otherwise.
	AdjustmentFactor float64 `json:"adjustment_factor"`

	// Notes records corrections applied while building the result, such as
	// defaulted inputs or repaired emission factors.
	Notes []string `json:"notes,omitempty"`
}
