package lca

// IngredientsResult is the ingredients-stage estimate with per-ingredient
// detail in label order.
type IngredientsResult struct {
	Emissions []IngredientEmission

	// Total is the stage emission in kg CO2e.
	Total float64

	// WeightedUncertainty is the proportion-weighted blend of per-factor
	// uncertainties.
	WeightedUncertainty float64
}

// EstimateIngredients computes raw-material emissions for a formulation:
// each ingredient contributes its mass share of the product times its
// resolved per-kg factor. Factor validation upstream guarantees every
// contribution is non-negative.
func EstimateIngredients(portions []IngredientPortion, productMassKg float64, resolver *Resolver) IngredientsResult {
	result := IngredientsResult{
		Emissions: make([]IngredientEmission, 0, len(portions)),
	}

	for _, portion := range portions {
		res := resolver.Resolve(portion.Name)
		emission := productMassKg * portion.Proportion * res.Factor

		result.Emissions = append(result.Emissions, IngredientEmission{
			Name:        portion.Name,
			Proportion:  portion.Proportion,
			Factor:      res.Factor,
			Emission:    emission,
			Source:      res.Source,
			Similarity:  res.Similarity,
			Uncertainty: res.Uncertainty,
		})

		result.Total += emission
		result.WeightedUncertainty += res.Uncertainty * portion.Proportion
	}

	return result
}
