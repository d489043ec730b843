package lca

import "strings"

// IngredientPortion is an ingredient with its mass fraction, kept in label
// order so downstream iteration is deterministic.
type IngredientPortion struct {
	Name       string
	Proportion float64
}

// proportionRange bounds the plausible mass fraction of a well-known
// ingredient class.
type proportionRange struct {
	min, max float64
}

var knownProportions = map[string]proportionRange{
	"water":                  {0.60, 0.85},
	"aqua":                   {0.60, 0.85},
	"sodium laureth sulfate": {0.10, 0.25},
	"cocamidopropyl betaine": {0.03, 0.08},
	"glycerin":               {0.02, 0.07},
	"fragrance":              {0.005, 0.02},
	"preservatives":          {0.005, 0.015},
	"phenoxyethanol":         {0.005, 0.015},
	"citric acid":            {0.001, 0.01},
}

// EstimateProportions assigns mass fractions to a label-ordered ingredient
// list. Known ingredient classes get industry-standard ranges; the rest get
// declining shares of the remaining mass. The result is normalized to sum
// to 1 and preserves input order.
func EstimateProportions(ingredients []string) []IngredientPortion {
	if len(ingredients) == 0 {
		return nil
	}

	portions := make([]IngredientPortion, 0, len(ingredients))
	remaining := 1.0

	for i, ingredient := range ingredients {
		var prop float64
		if r, ok := knownProportions[strings.ToLower(strings.TrimSpace(ingredient))]; ok {
			if i == 0 {
				prop = min(r.max, remaining*0.8)
			} else {
				prop = min(r.max, remaining*0.6)
			}
		} else {
			switch {
			case i == 0:
				prop = remaining * 0.7
			case i <= 2:
				prop = remaining * 0.4
			default:
				prop = remaining / float64(len(ingredients)-i+1)
			}
		}

		prop = min(prop, remaining*0.95)
		portions = append(portions, IngredientPortion{Name: ingredient, Proportion: prop})
		remaining -= prop

		if remaining <= 0.001 {
			break
		}
	}

	return normalizePortions(portions)
}

// ApplyProportions builds portions from caller-supplied mass fractions,
// preserving label order. Ingredients missing from the map get an equal
// share of whatever fraction is unassigned. The result is normalized.
func ApplyProportions(ingredients []string, fractions map[string]float64) []IngredientPortion {
	if len(ingredients) == 0 {
		return nil
	}

	assigned := 0.0
	missing := 0
	for _, ing := range ingredients {
		if f, ok := fractions[ing]; ok && f > 0 {
			assigned += f
		} else {
			missing++
		}
	}

	share := 0.0
	if missing > 0 && assigned < 1.0 {
		share = (1.0 - assigned) / float64(missing)
	}

	portions := make([]IngredientPortion, 0, len(ingredients))
	for _, ing := range ingredients {
		f, ok := fractions[ing]
		if !ok || f <= 0 {
			f = share
		}
		portions = append(portions, IngredientPortion{Name: ing, Proportion: f})
	}
	return normalizePortions(portions)
}

func normalizePortions(portions []IngredientPortion) []IngredientPortion {
	total := 0.0
	for _, p := range portions {
		total += p.Proportion
	}
	if total <= 0 {
		equal := 1.0 / float64(len(portions))
		for i := range portions {
			portions[i].Proportion = equal
		}
		return portions
	}
	for i := range portions {
		portions[i].Proportion /= total
	}
	return portions
}
