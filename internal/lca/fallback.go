package lca

import "strings"

// fallbackEmissionFactor estimates a per-kg emission factor for an
// ingredient absent from the reference table, from literature values for
// its chemical family. Family checks run in a fixed order so compound names
// like "Sodium Laureth Sulfate" land on the surfactant figure rather than
// the mineral-salt one.
func fallbackEmissionFactor(ingredient string) float64 {
	ing := strings.ToLower(ingredient)

	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(ing, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("water", "aqua"):
		return 0.002 // treatment and purification only

	case contains("oil", "extract", "butter", "wax"):
		if contains("organic", "natural") {
			return 1.8
		}
		return 2.5

	case contains("sulfate", "laureth", "lauryl", "betaine"):
		return 4.2 // petrochemical surfactant synthesis

	case contains("paraben", "phenoxyethanol", "preservative"):
		return 6.8

	case contains("alcohol", "glycol", "glycerin"):
		if contains("cetyl", "stearyl") {
			return 3.2 // fatty alcohols from natural fats
		}
		return 2.8

	case contains("retinol", "niacinamide", "hyaluronic", "ceramide", "peptide"):
		return 15.5 // multi-step actives synthesis

	case contains("fragrance", "parfum", "perfume"):
		return 8.5

	case contains("silicone", "dimethicone"):
		return 5.2

	case strings.Contains(ing, "acid") && !strings.Contains(ing, "hyaluronic"):
		return 3.8

	case contains("carbomer", "acrylate", "polymer"):
		return 4.5

	case contains("color", "dye", "pigment", "ci "):
		return 9.2

	case contains("salt", "sodium", "potassium"):
		return 1.5

	default:
		return 3.5 // average chemical complexity
	}
}
