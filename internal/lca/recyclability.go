package lca

import (
	"fmt"
	"strings"
)

// contaminantKeywords flag ingredients that foul recycling streams.
var contaminantKeywords = []string{
	"fragrance", "parfum", "essential oil", "colorant", "dye", "pigment",
	"metallic", "glitter", "mica", "preservative",
}

// Recyclability thresholds: a product counts as recyclable only when its
// material has a recycling stream, contamination stays low and the
// region-adjusted rate clears 10%.
const (
	maxContaminants       = 2
	minEffectiveRecycling = 0.10
)

// packagingRecommendations suggest a lower-impact packaging choice per
// material, surfaced alongside the recyclability verdict.
var packagingRecommendations = map[PackagingMaterial]string{
	MaterialPET:      "recycled PET (rPET) to reduce virgin plastic usage",
	MaterialHDPE:     "bio-based HDPE or concentrated formulations to reduce packaging size",
	MaterialLDPE:     "recyclable alternatives like PP or aluminum tubes",
	MaterialPP:       "recycled PP content or refillable containers",
	MaterialABS:      "recyclable alternatives or refillable systems",
	MaterialAluminum: "recycled aluminum content (already good choice)",
	MaterialGlass:    "lighter glass or refillable systems (already sustainable)",
}

// PackagingRecommendation returns an improvement suggestion for a packaging
// material.
func PackagingRecommendation(material PackagingMaterial) string {
	if rec, ok := packagingRecommendations[material]; ok {
		return rec
	}
	return "more sustainable packaging alternatives"
}

// countContaminants tallies contaminant keywords across the formulation.
// Each keyword counts once no matter how many ingredients carry it.
func countContaminants(ingredients []string) int {
	joined := strings.ToLower(strings.Join(ingredients, ", "))
	count := 0
	for _, kw := range contaminantKeywords {
		if strings.Contains(joined, kw) {
			count++
		}
	}
	return count
}

// AssessRecyclability produces the packaging recyclability verdict for a
// product in a region. The verdict requires a recyclable material, at most
// two contaminant classes in the formulation and an effective recycling
// rate above 10% after the regional infrastructure discount.
func AssessRecyclability(packaging PlasticTypeInfo, ingredients []string, region Region) RecyclabilityDetails {
	spec := MaterialSpecFor(packaging.Material)
	profile := ProfileFor(region)

	contaminants := countContaminants(ingredients)
	effective := spec.RecyclingRate * profile.RecyclingCapability

	verdict := spec.Recyclable &&
		contaminants <= maxContaminants &&
		effective > minEffectiveRecycling

	details := RecyclabilityDetails{
		IsRecyclable:       verdict,
		MaterialRate:       spec.RecyclingRate,
		RegionalCapability: profile.RecyclingCapability,
		EffectiveRate:      effective,
		ContaminantCount:   contaminants,
		Recommendation:     PackagingRecommendation(packaging.Material),
	}

	var limits []string
	if !spec.Recyclable {
		limits = append(limits, fmt.Sprintf("%s packaging not recyclable", packaging.Material))
	}
	if contaminants > maxContaminants {
		limits = append(limits, fmt.Sprintf("high contamination (%d contaminating ingredients)", contaminants))
	}
	if effective <= minEffectiveRecycling {
		limits = append(limits, fmt.Sprintf("low recycling rate (%.1f%%)", effective*100))
	}

	if len(limits) == 0 {
		details.Reasoning = fmt.Sprintf("%s recycled at an effective %.1f%% in %s",
			packaging.Material, effective*100, region)
	} else {
		details.Reasoning = strings.Join(limits, "; ")
	}
	return details
}
