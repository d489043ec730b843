package lca

import (
	"math"
	"strings"
)

// Eco-score parameters. The logarithmic slope and the 25-88 bounds are
// calibrated so real products spread across the band without anyone
// scoring perfect.
const (
	EcoScoreMin = 25.0
	EcoScoreMax = 88.0

	ecoScoreSlope = 25.0

	minBenchmarkRatio = 0.1
	maxBenchmarkRatio = 5.0

	bonusRatioThreshold   = 0.8
	penaltyRatioThreshold = 1.5
)

// benchmarkEntry pairs a category key with its benchmark footprint in
// kg CO2e per kg of product.
type benchmarkEntry struct {
	key   string
	value float64
}

// categoryBenchmarks lists benchmarks in a fixed order; partial matching
// scans this slice so equal-quality matches always resolve the same way.
var categoryBenchmarks = []benchmarkEntry{
	{"body wash", 14.2},
	{"bodywash", 14.2},
	{"shower gel", 13.8},
	{"shampoo", 11.5},
	{"conditioner", 13.2},
	{"face wash", 15.8},
	{"facial cleanser", 15.8},
	{"moisturizer", 16.5},
	{"face cream", 19.2},
	{"body lotion", 13.8},
	{"hand cream", 17.5},
	{"lip balm", 22.5},
	{"lipstick", 25.8},
	{"foundation", 21.5},
	{"mascara", 24.2},
	{"kajal", 20.8},
	{"eyeliner", 22.0},
	{"deodorant", 18.5},
	{"perfume", 28.5},
	{"cologne", 24.2},
	{"toothpaste", 8.5},
	{"mouthwash", 9.2},
	{"hair oil", 11.8},
	{"hair serum", 16.8},
	{"hair gel", 12.5},
	{"hair spray", 15.2},
	{"sunscreen", 19.8},
	{"bb cream", 18.5},
	{"cc cream", 19.0},
	{"soap", 8.2},
	{"bar soap", 8.2},
	{"liquid soap", 12.8},
	{"scrub", 13.5},
	{"exfoliator", 13.5},
	{"mask", 16.2},
	{"face mask", 16.2},
	{"toner", 10.5},
	{"serum", 22.5},
	{"essence", 14.8},
	{"nail polish", 18.5},
	{"nail remover", 12.2},
}

// broadBenchmarks backs up the specific table.
var broadBenchmarks = []benchmarkEntry{
	{"personal care", 12.5},
	{"skincare", 12.5},
	{"haircare", 12.5},
	{"oral care", 12.5},
	{"cosmetics", 18.2},
	{"makeup", 18.2},
	{"fragrance", 18.2},
	{"food", 8.5},
	{"beverage", 8.5},
	{"pharmaceutical", 28.5},
	{"medicine", 28.5},
	{"household", 10.8},
	{"cleaning", 10.8},
}

const defaultBenchmark = 12.5 // Personal Care

// benchmarkFor resolves the per-kg benchmark for a free-text category:
// exact key, then substring match either way, then broad keyword, then the
// personal-care default.
func benchmarkFor(category string) float64 {
	lower := strings.ToLower(strings.TrimSpace(category))
	if lower == "" {
		return defaultBenchmark
	}

	for _, e := range categoryBenchmarks {
		if e.key == lower {
			return e.value
		}
	}
	// Substring match runs both ways, so a bare fragment like "wash"
	// adopts the first containing key in slice order ("body wash").
	for _, e := range categoryBenchmarks {
		if strings.Contains(lower, e.key) || strings.Contains(e.key, lower) {
			return e.value
		}
	}
	for _, e := range broadBenchmarks {
		if strings.Contains(lower, e.key) {
			return e.value
		}
	}
	return defaultBenchmark
}

var organicIndicators = []string{
	"organic", "natural", "bio", "plant-based", "botanical",
	"cold-pressed", "wildcrafted", "sustainably sourced",
}

var syntheticIndicators = []string{
	"synthetic", "lab-made", "artificial", "chemical",
}

// organicAdjustment scores the formulation's organic claim density: over
// 30% organic-flagged ingredients earns up to +15, over 50% synthetic
// costs up to -10.
func organicAdjustment(ingredients []string) float64 {
	if len(ingredients) == 0 {
		return 0
	}

	var organic, synthetic int
	for _, ing := range ingredients {
		lower := strings.ToLower(ing)
		matched := false
		for _, ind := range organicIndicators {
			if strings.Contains(lower, ind) {
				organic++
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		for _, ind := range syntheticIndicators {
			if strings.Contains(lower, ind) {
				synthetic++
				break
			}
		}
	}

	total := float64(len(ingredients))
	organicRatio := float64(organic) / total
	syntheticRatio := float64(synthetic) / total

	if organicRatio > 0.3 {
		return min(15, organicRatio*25)
	}
	if syntheticRatio > 0.5 {
		return max(-10, -syntheticRatio*15)
	}
	return 0
}

// EcoScore grades a footprint against its category benchmark on a 25-88
// scale, higher is better:
//
//  1. Ratio = per-kg emissions / benchmark, clamped to [0.1, 5.0].
//  2. Base = 100 - 25 ln(ratio).
//  3. Ratios under 0.8 earn a bonus, over 1.5 a penalty.
//  4. Half the organic adjustment is added.
func EcoScore(totalEmissions, productMassKg float64, category string, ingredients []string) float64 {
	perKg := totalEmissions
	if productMassKg > 0 {
		perKg = totalEmissions / productMassKg
	}

	ratio := clamp(perKg/benchmarkFor(category), minBenchmarkRatio, maxBenchmarkRatio)

	score := 100 - ecoScoreSlope*math.Log(ratio)

	if ratio <= bonusRatioThreshold {
		score += (bonusRatioThreshold - ratio) * 10
	} else if ratio >= penaltyRatioThreshold {
		score -= (ratio - penaltyRatioThreshold) * 15
	}

	score += organicAdjustment(ingredients) * 0.5

	return clamp(score, EcoScoreMin, EcoScoreMax)
}
