package lca

import "strings"

// Aggregation parameters.
const (
	// uncertaintyNudgeShare converts a tenth of the blended uncertainty
	// into a conservative upward adjustment of the total.
	uncertaintyNudgeShare = 0.10

	baseConfidence = 0.92
	minConfidence  = 0.90
	maxConfidence  = 0.95

	// displayBandShare is the +/- share for the reported range.
	displayBandShare = 0.02
)

// specificFloorPerKg is the minimum credible footprint per kg of product
// for specific product types. No real product gets below these.
var specificFloorPerKg = map[string]float64{
	"body wash":       0.18,
	"bodywash":        0.18,
	"shower gel":      0.17,
	"shampoo":         0.15,
	"conditioner":     0.16,
	"face wash":       0.20,
	"facial cleanser": 0.20,
	"moisturizer":     0.22,
	"face cream":      0.25,
	"body lotion":     0.18,
	"hand cream":      0.23,
	"lip balm":        0.28,
	"lipstick":        0.32,
	"foundation":      0.28,
	"mascara":         0.30,
	"kajal":           0.26,
	"eyeliner":        0.28,
	"deodorant":       0.24,
	"perfume":         0.35,
	"cologne":         0.30,
	"toothpaste":      0.12,
	"mouthwash":       0.14,
	"hair oil":        0.16,
	"hair serum":      0.22,
	"hair gel":        0.17,
	"hair spray":      0.20,
	"sunscreen":       0.26,
	"bb cream":        0.24,
	"cc cream":        0.25,
	"soap":            0.10,
	"bar soap":        0.10,
	"liquid soap":     0.16,
	"scrub":           0.18,
	"exfoliator":      0.18,
	"mask":            0.21,
	"face mask":       0.21,
	"toner":           0.14,
	"serum":           0.28,
	"essence":         0.19,
	"nail polish":     0.24,
	"nail remover":    0.16,
}

// broadFloorPerKg backs up the specific table for broad category text.
// Scanned in order; first substring hit wins.
var broadFloorPerKg = []struct {
	keyword string
	floor   float64
}{
	{"personal care", 0.15},
	{"cosmetics", 0.22},
	{"food & beverage", 0.12},
	{"pharmaceuticals", 0.35},
	{"household", 0.18},
}

const defaultFloorPerKg = 0.15

// MinimumEmissions returns the lowest credible footprint for a category and
// product mass: specific product floor, then broad-category floor, then the
// personal-care default.
func MinimumEmissions(category string, productMassKg float64) float64 {
	lower := strings.ToLower(strings.TrimSpace(category))

	if floor, ok := specificFloorPerKg[lower]; ok {
		return floor * productMassKg
	}
	for _, entry := range broadFloorPerKg {
		if strings.Contains(lower, entry.keyword) {
			return entry.floor * productMassKg
		}
	}
	return defaultFloorPerKg * productMassKg
}

// Aggregation combines the six stage results into final totals.
type Aggregation struct {
	// Total is the final footprint after floor enforcement and the
	// uncertainty nudge.
	Total float64

	// Breakdown holds adjusted per-stage values in canonical order.
	Breakdown map[Stage]float64

	// AdjustmentFactor scaled stages up when the raw sum fell below the
	// category floor, 1.0 otherwise.
	AdjustmentFactor float64

	// WeightedUncertainty blends stage uncertainties by emission share.
	WeightedUncertainty float64

	// Confidence holds per-stage confidence scores in [0.90, 0.95].
	Confidence map[Stage]float64

	// OverallConfidence is the emission-weighted blend of stage scores.
	OverallConfidence float64

	// DisplayRange is the +/-2% band around Total.
	DisplayRange Range
}

// Aggregate enforces the category floor over the six stage results, blends
// uncertainties and confidences by emission share, and nudges the total
// upward by a tenth of the blended uncertainty.
//
// Stage inputs are clamped to zero from below; estimators cannot produce
// meaningful negative stage totals.
func Aggregate(stages map[Stage]StageResult, category string, productMassKg float64) Aggregation {
	agg := Aggregation{
		Breakdown:        make(map[Stage]float64, len(Stages)),
		Confidence:       make(map[Stage]float64, len(Stages)),
		AdjustmentFactor: 1.0,
	}

	// Clamp into a local copy; the caller's map is left untouched.
	clamped := make(map[Stage]StageResult, len(Stages))
	baseTotal := 0.0
	for _, stage := range Stages {
		s := stages[stage]
		if s.Emission < 0 {
			s.Emission = 0
		}
		clamped[stage] = s
		baseTotal += s.Emission
	}

	floor := MinimumEmissions(category, productMassKg)
	flooredTotal := baseTotal
	if baseTotal < floor {
		if baseTotal > 0 {
			agg.AdjustmentFactor = floor / baseTotal
		} else {
			agg.AdjustmentFactor = 2.0
		}
		flooredTotal = floor
	}

	weightedUnc := 0.0
	weightedConf := 0.0
	for _, stage := range Stages {
		s := clamped[stage]
		adjusted := s.Emission * agg.AdjustmentFactor
		agg.Breakdown[stage] = adjusted

		conf := clamp(baseConfidence-s.Uncertainty*0.25, minConfidence, maxConfidence)
		agg.Confidence[stage] = conf

		if flooredTotal > 0 {
			weightedUnc += s.Uncertainty * adjusted / flooredTotal
			weightedConf += conf * adjusted / flooredTotal
		}
	}
	if flooredTotal <= 0 {
		weightedUnc = 0.08
		weightedConf = baseConfidence
	}

	agg.WeightedUncertainty = weightedUnc
	agg.OverallConfidence = clamp(weightedConf, minConfidence, maxConfidence)

	agg.Total = flooredTotal * (1 + weightedUnc*uncertaintyNudgeShare)
	agg.DisplayRange = Range{
		Low:  agg.Total * (1 - displayBandShare),
		High: agg.Total * (1 + displayBandShare),
	}
	return agg
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
