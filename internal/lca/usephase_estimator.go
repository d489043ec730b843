package lca

import "strings"

// Use-phase parameters for the Indian consumer context.
const (
	// heatedWaterShare is the fraction of rinse water that is heated.
	heatedWaterShare = 0.6

	// heatingEnergyKWhPerL is the energy to warm one litre for washing.
	heatingEnergyKWhPerL = 0.018

	// consumerGridFactor is the average household grid intensity, not the
	// regional manufacturing one: products travel with their owners.
	consumerGridFactor = 0.72

	// wastewaterFactorPerL covers downstream water treatment.
	wastewaterFactorPerL = 0.0003

	heatedUncertainty   = 0.09
	unheatedUncertainty = 0.04
)

// usesPerWeek maps usage frequency labels to applications per week.
var usesPerWeek = map[string]float64{
	"daily":       7,
	"twice_daily": 14,
	"weekly":      1,
	"monthly":     0.25,
	"occasional":  2,
}

const defaultUsesPerWeek = 7.0

// usageRule classifies a product-name keyword into a consumption pattern
// with its water draw and dose per application.
type usageRule struct {
	keyword    string
	pattern    UsagePattern
	waterPerML float64 // water used per application, ml
	doseML     float64 // product consumed per application, ml
}

// usageRules is scanned in order against the lowercased product name; the
// first keyword hit wins. Specific multi-word products come before generic
// single-word fallbacks.
var usageRules = []usageRule{
	{"face wash", PatternRinseOff, 500, 2},
	{"facewash", PatternRinseOff, 500, 2},
	{"body wash", PatternRinseOff, 8000, 8},
	{"bodywash", PatternRinseOff, 8000, 8},
	{"shower gel", PatternRinseOff, 8000, 8},
	{"shampoo", PatternRinseOff, 5000, 5},
	{"conditioner", PatternRinseOff, 3000, 3},
	{"toothpaste", PatternRinseOff, 100, 1.5},
	{"soap", PatternRinseOff, 1000, 2},
	{"cleanser", PatternRinseOff, 500, 1},

	{"lipstick", PatternMakeup, 200, 0.1},
	{"kajal", PatternMakeup, 200, 1},
	{"eyeliner", PatternMakeup, 200, 1},
	{"mascara", PatternMakeup, 200, 0.05},
	{"compact", PatternMakeup, 200, 1},
	{"blush", PatternMakeup, 200, 1},
	{"eyeshadow", PatternMakeup, 200, 1},

	{"deodorant", PatternSpray, 0, 0.5},
	{"perfume", PatternSpray, 0, 0.1},
	{"spray", PatternSpray, 0, 1},
	{"mist", PatternSpray, 0, 1},

	{"eye cream", PatternLeaveOn, 0, 0.2},
	{"face cream", PatternLeaveOn, 0, 0.8},
	{"night cream", PatternLeaveOn, 0, 0.8},
	{"day cream", PatternLeaveOn, 0, 0.8},
	{"body lotion", PatternLeaveOn, 0, 3},
	{"moisturizer", PatternLeaveOn, 0, 1},
	{"moisturiser", PatternLeaveOn, 0, 1},
	{"sunscreen", PatternLeaveOn, 0, 2},
	{"foundation", PatternLeaveOn, 0, 1},
	{"primer", PatternLeaveOn, 0, 1},
	{"serum", PatternLeaveOn, 0, 0.3},

	// Generic fallbacks by word family.
	{"wash", PatternRinseOff, 2000, 1},
	{"cream", PatternLeaveOn, 0, 0.8},
	{"lotion", PatternLeaveOn, 0, 3},
	{"oil", PatternLeaveOn, 0, 1},
}

// classifyUsage picks the first matching rule for a product name. Products
// matching nothing default to an unheated leave-on with a 1 ml dose.
func classifyUsage(productName string) usageRule {
	name := strings.ToLower(productName)
	for _, rule := range usageRules {
		if strings.Contains(name, rule.keyword) {
			return rule
		}
	}
	return usageRule{pattern: PatternLeaveOn, waterPerML: 0, doseML: 1}
}

// UsePhaseResult is the use-phase estimate over the product's lifetime.
type UsePhaseResult struct {
	Emission float64

	// Pattern is the classified consumption pattern.
	Pattern UsagePattern

	// WaterML is total water drawn over the product lifetime.
	WaterML float64

	// HeatingEnergyKWh feeds the consumer electricity-cost estimate.
	HeatingEnergyKWh float64

	// LifetimeWeeks is how long one pack lasts at the given frequency.
	LifetimeWeeks float64

	// Applications is the number of uses one pack provides.
	Applications float64

	Uncertainty float64
}

// EstimateUsePhase computes consumer-side emissions over the lifetime of
// one pack: water heating for rinse-off and makeup-removal routines, plus
// wastewater treatment for all water drawn. Leave-on and spray products
// emit nothing in use.
func EstimateUsePhase(productName, usageFrequency string, volumeML float64) UsePhaseResult {
	rule := classifyUsage(productName)

	weekly, ok := usesPerWeek[strings.ToLower(strings.TrimSpace(usageFrequency))]
	if !ok {
		weekly = defaultUsesPerWeek
	}

	applications := volumeML / rule.doseML
	waterML := applications * rule.waterPerML

	heating := rule.pattern == PatternRinseOff || rule.pattern == PatternMakeup

	var heatingEnergy, heatingEmission float64
	if heating && waterML > 0 {
		heatedML := waterML * heatedWaterShare
		heatingEnergy = heatedML / 1000 * heatingEnergyKWhPerL
		heatingEmission = heatingEnergy * consumerGridFactor
	}

	var wastewaterEmission float64
	if waterML > 0 {
		wastewaterEmission = waterML / 1000 * wastewaterFactorPerL
	}

	uncertainty := unheatedUncertainty
	if heating {
		uncertainty = heatedUncertainty
	}

	return UsePhaseResult{
		Emission:         heatingEmission + wastewaterEmission,
		Pattern:          rule.pattern,
		WaterML:          waterML,
		HeatingEnergyKWh: heatingEnergy,
		LifetimeWeeks:    applications / weekly,
		Applications:     applications,
		Uncertainty:      uncertainty,
	}
}
