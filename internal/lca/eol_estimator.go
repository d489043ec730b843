package lca

// Disposal emission factors in kg CO2e per kg of packaging waste. Recycling
// is a credit for displaced virgin material.
const (
	recyclingDisposalFactor    = -0.8
	landfillDisposalFactor     = 0.5
	incinerationDisposalFactor = 2.1
	openBurningDisposalFactor  = 3.2

	// collectionFactor covers municipal collection logistics.
	collectionFactor = 0.05

	eolUncertainty = 0.08
)

// EOLResult is the end-of-life estimate for the packaging.
type EOLResult struct {
	Emission float64

	// Breakdown gives per-route emissions; Recycling is negative.
	Breakdown WasteMix

	// CollectionEmission is the municipal collection share.
	CollectionEmission float64

	Uncertainty float64
}

// EstimateEOL computes disposal emissions for the container mass under the
// region's waste-routing mix, plus a collection overhead. The recycling
// credit can make individual routes negative but realistic Indian mixes
// keep the total positive.
func EstimateEOL(packagingMassKg float64, profile RegionProfile) EOLResult {
	mix := profile.Waste

	breakdown := WasteMix{
		Recycling:    packagingMassKg * mix.Recycling * recyclingDisposalFactor,
		Landfill:     packagingMassKg * mix.Landfill * landfillDisposalFactor,
		Incineration: packagingMassKg * mix.Incineration * incinerationDisposalFactor,
		OpenBurning:  packagingMassKg * mix.OpenBurning * openBurningDisposalFactor,
	}

	collection := packagingMassKg * collectionFactor
	total := breakdown.Recycling + breakdown.Landfill + breakdown.Incineration +
		breakdown.OpenBurning + collection

	return EOLResult{
		Emission:           total,
		Breakdown:          breakdown,
		CollectionEmission: collection,
		Uncertainty:        eolUncertainty,
	}
}
