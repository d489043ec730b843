package lca

// Packaging model parameters for the Indian market.
const (
	// indianConverterOverhead inflates cradle-to-gate packaging emissions
	// for local converting conditions.
	indianConverterOverhead = 1.15

	// recyclingCreditShare is the fraction of the recycled share credited
	// back against packaging emissions.
	recyclingCreditShare = 0.20

	packagingUncertainty = 0.06
)

// PackagingResult is the packaging-stage estimate.
type PackagingResult struct {
	// Emission is the stage total in kg CO2e, net of the recycling credit.
	Emission float64

	// MassKg is the estimated container mass.
	MassKg float64

	Uncertainty float64
}

// packagingWeightFactor returns grams of container per ml of content for a
// given fill volume. Small containers carry proportionally more material.
func packagingWeightFactor(volumeML float64) float64 {
	switch {
	case volumeML <= 100:
		return 0.18
	case volumeML <= 300:
		return 0.15
	case volumeML <= 500:
		return 0.12
	default:
		return 0.10
	}
}

// EstimatePackaging computes container emissions from fill volume and the
// classified material:
//
//  1. Container mass = volume x weight factor x material density / 1000.
//  2. Cradle-to-gate emission = mass x material factor x converter overhead.
//  3. Recycling credit = emission x recycling rate x credit share.
func EstimatePackaging(volumeML float64, packaging PlasticTypeInfo) PackagingResult {
	massKg := volumeML * packagingWeightFactor(volumeML) * packaging.DensityGPerCm3 / 1000

	emission := massKg * packaging.EmissionFactor * indianConverterOverhead
	credit := emission * packaging.RecyclingRate * recyclingCreditShare

	return PackagingResult{
		Emission:    emission - credit,
		MassKg:      massKg,
		Uncertainty: packagingUncertainty,
	}
}
