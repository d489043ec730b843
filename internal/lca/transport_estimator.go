package lca

// Freight emission factors in kg CO2e per tonne-km (Indian logistics).
const (
	truckFactor = 0.110
	railFactor  = 0.028
	shipFactor  = 0.014
	airFactor   = 0.520

	transportUncertainty = 0.07
)

// TransportResult is the transportation-stage estimate.
type TransportResult struct {
	Emission float64

	// ModeEmissions breaks the total down by freight mode, before the
	// congestion adjustment.
	ModeEmissions ModalSplit

	// DistanceKm is the assumed factory-to-shelf distance.
	DistanceKm float64

	// CongestionFactor is the regional route-condition multiplier applied.
	CongestionFactor float64

	Uncertainty float64
}

// EstimateTransport computes distribution emissions for the shipped mass
// (product plus container) over the region's typical distance and freight
// mode mix, inflated by the regional congestion factor.
func EstimateTransport(shippedMassKg float64, profile RegionProfile) TransportResult {
	tonnes := shippedMassKg / 1000
	distance := profile.TransportDistanceKm

	modes := ModalSplit{
		Truck: tonnes * distance * truckFactor * profile.Modal.Truck,
		Rail:  tonnes * distance * railFactor * profile.Modal.Rail,
		Ship:  tonnes * distance * shipFactor * profile.Modal.Ship,
		Air:   tonnes * distance * airFactor * profile.Modal.Air,
	}

	total := (modes.Truck + modes.Rail + modes.Ship + modes.Air) * profile.CongestionFactor

	return TransportResult{
		Emission:         total,
		ModeEmissions:    modes,
		DistanceKm:       distance,
		CongestionFactor: profile.CongestionFactor,
		Uncertainty:      transportUncertainty,
	}
}
