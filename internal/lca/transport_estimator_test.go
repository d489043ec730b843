package lca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEstimateTransport verifies distribution emissions per region with
// plausibility bands.
func TestEstimateTransport(t *testing.T) {
	tests := []struct {
		name        string
		massKg      float64
		region      Region
		minEmission float64
		maxEmission float64
	}{
		{
			name:        "300g shipment in the North",
			massKg:      0.3,
			region:      RegionNorth,
			minEmission: 0.02,
			maxEmission: 0.04,
		},
		{
			name:        "300g shipment in the South has more rail",
			massKg:      0.3,
			region:      RegionSouth,
			minEmission: 0.01,
			maxEmission: 0.035,
		},
		{
			name:        "300g shipment in the North-East travels furthest",
			massKg:      0.3,
			region:      RegionNorthEast,
			minEmission: 0.02,
			maxEmission: 0.04,
		},
		{
			name:        "1kg shipment in the West",
			massKg:      1.0,
			region:      RegionWest,
			minEmission: 0.06,
			maxEmission: 0.12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := ProfileFor(tt.region)
			got := EstimateTransport(tt.massKg, profile)

			assert.GreaterOrEqual(t, got.Emission, tt.minEmission)
			assert.LessOrEqual(t, got.Emission, tt.maxEmission)
			assert.InDelta(t, profile.TransportDistanceKm, got.DistanceKm, 1e-9)
			assert.InDelta(t, profile.CongestionFactor, got.CongestionFactor, 1e-9)
			assert.InDelta(t, transportUncertainty, got.Uncertainty, 1e-9)
		})
	}
}

// TestEstimateTransportScalesWithMass verifies linearity in shipped mass.
func TestEstimateTransportScalesWithMass(t *testing.T) {
	profile := ProfileFor(RegionCentral)

	single := EstimateTransport(0.5, profile)
	double := EstimateTransport(1.0, profile)

	assert.InDelta(t, single.Emission*2, double.Emission, 1e-9)
}

// TestEstimateTransportTruckDominates verifies road freight carries most
// of the footprint under every regional mix.
func TestEstimateTransportTruckDominates(t *testing.T) {
	for _, region := range regionOrder {
		got := EstimateTransport(0.5, ProfileFor(region))
		other := got.ModeEmissions.Rail + got.ModeEmissions.Ship + got.ModeEmissions.Air
		assert.Greater(t, got.ModeEmissions.Truck, other, region)
	}
}

// TestEstimateTransportZeroMass verifies the degenerate case.
func TestEstimateTransportZeroMass(t *testing.T) {
	got := EstimateTransport(0, ProfileFor(RegionNorth))
	assert.Zero(t, got.Emission)
}
