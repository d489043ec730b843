package lca

import "math"

// ModalSplit is the freight mode mix for a region, fractions summing to 1.
type ModalSplit struct {
	Truck float64
	Rail  float64
	Ship  float64
	Air   float64
}

// WasteMix is the end-of-life disposal mix for a region, fractions summing
// to 1.
type WasteMix struct {
	Recycling    float64
	Landfill     float64
	Incineration float64
	OpenBurning  float64
}

// RegionProfile consolidates every regional parameter the model uses.
type RegionProfile struct {
	// GridFactor is grid carbon intensity in kg CO2e per kWh (CEA 2024).
	GridFactor float64

	// IndustrialEfficiency derates manufacturing energy use, in (0, 1].
	IndustrialEfficiency float64

	// RenewablePenetration is the renewable share of generation.
	RenewablePenetration float64

	// TransportDistanceKm is the typical factory-to-shelf distance.
	TransportDistanceKm float64

	// CongestionFactor inflates transport emissions for route conditions.
	CongestionFactor float64

	// Modal is the freight mode mix for the region.
	Modal ModalSplit

	// Waste is the packaging disposal mix for the region.
	Waste WasteMix

	// RecyclingCapability scales nominal material recycling rates for the
	// local collection infrastructure.
	RecyclingCapability float64

	// HouseholdTariffINR and IndustrialTariffINR are electricity prices in
	// INR per kWh.
	HouseholdTariffINR  float64
	IndustrialTariffINR float64
}

// regionCenters maps each region to its reference city (lat, lon).
var regionCenters = map[Region][2]float64{
	RegionNorth:     {28.6139, 77.2090}, // Delhi
	RegionSouth:     {12.9716, 77.5946}, // Bangalore
	RegionEast:      {22.5726, 88.3639}, // Kolkata
	RegionWest:      {19.0760, 72.8777}, // Mumbai
	RegionNorthEast: {26.2006, 92.9376}, // Guwahati
	RegionCentral:   {23.2599, 77.4126}, // Bhopal
}

var regionProfiles = map[Region]RegionProfile{
	RegionNorth: {
		GridFactor:           0.82,
		IndustrialEfficiency: 0.72,
		RenewablePenetration: 0.12,
		TransportDistanceKm:  850,
		CongestionFactor:     1.20,
		Modal:                ModalSplit{Truck: 0.85, Rail: 0.14, Ship: 0.01, Air: 0.00},
		Waste:                WasteMix{Recycling: 0.20, Landfill: 0.65, Incineration: 0.05, OpenBurning: 0.10},
		RecyclingCapability:  0.75,
		HouseholdTariffINR:   8.8,
		IndustrialTariffINR:  12.5,
	},
	RegionSouth: {
		GridFactor:           0.68,
		IndustrialEfficiency: 0.78,
		RenewablePenetration: 0.25,
		TransportDistanceKm:  750,
		CongestionFactor:     1.10,
		Modal:                ModalSplit{Truck: 0.70, Rail: 0.25, Ship: 0.04, Air: 0.01},
		Waste:                WasteMix{Recycling: 0.25, Landfill: 0.60, Incineration: 0.10, OpenBurning: 0.05},
		RecyclingCapability:  0.85,
		HouseholdTariffINR:   7.5,
		IndustrialTariffINR:  11.2,
	},
	RegionEast: {
		GridFactor:           0.91,
		IndustrialEfficiency: 0.68,
		RenewablePenetration: 0.08,
		TransportDistanceKm:  820,
		CongestionFactor:     1.15,
		Modal:                ModalSplit{Truck: 0.80, Rail: 0.18, Ship: 0.02, Air: 0.00},
		Waste:                WasteMix{Recycling: 0.15, Landfill: 0.70, Incineration: 0.05, OpenBurning: 0.10},
		RecyclingCapability:  0.65,
		HouseholdTariffINR:   8.2,
		IndustrialTariffINR:  11.8,
	},
	RegionWest: {
		GridFactor:           0.75,
		IndustrialEfficiency: 0.76,
		RenewablePenetration: 0.18,
		TransportDistanceKm:  680,
		CongestionFactor:     1.25,
		Modal:                ModalSplit{Truck: 0.70, Rail: 0.25, Ship: 0.04, Air: 0.01},
		Waste:                WasteMix{Recycling: 0.30, Landfill: 0.55, Incineration: 0.12, OpenBurning: 0.03},
		RecyclingCapability:  0.90,
		HouseholdTariffINR:   9.8,
		IndustrialTariffINR:  14.2,
	},
	RegionNorthEast: {
		GridFactor:           0.45,
		IndustrialEfficiency: 0.65,
		RenewablePenetration: 0.55,
		TransportDistanceKm:  950,
		CongestionFactor:     1.00,
		Modal:                ModalSplit{Truck: 0.80, Rail: 0.18, Ship: 0.02, Air: 0.00},
		Waste:                WasteMix{Recycling: 0.12, Landfill: 0.75, Incineration: 0.03, OpenBurning: 0.10},
		RecyclingCapability:  0.55,
		HouseholdTariffINR:   6.2,
		IndustrialTariffINR:  9.5,
	},
	RegionCentral: {
		GridFactor:           0.79,
		IndustrialEfficiency: 0.70,
		RenewablePenetration: 0.15,
		TransportDistanceKm:  720,
		CongestionFactor:     1.05,
		Modal:                ModalSplit{Truck: 0.85, Rail: 0.14, Ship: 0.01, Air: 0.00},
		Waste:                WasteMix{Recycling: 0.18, Landfill: 0.68, Incineration: 0.06, OpenBurning: 0.08},
		RecyclingCapability:  0.70,
		HouseholdTariffINR:   8.5,
		IndustrialTariffINR:  12.0,
	},
}

// regionOrder fixes the scan order for nearest-center classification so ties
// resolve the same way on every run.
var regionOrder = []Region{
	RegionNorth,
	RegionSouth,
	RegionEast,
	RegionWest,
	RegionNorthEast,
	RegionCentral,
}

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance between two points in km.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180
	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// ClassifyRegion returns the market region whose reference city is nearest
// to the given coordinates. Ties keep the earlier region in scan order.
func ClassifyRegion(latitude, longitude float64) Region {
	closest := RegionCentral
	minDist := math.Inf(1)
	for _, region := range regionOrder {
		center := regionCenters[region]
		d := haversineKm(latitude, longitude, center[0], center[1])
		if d < minDist {
			minDist = d
			closest = region
		}
	}
	return closest
}

// ProfileFor returns the parameter set for a region. Unknown regions get the
// Central profile.
func ProfileFor(region Region) RegionProfile {
	if p, ok := regionProfiles[region]; ok {
		return p
	}
	return regionProfiles[RegionCentral]
}
