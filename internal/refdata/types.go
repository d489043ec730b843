// Package refdata provides the static emission-factor reference table used
// by the LCA engine. The table is embedded at build time and loaded once
// into immutable in-memory indexes before any calculation is served.
package refdata

// Record is one row of the emission-factor reference table.
type Record struct {
	// Name is the ingredient or material name as published in the source
	// dataset (e.g., "Glycerin").
	Name string

	// EconomicActivity is the free-text economic-activity description
	// attached to the factor (e.g., "manufacture of soap and detergents").
	EconomicActivity string

	// EmissionValue is the emission factor in kg CO2e per kg.
	EmissionValue float64
}
