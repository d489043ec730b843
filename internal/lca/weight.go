package lca

import (
	"regexp"
	"strconv"
	"strings"
)

// Pack-size defaults applied when the declared weight cannot be parsed.
const (
	DefaultVolumeML = 250.0
	DefaultMassKg   = 0.25
)

var weightPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([a-zA-Z]+)`)

// parseWeight splits a declared pack size like "250ml" or "1.5 kg" into a
// numeric value and a lowercase unit. ok is false when the string does not
// start with a number followed by a unit.
func parseWeight(weight string) (value float64, unit string, ok bool) {
	m := weightPattern.FindStringSubmatch(strings.TrimSpace(weight))
	if m == nil {
		return 0, "", false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return value, strings.ToLower(m[2]), true
}

// ParseVolumeML converts a declared pack size to millilitres. Gram figures
// map one-to-one to ml since personal-care densities sit near 1 g/ml.
// Unrecognized inputs return the 250 ml default with ok=false.
func ParseVolumeML(weight string) (float64, bool) {
	value, unit, ok := parseWeight(weight)
	if !ok {
		return DefaultVolumeML, false
	}
	switch unit {
	case "ml", "millilitre", "millilitres", "milliliter", "milliliters":
		return value, true
	case "l", "litre", "litres", "liter", "liters":
		return value * 1000, true
	case "g", "gm", "gram", "grams":
		return value, true
	case "kg", "kilogram", "kilograms":
		return value * 1000, true
	}
	return DefaultVolumeML, false
}

// ParseMassKg converts a declared pack size to kilograms, assuming density
// near 1 g/ml for liquid volumes. Unrecognized inputs return the 0.25 kg
// default with ok=false.
func ParseMassKg(weight string) (float64, bool) {
	value, unit, ok := parseWeight(weight)
	if !ok {
		return DefaultMassKg, false
	}
	switch unit {
	case "kg", "kilogram", "kilograms":
		return value, true
	case "g", "gm", "gram", "grams":
		return value / 1000, true
	case "ml", "millilitre", "millilitres", "milliliter", "milliliters":
		return value / 1000, true
	case "l", "litre", "litres", "liter", "liters":
		return value, true
	}
	return DefaultMassKg, false
}
