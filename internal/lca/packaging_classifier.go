package lca

import (
	"fmt"
	"strings"
)

// packagingRule maps a product-name keyword to a packaging archetype.
type packagingRule struct {
	keyword   string
	archetype string
}

// packagingRules is scanned in order against the lowercased product name;
// the first keyword hit wins. Multi-word keywords come before their
// single-word prefixes.
var packagingRules = []packagingRule{
	{"compact", "Compact Case"},
	{"face wash", "Squeezable Tube"},
	{"facewash", "Squeezable Tube"},
	{"toothpaste", "Squeezable Tube"},
	{"hair oil", "Plastic or Glass Bottle"},
	{"hair gel", "Jar or Tube"},
	{"hair cream", "Jar or Tube"},
	{"face cream", "Jar"},
	{"night cream", "Jar"},
	{"body lotion", "Bottle with Pump or Flip-top Cap"},
	{"bar soap", "Paper Wrapper or Cardboard Box"},
	{"soap", "Paper Wrapper or Cardboard Box"},
	{"shampoo", "Plastic Bottle"},
	{"conditioner", "Plastic Bottle"},
	{"serum", "Dropper Bottle or Airless Pump"},
	{"lipstick", "Twist-up Tube"},
	{"foundation", "Glass or Plastic Bottle with Pump"},
	{"kajal", "Retractable Pencil or Stick"},
	{"eyeliner", "Retractable Pencil or Stick"},
	{"mascara", "Vial with Wand"},
	{"deodorant", "Aerosol Can or Roll-on Bottle"},
	{"perfume", "Glass Bottle with Sprayer"},
}

// packagingArchetype infers a packaging archetype from the product name.
func packagingArchetype(productName string) string {
	name := strings.ToLower(productName)
	for _, rule := range packagingRules {
		if strings.Contains(name, rule.keyword) {
			return rule.archetype
		}
	}
	return "Plastic Bottle"
}

// ClassifyPackaging infers the packaging material for a product from its
// name, declared material family and container volume. The emission factors
// here are cradle-to-gate values per kg of converted packaging, calibrated
// for Indian converters; density and recycling rate come from the material
// table.
func ClassifyPackaging(productName, packagingType string, volumeML float64) PlasticTypeInfo {
	archetype := packagingArchetype(productName)

	info := PlasticTypeInfo{
		PackagingDesign: archetype,
		Material:        MaterialUnknown,
		EmissionFactor:  1.8,
		Reasoning:       "Default assignment",
	}

	switch {
	case strings.EqualFold(packagingType, "plastic") || packagingType == "":
		switch {
		case strings.Contains(archetype, "Bottle"):
			if volumeML <= 500 {
				info.Material = MaterialPET
				info.EmissionFactor = 1.9
				info.Reasoning = fmt.Sprintf("Small bottle (%.0fml) typically uses PET", volumeML)
			} else {
				info.Material = MaterialHDPE
				info.EmissionFactor = 1.6
				info.Reasoning = fmt.Sprintf("Large bottle (%.0fml) typically uses HDPE", volumeML)
			}
		case strings.Contains(archetype, "Tube"):
			info.Material = MaterialLDPE
			info.EmissionFactor = 1.7
			info.Reasoning = "Tubes typically use LDPE for flexibility"
		case strings.Contains(archetype, "Jar"):
			info.Material = MaterialPP
			info.EmissionFactor = 1.8
			info.Reasoning = "Jars typically use PP for durability"
		case strings.Contains(archetype, "Compact"):
			info.Material = MaterialABS
			info.EmissionFactor = 2.3
			info.Reasoning = "Compact cases use ABS for structure"
		}

	case strings.EqualFold(packagingType, "glass"):
		info.Material = MaterialGlass
		info.EmissionFactor = 0.85
		info.Reasoning = "Glass packaging specified"

	case strings.EqualFold(packagingType, "metal"):
		info.Material = MaterialAluminum
		info.EmissionFactor = 11.5
		info.Reasoning = "Metal packaging (assumed aluminum)"

	case strings.Contains(strings.ToLower(packagingType), "paper"),
		strings.Contains(strings.ToLower(packagingType), "cardboard"):
		info.Material = MaterialPaper
		info.EmissionFactor = 1.1
		info.Reasoning = "Paper packaging specified"
	}

	spec := MaterialSpecFor(info.Material)
	info.DensityGPerCm3 = spec.DensityGPerCm3
	info.RecyclingRate = spec.RecyclingRate
	return info
}
